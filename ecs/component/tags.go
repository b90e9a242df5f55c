package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]("player_tag")

// GroundTag marks the full-width obstacle below every other obstacle.
type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]("ground_tag")

// LevelMember marks entities owned by the current level. They are destroyed
// together when the level is regenerated.
type LevelMember struct{}

var LevelMemberComponent = NewComponent[LevelMember]("level_member")
