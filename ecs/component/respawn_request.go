package component

// RespawnRequest asks for the player to be put back at its spawn point with
// cleared movement state. It is removed once handled.
type RespawnRequest struct{}

var RespawnRequestComponent = NewComponent[RespawnRequest]("respawn_request")
