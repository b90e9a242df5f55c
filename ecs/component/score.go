package component

// Score counts reached targets and generated levels for the session.
type Score struct {
	Points int
	Levels int
}

var ScoreComponent = NewComponent[Score]("score")
