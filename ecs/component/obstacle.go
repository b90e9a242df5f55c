package component

import "github.com/milk9111/hopper/common"

// Obstacle is a static solid rectangle. Order is its position in the level's
// obstacle list and breaks ties during collision resolution.
type Obstacle struct {
	Rect  common.Rect
	Order int
}

var ObstacleComponent = NewComponent[Obstacle]("obstacle")

// Target completes the level when the player overlaps it.
type Target struct {
	Rect common.Rect
}

var TargetComponent = NewComponent[Target]("target")
