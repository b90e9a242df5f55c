package component

import "github.com/milk9111/hopper/common"

// LevelBounds stores the playable area inside the world borders.
type LevelBounds struct {
	Rect common.Rect
}

var LevelBoundsComponent = NewComponent[LevelBounds]("level_bounds")
