package common

// Rect is an axis-aligned box in world pixels. X/Y is the top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Intersects reports a strict overlap; rects that only share an edge do not
// intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// OverlapsX reports whether the horizontal spans overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.X < other.X+other.Width && r.X+r.Width > other.X
}

// Inflate grows the rect by m on every side.
func (r Rect) Inflate(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, Width: r.Width + 2*m, Height: r.Height + 2*m}
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
