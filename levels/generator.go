package levels

import (
	"math/rand/v2"
	"time"

	"github.com/milk9111/hopper/common"
)

const placementAttempts = 64

// Params sizes generated levels. Width/Height is the whole world; Border is
// the wall thickness kept clear on the left, top and right.
type Params struct {
	Width, Height    float64
	Border           float64
	ObstacleCount    int
	ObstacleWidth    float64
	ObstacleHeight   float64
	GroundHeight     float64
	TargetSize       float64
	MinRise, MaxRise float64 // obstacle top distance above the ground
	Gap              float64 // clearance kept around obstacles
}

// Generator builds random layouts. It is not safe for concurrent use.
type Generator struct {
	params Params
	rng    *rand.Rand
}

// NewGenerator seeds a generator. A zero seed picks one from the clock.
func NewGenerator(p Params, seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if p.MaxRise <= 0 {
		p.MaxRise = p.Height * 0.6
	}
	if p.MinRise <= 0 || p.MinRise > p.MaxRise {
		p.MinRise = p.MaxRise / 4
	}
	return &Generator{params: p, rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *Generator) Params() Params {
	return g.params
}

// Generate returns a new layout. Obstacles keep Gap clearance from each other
// and from avoid (the player). An obstacle that cannot be placed after a
// bounded number of attempts is skipped, so the layout may hold fewer than
// ObstacleCount obstacles. The target rests on a random obstacle, or on the
// ground when there is none.
func (g *Generator) Generate(avoid common.Rect) *Layout {
	p := g.params
	ground := common.Rect{X: 0, Y: p.Height - p.GroundHeight, Width: p.Width, Height: p.GroundHeight}
	lvl := &Layout{Ground: ground}

	minX := p.Border
	maxX := p.Width - p.Border - p.ObstacleWidth
	minY := ground.Y - p.MaxRise
	if minY < p.Border {
		minY = p.Border
	}
	maxY := ground.Y - p.MinRise - p.ObstacleHeight

	for i := 0; i < p.ObstacleCount && maxX >= minX && maxY >= minY; i++ {
		for attempt := 0; attempt < placementAttempts; attempt++ {
			r := common.Rect{
				X:      g.between(minX, maxX),
				Y:      g.between(minY, maxY),
				Width:  p.ObstacleWidth,
				Height: p.ObstacleHeight,
			}
			if g.fits(r, lvl.Obstacles, avoid) {
				lvl.Obstacles = append(lvl.Obstacles, r)
				break
			}
		}
	}

	if p.TargetSize > 0 {
		lvl.Target = g.placeTarget(lvl, avoid)
	}
	return lvl
}

func (g *Generator) fits(r common.Rect, placed []common.Rect, avoid common.Rect) bool {
	padded := r.Inflate(g.params.Gap)
	if !avoid.Empty() && padded.Intersects(avoid) {
		return false
	}
	for _, o := range placed {
		if padded.Intersects(o) {
			return false
		}
	}
	return true
}

// placeTarget perches the target on a random obstacle, or on the ground when
// there are none. It returns nil when no spot clears avoid and the obstacles.
func (g *Generator) placeTarget(lvl *Layout, avoid common.Rect) *common.Rect {
	size := g.params.TargetSize
	spotFree := func(t common.Rect) bool {
		if !avoid.Empty() && t.Intersects(avoid) {
			return false
		}
		for _, o := range lvl.Obstacles {
			if t.Intersects(o) {
				return false
			}
		}
		return true
	}

	if n := len(lvl.Obstacles); n > 0 {
		start := g.rng.IntN(n)
		for i := range n {
			o := lvl.Obstacles[(start+i)%n]
			t := common.Rect{X: o.X + (o.Width-size)/2, Y: o.Y - size, Width: size, Height: size}
			if spotFree(t) {
				return &t
			}
		}
	}

	for attempt := 0; attempt < placementAttempts; attempt++ {
		t := common.Rect{
			X:      g.between(g.params.Border, g.params.Width-g.params.Border-size),
			Y:      lvl.Ground.Y - size,
			Width:  size,
			Height: size,
		}
		if spotFree(t) {
			return &t
		}
	}
	return nil
}

func (g *Generator) between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}
