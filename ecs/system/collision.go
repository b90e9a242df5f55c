package system

import (
	"math"
	"sort"

	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

const contactEpsilon = 1e-6

// CollisionSystem pushes player bodies out of the level's obstacles after
// integration.
type CollisionSystem struct {
	obstacles []component.Obstacle
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (cs *CollisionSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	cs.obstacles = cs.obstacles[:0]
	var ground *common.Rect
	ecs.ForEach(w, component.ObstacleComponent, func(e ecs.Entity, o *component.Obstacle) {
		if ecs.Has(w, e, component.GroundTagComponent) {
			r := o.Rect
			ground = &r
			return
		}
		cs.obstacles = append(cs.obstacles, *o)
	})

	var bounds common.Rect
	if _, lb, ok := ecs.First(w, component.LevelBoundsComponent); ok {
		bounds = lb.Rect
	}

	ecs.ForEach2(w, component.PlayerComponent, component.BodyComponent, func(_ ecs.Entity, p *component.Player, body *component.Body) {
		Resolve(p, body, cs.obstacles, ground, bounds)
	})
}

// Resolve corrects the body against obstacles, then ground, by the sign of
// its vertical velocity only: falling bodies land on top, rising bodies are
// stopped below. Ground always lands the body. Overlapping obstacles are
// handled shallowest vertical penetration first, ties in Order.
//
// bounds, when non-empty, is the area inside the world borders; the body is
// kept inside it horizontally and below its top edge.
func Resolve(p *component.Player, body *component.Body, obstacles []component.Obstacle, ground *common.Rect, bounds common.Rect) {
	if p == nil || body == nil {
		return
	}

	p.OnGround = false

	if !bounds.Empty() {
		clampToBounds(body, bounds)
	}

	for _, o := range overlapping(body.Rect(), obstacles) {
		if !body.Rect().Intersects(o.Rect) {
			continue
		}
		switch {
		case body.Velocity.Y > 0:
			land(p, body, o.Rect.Y)
		case body.Velocity.Y < 0:
			body.SetTop(o.Rect.Bottom())
			body.Velocity.Y = 0
		}
	}

	if !p.OnGround {
		for _, o := range obstacles {
			if restingOn(body, o.Rect) {
				land(p, body, o.Rect.Y)
				break
			}
		}
	}

	if ground != nil {
		if body.Rect().Intersects(*ground) || restingOn(body, *ground) {
			land(p, body, ground.Y)
		}
	}
}

func land(p *component.Player, body *component.Body, top float64) {
	body.SetBottom(top)
	body.Velocity.Y = 0
	p.OnGround = true
	p.Jumping = false
	p.DoubleJumpUsed = false
}

// restingOn reports a body standing still exactly on r's top edge.
func restingOn(body *component.Body, r common.Rect) bool {
	if body.Velocity.Y != 0 {
		return false
	}
	b := body.Rect()
	return math.Abs(b.Bottom()-r.Y) <= contactEpsilon && b.OverlapsX(r)
}

// overlapping returns the obstacles intersecting r ordered by vertical
// penetration depth, then Order.
func overlapping(r common.Rect, obstacles []component.Obstacle) []component.Obstacle {
	var hits []component.Obstacle
	for _, o := range obstacles {
		if r.Intersects(o.Rect) {
			hits = append(hits, o)
		}
	}
	if len(hits) < 2 {
		return hits
	}
	sort.SliceStable(hits, func(i, j int) bool {
		di, dj := penetration(r, hits[i].Rect), penetration(r, hits[j].Rect)
		if di != dj {
			return di < dj
		}
		return hits[i].Order < hits[j].Order
	})
	return hits
}

func penetration(r, o common.Rect) float64 {
	return math.Min(r.Bottom()-o.Y, o.Bottom()-r.Y)
}

func clampToBounds(body *component.Body, bounds common.Rect) {
	minX := bounds.X
	maxX := bounds.Right() - body.Size.X
	switch {
	case body.Position.X < minX:
		body.Position.X = minX
		body.Velocity.X = 0
	case body.Position.X > maxX:
		body.Position.X = maxX
		body.Velocity.X = 0
	}

	if body.Position.Y < bounds.Y {
		body.Position.Y = bounds.Y
		if body.Velocity.Y < 0 {
			body.Velocity.Y = 0
		}
	}
}
