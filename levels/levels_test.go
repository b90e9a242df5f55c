package levels

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/hopper/common"
)

func TestLoadClassic(t *testing.T) {
	for _, name := range []string{"classic", "classic.json"} {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if len(lvl.Obstacles) != 3 {
				t.Fatalf("expected 3 obstacles, got %d", len(lvl.Obstacles))
			}
			want := common.Rect{X: 0, Y: 560, Width: 800, Height: 40}
			if lvl.Ground != want {
				t.Fatalf("expected ground %+v, got %+v", want, lvl.Ground)
			}
			if lvl.Target == nil {
				t.Fatalf("expected a target")
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("nope"); err == nil {
		t.Fatalf("expected error for missing layout")
	}
}

func TestParseValidates(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no ground", `{"obstacles": []}`},
		{"empty obstacle", `{"ground": {"x":0,"y":560,"w":800,"h":40}, "obstacles": [{"x":1,"y":1,"w":0,"h":5}]}`},
		{"obstacle below ground", `{"ground": {"x":0,"y":560,"w":800,"h":40}, "obstacles": [{"x":1,"y":550,"w":10,"h":20}]}`},
		{"empty target", `{"ground": {"x":0,"y":560,"w":800,"h":40}, "target": {"x":1,"y":1,"w":0,"h":0}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, ErrInvalidLayout) {
				t.Fatalf("expected ErrInvalidLayout, got %v", err)
			}
		})
	}

	if _, err := Parse([]byte("{")); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func testParams() Params {
	return Params{
		Width:          800,
		Height:         600,
		Border:         10,
		ObstacleCount:  4,
		ObstacleWidth:  100,
		ObstacleHeight: 20,
		GroundHeight:   40,
		TargetSize:     20,
		Gap:            30,
	}
}

func TestGeneratorInvariants(t *testing.T) {
	p := testParams()
	avoid := common.Rect{X: 100, Y: 400, Width: 32, Height: 32}

	for seed := uint64(1); seed <= 50; seed++ {
		lvl := NewGenerator(p, seed).Generate(avoid)

		if err := lvl.Validate(); err != nil {
			t.Fatalf("seed %d: invalid layout: %v", seed, err)
		}
		if lvl.Ground.X != 0 || lvl.Ground.Width != p.Width || lvl.Ground.Bottom() != p.Height {
			t.Fatalf("seed %d: ground does not span the bottom: %+v", seed, lvl.Ground)
		}
		if len(lvl.Obstacles) > p.ObstacleCount {
			t.Fatalf("seed %d: too many obstacles: %d", seed, len(lvl.Obstacles))
		}
		for i, o := range lvl.Obstacles {
			if o.X < p.Border || o.Right() > p.Width-p.Border || o.Y < p.Border {
				t.Fatalf("seed %d: obstacle %d outside borders: %+v", seed, i, o)
			}
			if o.Bottom() > lvl.Ground.Y {
				t.Fatalf("seed %d: obstacle %d below ground: %+v", seed, i, o)
			}
			if o.Intersects(avoid) {
				t.Fatalf("seed %d: obstacle %d overlaps avoid rect", seed, i)
			}
			for j := i + 1; j < len(lvl.Obstacles); j++ {
				if o.Intersects(lvl.Obstacles[j]) {
					t.Fatalf("seed %d: obstacles %d and %d overlap", seed, i, j)
				}
			}
		}

		if lvl.Target == nil {
			t.Fatalf("seed %d: expected a target", seed)
		}
		rests := false
		for _, o := range append([]common.Rect{lvl.Ground}, lvl.Obstacles...) {
			if math.Abs(lvl.Target.Bottom()-o.Y) < 1e-9 && lvl.Target.OverlapsX(o) {
				rests = true
			}
		}
		if !rests {
			t.Fatalf("seed %d: target %+v does not rest on anything", seed, *lvl.Target)
		}
		if lvl.Target.Intersects(avoid) {
			t.Fatalf("seed %d: target %+v overlaps avoid rect", seed, *lvl.Target)
		}
		for i, o := range lvl.Obstacles {
			if lvl.Target.Intersects(o) {
				t.Fatalf("seed %d: target overlaps obstacle %d", seed, i)
			}
		}
	}
}

func TestGeneratorIsDeterministicPerSeed(t *testing.T) {
	p := testParams()
	a := NewGenerator(p, 7).Generate(common.Rect{})
	b := NewGenerator(p, 7).Generate(common.Rect{})
	if len(a.Obstacles) != len(b.Obstacles) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(a.Obstacles), len(b.Obstacles))
	}
	for i := range a.Obstacles {
		if a.Obstacles[i] != b.Obstacles[i] {
			t.Fatalf("obstacle %d differs: %+v vs %+v", i, a.Obstacles[i], b.Obstacles[i])
		}
	}
}

func TestGeneratorWithoutObstacles(t *testing.T) {
	p := testParams()
	p.ObstacleCount = 0
	lvl := NewGenerator(p, 3).Generate(common.Rect{})
	if len(lvl.Obstacles) != 0 {
		t.Fatalf("expected no obstacles, got %d", len(lvl.Obstacles))
	}
	if lvl.Target == nil || math.Abs(lvl.Target.Bottom()-lvl.Ground.Y) > 1e-9 {
		t.Fatalf("expected target on the ground, got %+v", lvl.Target)
	}
}

func TestGeneratorDropsTargetWithoutFreeSpot(t *testing.T) {
	p := testParams()
	p.ObstacleCount = 0
	// the avoid rect covers the whole strip above the ground
	avoid := common.Rect{X: 0, Y: 0, Width: p.Width, Height: p.Height - p.GroundHeight}
	lvl := NewGenerator(p, 11).Generate(avoid)
	if lvl.Target != nil {
		t.Fatalf("expected no target, got %+v", *lvl.Target)
	}
	if err := lvl.Validate(); err != nil {
		t.Fatalf("layout without target must stay valid: %v", err)
	}
}
