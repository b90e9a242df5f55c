package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/milk9111/hopper/common"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrInvalidLayout = errors.New("levels: invalid layout")

// Layout is one level: static obstacles, the full-width ground below them and
// an optional target.
type Layout struct {
	Name      string        `json:"name,omitempty"`
	Ground    common.Rect   `json:"ground"`
	Obstacles []common.Rect `json:"obstacles"`
	Target    *common.Rect  `json:"target,omitempty"`
}

// Load reads an embedded layout by basename; the .json suffix is optional.
func Load(name string) (*Layout, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Layout, error) {
	var lvl Layout
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks that every rect has a size and that the ground lies below
// all obstacles.
func (l *Layout) Validate() error {
	if l.Ground.Empty() {
		return fmt.Errorf("%w: ground has no size", ErrInvalidLayout)
	}
	for i, o := range l.Obstacles {
		if o.Empty() {
			return fmt.Errorf("%w: obstacle %d has no size", ErrInvalidLayout, i)
		}
		if o.Bottom() > l.Ground.Y {
			return fmt.Errorf("%w: obstacle %d reaches below the ground", ErrInvalidLayout, i)
		}
	}
	if l.Target != nil && l.Target.Empty() {
		return fmt.Errorf("%w: target has no size", ErrInvalidLayout)
	}
	return nil
}
