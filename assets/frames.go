package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Clips maps a clip name to its frames in playback order.
type Clips map[string][]*ebiten.Image

// Frames returns the frames of clip, nil when it has none.
func (c Clips) Frames(clip string) []*ebiten.Image {
	return c[clip]
}

func (c Clips) FrameCount(clip string) int {
	return len(c[clip])
}

// LoadClips decodes every named clip from fsys. Clips without a folder are
// present with zero frames.
func LoadClips(fsys fs.FS, names []string) (Clips, error) {
	clips := make(Clips, len(names))
	for _, name := range names {
		imgs, err := LoadClipImages(fsys, name)
		if err != nil {
			return nil, err
		}
		frames := make([]*ebiten.Image, 0, len(imgs))
		for _, img := range imgs {
			frames = append(frames, ebiten.NewImageFromImage(img))
		}
		clips[name] = frames
	}
	return clips, nil
}

// LoadClipImages decodes <clip>/*.png from fsys in lexicographic file name
// order. A missing clip folder yields no frames and no error.
func LoadClipImages(fsys fs.FS, clip string) ([]image.Image, error) {
	dir := cleanClipPath(clip)
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("assets: read clip %s: %w", clip, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(path.Ext(entry.Name()), ".png") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	imgs := make([]image.Image, 0, len(names))
	for _, name := range names {
		img, err := decodeImage(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("assets: clip %s: %w", clip, err)
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

func decodeImage(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// cleanClipPath turns a clip name or frames-relative path into an fs.FS path.
func cleanClipPath(p string) string {
	s := filepath.ToSlash(p)
	s = strings.TrimPrefix(s, "frames/")
	s = strings.Trim(path.Clean(s), "/")
	if s == "" {
		return "."
	}
	return s
}
