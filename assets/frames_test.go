package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, 1))
	for x := 0; x < w; x++ {
		img.Set(x, 0, c)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestLoadClipImagesOrdersByName(t *testing.T) {
	fsys := fstest.MapFS{
		"Run/frame_10.png": {Data: pngBytes(t, 3, color.White)},
		"Run/frame_02.png": {Data: pngBytes(t, 2, color.White)},
		"Run/frame_01.png": {Data: pngBytes(t, 1, color.White)},
		"Run/notes.txt":    {Data: []byte("ignored")},
		"Idle/0.png":       {Data: pngBytes(t, 4, color.Black)},
	}

	imgs, err := LoadClipImages(fsys, "Run")
	if err != nil {
		t.Fatalf("LoadClipImages: %v", err)
	}
	if len(imgs) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(imgs))
	}
	for i, want := range []int{1, 2, 3} {
		if got := imgs[i].Bounds().Dx(); got != want {
			t.Fatalf("frame %d: expected width %d, got %d", i, want, got)
		}
	}
}

func TestLoadClipImagesMissingFolder(t *testing.T) {
	imgs, err := LoadClipImages(fstest.MapFS{}, "Apex")
	if err != nil {
		t.Fatalf("expected no error for missing clip, got %v", err)
	}
	if len(imgs) != 0 {
		t.Fatalf("expected no frames, got %d", len(imgs))
	}
}

func TestLoadClipImagesBadPNG(t *testing.T) {
	fsys := fstest.MapFS{"Idle/0.png": {Data: []byte("not a png")}}
	if _, err := LoadClipImages(fsys, "Idle"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestCleanClipPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Idle", "Idle"},
		{"frames/Idle", "Idle"},
		{"/FallDown/", "FallDown"},
		{"", "."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := cleanClipPath(tt.in); got != tt.want {
				t.Fatalf("cleanClipPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNilClipsAreEmpty(t *testing.T) {
	var clips Clips
	if clips.FrameCount("Idle") != 0 || clips.Frames("Idle") != nil {
		t.Fatalf("expected nil clips to report no frames")
	}
}
