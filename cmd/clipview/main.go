// Command clipview plays one animation clip folder the way the game does, or
// splits a sprite sheet into such a folder.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hopper/assets"
	"github.com/milk9111/hopper/ecs/component"
)

const viewSize = 512

type clipGame struct {
	name          string
	frames        []*ebiten.Image
	anim          component.Animation
	framesPerTick int
	scale         float64
	paused        bool
}

func (g *clipGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.anim.FlipX = !g.anim.FlipX
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.framesPerTick++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.framesPerTick > 1 {
		g.framesPerTick--
	}
	if !g.paused {
		g.anim.Advance(len(g.frames), g.framesPerTick)
	}
	return nil
}

func (g *clipGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d/%d  frames_per_tick %d\nspace pause  f flip  up/down speed",
		g.name, g.anim.Frame+1, len(g.frames), g.framesPerTick))
	if len(g.frames) == 0 {
		return
	}

	img := g.frames[g.anim.Frame]
	fw := float64(img.Bounds().Dx()) * g.scale
	fh := float64(img.Bounds().Dy()) * g.scale

	op := &ebiten.DrawImageOptions{}
	if g.anim.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate((viewSize-fw)/2, (viewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

func (g *clipGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// splitSheet cuts a sprite sheet into frameW x frameH cells, row by row, and
// writes them as <outDir>/NN.png. count <= 0 keeps every cell.
func splitSheet(sheetPath, outDir string, frameW, frameH, count int) (int, error) {
	if frameW <= 0 || frameH <= 0 {
		return 0, fmt.Errorf("invalid cell size %dx%d", frameW, frameH)
	}
	f, err := os.Open(sheetPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sheet, _, err := image.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", sheetPath, err)
	}
	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}
	sub, ok := sheet.(subImager)
	if !ok {
		return 0, fmt.Errorf("%s: image type %T cannot be sliced", sheetPath, sheet)
	}

	cols := sheet.Bounds().Dx() / frameW
	rows := sheet.Bounds().Dy() / frameH
	if cols == 0 || rows == 0 {
		return 0, fmt.Errorf("%s: %dx%d cell larger than sheet %v", sheetPath, frameW, frameH, sheet.Bounds().Size())
	}
	maxFrames := cols * rows
	if count <= 0 || count > maxFrames {
		count = maxFrames
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, err
	}

	origin := sheet.Bounds().Min
	for i := 0; i < count; i++ {
		col := i % cols
		row := i / cols
		r := image.Rect(col*frameW, row*frameH, col*frameW+frameW, row*frameH+frameH).Add(origin)
		out, err := os.Create(filepath.Join(outDir, fmt.Sprintf("%02d.png", i)))
		if err != nil {
			return i, err
		}
		if err := png.Encode(out, sub.SubImage(r)); err != nil {
			out.Close()
			return i, err
		}
		if err := out.Close(); err != nil {
			return i, err
		}
	}
	return count, nil
}

func main() {
	framesDir := flag.String("frames", "frames", "directory holding one folder per clip")
	clip := flag.String("clip", component.AnimIdle.String(), "clip folder to play")
	framesPerTick := flag.Int("fpt", 6, "ticks per animation frame")
	scale := flag.Float64("scale", 4, "draw scale")
	sheet := flag.String("sheet", "", "split this sprite sheet into -frames/-clip and exit")
	frameW := flag.Int("w", 32, "sheet cell width")
	frameH := flag.Int("h", 32, "sheet cell height")
	count := flag.Int("n", 0, "number of sheet cells to keep (0 = all)")
	flag.Parse()

	if *sheet != "" {
		n, err := splitSheet(*sheet, filepath.Join(*framesDir, *clip), *frameW, *frameH, *count)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %d frames to %s", n, filepath.Join(*framesDir, *clip))
		return
	}

	clips, err := assets.LoadClips(os.DirFS(*framesDir), []string{*clip})
	if err != nil {
		log.Fatal(err)
	}
	if clips.FrameCount(*clip) == 0 {
		log.Printf("clip %s has no frames in %s", *clip, *framesDir)
	}

	g := &clipGame{
		name:          *clip,
		frames:        clips.Frames(*clip),
		framesPerTick: *framesPerTick,
		scale:         *scale,
	}
	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("clipview: " + *clip)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
