// Package preview renders a top-down plot of a sampled trajectory so the
// shape of a path can be checked without opening the viewer.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"golang.org/x/image/draw"
)

// DefaultSize is the output edge length in pixels.
const DefaultSize = 512

// supersample is the oversampling factor before the final downscale.
const supersample = 4

var (
	background  = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	pathColor   = color.RGBA{R: 120, G: 180, B: 255, A: 255}
	centerColor = color.RGBA{R: 255, G: 120, B: 80, A: 255}
	startColor  = color.RGBA{R: 110, G: 220, B: 130, A: 255}
)

// Render plots the X/Y projection of the positions as a polyline, with a
// cross at the path center and a dot at the first frame. The plot is drawn
// supersampled and downscaled with CatmullRom filtering for smooth edges.
func Render(positions []v3.Vec, center v3.Vec, size int) *image.NRGBA {
	if size <= 0 {
		size = DefaultSize
	}
	big := size * supersample

	img := image.NewRGBA(image.Rect(0, 0, big, big))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = background.R
		img.Pix[i+1] = background.G
		img.Pix[i+2] = background.B
		img.Pix[i+3] = background.A
	}

	minX, minY := center.X, center.Y
	maxX, maxY := center.X, center.Y
	for _, p := range positions {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	margin := 0.1 * span
	scale := float64(big) / (span + 2*margin)

	// Image Y grows downward, world Y grows upward.
	toPixel := func(p v3.Vec) (float64, float64) {
		px := (p.X - minX + margin + (span-(maxX-minX))/2) * scale
		py := float64(big) - (p.Y-minY+margin+(span-(maxY-minY))/2)*scale
		return px, py
	}

	for i := 0; i+1 < len(positions); i++ {
		x0, y0 := toPixel(positions[i])
		x1, y1 := toPixel(positions[i+1])
		drawLine(img, x0, y0, x1, y1, pathColor)
	}

	cx, cy := toPixel(center)
	arm := float64(3 * supersample)
	drawLine(img, cx-arm, cy, cx+arm, cy, centerColor)
	drawLine(img, cx, cy-arm, cx, cy+arm, centerColor)

	if len(positions) > 0 {
		sx, sy := toPixel(positions[0])
		drawDot(img, sx, sy, float64(2*supersample), startColor)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// WriteWebP encodes the preview image to a WebP file, creating the
// destination directory if needed.
func WriteWebP(img *image.NRGBA, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create preview directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("webp encode failed: %w", err)
	}
	return nil
}

// drawLine steps along the segment one pixel at a time. At supersampled
// resolution the aliasing disappears in the downscale.
func drawLine(img *image.RGBA, x0, y0, x1, y1 float64, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		setPixel(img, int(x0+dx*t+0.5), int(y0+dy*t+0.5), c)
	}
}

func drawDot(img *image.RGBA, x, y, r float64, c color.RGBA) {
	for py := int(y - r); py <= int(y+r); py++ {
		for px := int(x - r); px <= int(x+r); px++ {
			fx, fy := float64(px)-x, float64(py)-y
			if fx*fx+fy*fy <= r*r {
				setPixel(img, px, py, c)
			}
		}
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	i := img.PixOffset(x, y)
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}
