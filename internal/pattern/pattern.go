// Package pattern renders a test card sized to a video mode
package pattern

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	maxDimension = 16384
	// labelLines is the label height as a fraction of the image height
	labelLines = 24
)

// SMPTE-like bar colours, left to right
var bars = []color.NRGBA{
	{R: 192, G: 192, B: 192, A: 255},
	{R: 192, G: 192, B: 0, A: 255},
	{R: 0, G: 192, B: 192, A: 255},
	{R: 0, G: 192, B: 0, A: 255},
	{R: 192, G: 0, B: 192, A: 255},
	{R: 192, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 192, A: 255},
	{R: 16, G: 16, B: 16, A: 255},
}

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

// Renderer draws test cards
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer creates a new test card renderer
func NewRenderer(logger *zap.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render draws colour bars, a border, a centre cross and the mode label
// on an image the size of the mode
func (r *Renderer) Render(mode domain.VideoMode) (*image.NRGBA, error) {
	w, h := mode.Width, mode.Height
	if w <= 0 || h <= 0 || w > maxDimension || h > maxDimension {
		return nil, fmt.Errorf("invalid mode dimensions: %dx%d", w, h)
	}

	img := imaging.New(w, h, black)

	// 1. Colour bars
	for i, c := range bars {
		x0 := i * w / len(bars)
		x1 := (i + 1) * w / len(bars)
		fill(img, image.Rect(x0, 0, x1, h), c)
	}

	// 2. Border, thick enough to survive overscan checks
	t := max(1, h/270)
	fill(img, image.Rect(0, 0, w, t), white)
	fill(img, image.Rect(0, h-t, w, h), white)
	fill(img, image.Rect(0, 0, t, h), white)
	fill(img, image.Rect(w-t, 0, w, h), white)

	// 3. Centre cross
	cx, cy := w/2, h/2
	arm := min(w, h) / 8
	fill(img, image.Rect(cx-arm, cy-t/2, cx+arm, cy-t/2+t), white)
	fill(img, image.Rect(cx-t/2, cy-arm, cx-t/2+t, cy+arm), white)

	// 4. Label below the cross
	label := r.label(mode.String(), h/labelLines)
	lb := label.Bounds()
	x := (w - lb.Dx()) / 2
	y := cy + arm + t*4
	if y+lb.Dy() > h-t {
		y = max(t, h-t-lb.Dy())
	}
	img = imaging.Paste(img, label, image.Pt(x, y))

	r.logger.Debug("Test card rendered", zap.Int("w", w), zap.Int("h", h), zap.String("mode", mode.String()))
	return img, nil
}

// label renders text with the 7x13 bitmap face, upscaled to height
func (r *Renderer) label(text string, height int) *image.NRGBA {
	face := basicfont.Face7x13
	const pad = 2

	width := font.MeasureString(face, text).Ceil() + pad*2
	lineHeight := face.Metrics().Height.Ceil() + pad*2

	src := imaging.New(width, lineHeight, black)
	d := &font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(white),
		Face: face,
		Dot:  fixed.P(pad, pad+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)

	if height <= lineHeight {
		return src
	}
	// integer scaling keeps the glyphs sharp
	scale := height / lineHeight
	return imaging.Resize(src, width*scale, lineHeight*scale, imaging.NearestNeighbor)
}

func fill(img *image.NRGBA, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// Save writes the image to path. The format follows the file extension.
func (r *Renderer) Save(img image.Image, path string) (string, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := imaging.Save(img, path, imaging.JPEGQuality(90)); err != nil {
		return "", fmt.Errorf("failed to write test card: %w", err)
	}

	r.logger.Info("Test card saved", zap.String("path", path))

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, nil // Return relative path if abs fails
	}
	return absPath, nil
}
