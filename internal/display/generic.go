package display

import (
	"fmt"
	"image"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

// boundsSource reports the geometry of the active displays
type boundsSource interface {
	NumActiveDisplays() int
	DisplayBounds(index int) image.Rectangle
}

// GenericBackend is a read-only backend built on display geometry alone.
// Every display exposes a single mode, its current one, so mode switching
// only succeeds when the requested mode is already active.
type GenericBackend struct {
	*Manager
	source boundsSource
	bounds map[int]image.Rectangle
}

var _ domain.DisplayManager = (*GenericBackend)(nil)

func newGenericBackend(logger *zap.Logger, source boundsSource) *GenericBackend {
	return &GenericBackend{
		Manager: newManager(logger.Named("generic")),
		source:  source,
		bounds:  make(map[int]image.Rectangle),
	}
}

type emptyBounds struct{}

func (emptyBounds) NumActiveDisplays() int            { return 0 }
func (emptyBounds) DisplayBounds(int) image.Rectangle { return image.Rectangle{} }

// NewFallbackBackend returns a backend that never finds a display. It lets the
// daemon run, with mode switching disabled, where no native backend is available.
func NewFallbackBackend(logger *zap.Logger) *GenericBackend {
	return newGenericBackend(logger, emptyBounds{})
}

func (b *GenericBackend) Initialize() bool {
	b.clear()

	n := b.source.NumActiveDisplays()
	if n <= 0 {
		b.logger.Warn("No active display found")
		return false
	}

	for i := 0; i < n; i++ {
		r := b.source.DisplayBounds(i)
		display := domain.NewDisplay(i, fmt.Sprintf("Display %d", i))
		display.Modes[0] = &domain.VideoMode{
			ID:          0,
			Width:       r.Dx(),
			Height:      r.Dy(),
			RefreshRate: normalizeContinuousRate(0),
		}
		b.addDisplay(display)
		b.bounds[i] = r
	}

	return b.Manager.Initialize()
}

func (b *GenericBackend) SetDisplayMode(display, mode int) bool {
	if !b.IsValidDisplayMode(display, mode) {
		return false
	}
	b.logger.Debug("Mode already active", zap.Int("display", display), zap.Int("mode", mode))
	return true
}

func (b *GenericBackend) GetCurrentDisplayMode(display int) int {
	if !b.IsValidDisplayMode(display, 0) {
		return domain.NoMode
	}
	return 0
}

// GetMainDisplay returns the display at the desktop origin, which is where
// every supported windowing system puts the primary one.
func (b *GenericBackend) GetMainDisplay() int {
	if len(b.bounds) == 0 {
		return domain.NoDisplay
	}
	if d := b.GetDisplayFromPoint(0, 0); d != domain.NoDisplay {
		return d
	}
	return 0
}

func (b *GenericBackend) GetDisplayFromPoint(x, y int) int {
	pt := image.Pt(x, y)
	for _, d := range b.Displays() {
		if pt.In(b.bounds[d.ID]) {
			return d.ID
		}
	}
	return domain.NoDisplay
}

func (b *GenericBackend) Close() error {
	b.clear()
	return nil
}

func (b *GenericBackend) clear() {
	b.bounds = make(map[int]image.Rectangle)
	b.reset()
}
