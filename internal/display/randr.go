package display

import (
	"image"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

const (
	randrModeInterlace  = 0x00000010
	randrModeDoubleScan = 0x00000020

	randrSetConfigSuccess = 0
)

type randrModeInfo struct {
	ID       uint32
	Width    uint16
	Height   uint16
	DotClock uint32
	HTotal   uint16
	VTotal   uint16
	Flags    uint32
}

type randrOutput struct {
	ID    uint32
	Name  string
	Crtc  uint32
	Modes []uint32
}

type randrResources struct {
	Outputs []randrOutput
	Modes   map[uint32]randrModeInfo
	Depth   int
}

type randrCrtc struct {
	X        int16
	Y        int16
	Width    uint16
	Height   uint16
	Mode     uint32
	Rotation uint16
	Outputs  []uint32
}

// randrAPI is the subset of the X11 RandR extension used by RandRBackend.
// Resources only reports connected outputs.
type randrAPI interface {
	Resources() (randrResources, error)
	CrtcInfo(crtc uint32) (randrCrtc, error)
	SetCrtcMode(crtc, mode uint32, current randrCrtc) (uint8, error)
	PrimaryOutput() (uint32, error)
	Close()
}

type randrHandle struct {
	output uint32
	crtc   uint32
	modes  []uint32
}

// RandRBackend drives X11 outputs through the RandR extension.
// Only outputs driven by a CRTC are exposed since the others cannot switch modes.
type RandRBackend struct {
	*Manager
	api     randrAPI
	handles map[int]*randrHandle
	closed  bool
}

var _ domain.DisplayManager = (*RandRBackend)(nil)

func newRandRBackend(logger *zap.Logger, api randrAPI) *RandRBackend {
	return &RandRBackend{
		Manager: newManager(logger.Named("randr")),
		api:     api,
		handles: make(map[int]*randrHandle),
	}
}

func (b *RandRBackend) Initialize() bool {
	b.clear()
	if b.closed {
		return false
	}

	res, err := b.api.Resources()
	if err != nil {
		b.logger.Error("Unable to read screen resources", zap.Error(err))
		return false
	}

	bpp := bitsPerPixelFromDepth(res.Depth)
	ordinal, total := 0, 0
	for _, out := range res.Outputs {
		if out.Crtc == 0 {
			b.logger.Debug("Skipping output without CRTC", zap.String("output", out.Name))
			continue
		}

		display := domain.NewDisplay(ordinal, out.Name)
		handle := &randrHandle{output: out.ID, crtc: out.Crtc}
		for _, xid := range out.Modes {
			info, ok := res.Modes[xid]
			if !ok {
				continue
			}
			modeID := len(handle.modes)
			display.Modes[modeID] = &domain.VideoMode{
				ID:           modeID,
				Width:        int(info.Width),
				Height:       int(info.Height),
				RefreshRate:  normalizeContinuousRate(randrRefreshRate(info)),
				BitsPerPixel: bpp,
				Interlaced:   info.Flags&randrModeInterlace != 0,
			}
			handle.modes = append(handle.modes, xid)
		}

		total += len(handle.modes)
		b.addDisplay(display)
		b.handles[ordinal] = handle
		ordinal++
	}

	if total == 0 {
		b.logger.Error("No video mode found on any output")
		b.clear()
		return false
	}

	return b.Manager.Initialize()
}

// randrRefreshRate derives the vertical refresh rate from the mode timings
func randrRefreshRate(info randrModeInfo) float64 {
	vtotal := float64(info.VTotal)
	if info.Flags&randrModeDoubleScan != 0 {
		vtotal *= 2
	}
	if info.Flags&randrModeInterlace != 0 {
		vtotal /= 2
	}
	if info.HTotal == 0 || vtotal == 0 {
		return 0
	}
	return float64(info.DotClock) / (float64(info.HTotal) * vtotal)
}

func (b *RandRBackend) SetDisplayMode(display, mode int) bool {
	if !b.IsValidDisplayMode(display, mode) {
		return false
	}
	handle, ok := b.handles[display]
	if !ok || mode >= len(handle.modes) {
		return false
	}

	current, err := b.api.CrtcInfo(handle.crtc)
	if err != nil {
		b.logger.Error("Unable to read CRTC", zap.Int("display", display), zap.Error(err))
		return false
	}

	status, err := b.api.SetCrtcMode(handle.crtc, handle.modes[mode], current)
	if err != nil || status != randrSetConfigSuccess {
		b.logger.Error("Unable to set CRTC mode",
			zap.Int("display", display),
			zap.Int("mode", mode),
			zap.Uint8("status", status),
			zap.Error(err))
		return false
	}

	return true
}

// GetCurrentDisplayMode looks the mode XID driven by the CRTC up in the retained list
func (b *RandRBackend) GetCurrentDisplayMode(display int) int {
	handle, ok := b.handles[display]
	if !ok {
		return domain.NoMode
	}

	current, err := b.api.CrtcInfo(handle.crtc)
	if err != nil {
		b.logger.Error("Unable to read CRTC", zap.Int("display", display), zap.Error(err))
		return domain.NoMode
	}

	for modeID, xid := range handle.modes {
		if xid == current.Mode {
			return modeID
		}
	}

	return domain.NoMode
}

func (b *RandRBackend) GetMainDisplay() int {
	if len(b.handles) == 0 {
		return domain.NoDisplay
	}

	primary, err := b.api.PrimaryOutput()
	if err != nil {
		b.logger.Error("Unable to read primary output", zap.Error(err))
		return domain.NoDisplay
	}
	if primary == 0 {
		return domain.NoDisplay
	}

	for ordinal, handle := range b.handles {
		if handle.output == primary {
			return ordinal
		}
	}

	return domain.NoDisplay
}

func (b *RandRBackend) GetDisplayFromPoint(x, y int) int {
	pt := image.Pt(x, y)
	for _, d := range b.Displays() {
		crtc, err := b.api.CrtcInfo(b.handles[d.ID].crtc)
		if err != nil {
			b.logger.Debug("Unable to read CRTC", zap.Int("display", d.ID), zap.Error(err))
			continue
		}

		bounds := image.Rect(int(crtc.X), int(crtc.Y),
			int(crtc.X)+int(crtc.Width), int(crtc.Y)+int(crtc.Height))
		if pt.In(bounds) {
			return d.ID
		}
	}

	return domain.NoDisplay
}

func (b *RandRBackend) Close() error {
	b.clear()
	if !b.closed {
		b.closed = true
		b.api.Close()
	}
	return nil
}

func (b *RandRBackend) clear() {
	b.handles = make(map[int]*randrHandle)
	b.reset()
}
