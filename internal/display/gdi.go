package display

import (
	"image"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

const (
	displayDeviceActive   = 0x00000001
	displayDeviceAttached = 0x00000002
	displayDevicePrimary  = 0x00000004

	dmInterlaced = 0x00000002

	dmBitsPerPel       = 0x00040000
	dmPelsWidth        = 0x00080000
	dmPelsHeight       = 0x00100000
	dmDisplayFlags     = 0x00200000
	dmDisplayFrequency = 0x00400000

	cdsFullscreen        = 0x00000004
	dispChangeSuccessful = 0

	// enumCurrentSettings asks for the settings the device currently runs at
	enumCurrentSettings = -1
)

type displayDevice struct {
	Name        string
	Description string
	StateFlags  uint32
}

// devMode keeps the display part of a DEVMODE record
type devMode struct {
	Width        uint32
	Height       uint32
	BitsPerPel   uint32
	Frequency    uint32
	DisplayFlags uint32
	X            int32
	Y            int32
}

type gdiAPI interface {
	EnumDisplayDevice(index int) (displayDevice, bool)
	EnumDisplaySettings(device string, mode int) (devMode, bool)
	ChangeDisplaySettings(device string, mode devMode, fields, flags uint32) int32
}

type gdiAdapter struct {
	device string
	modes  []devMode
}

// GDIBackend drives displays through the Windows GDI display settings calls.
// Display ids are contiguous ordinals over the adapters attached to the desktop,
// mode ids are the enumeration indexes of each adapter.
type GDIBackend struct {
	*Manager
	api      gdiAPI
	adapters map[int]*gdiAdapter
}

var _ domain.DisplayManager = (*GDIBackend)(nil)

func newGDIBackend(logger *zap.Logger, api gdiAPI) *GDIBackend {
	return &GDIBackend{
		Manager:  newManager(logger.Named("gdi")),
		api:      api,
		adapters: make(map[int]*gdiAdapter),
	}
}

func (b *GDIBackend) Initialize() bool {
	b.clear()

	ordinal, total := 0, 0
	for index := 0; ; index++ {
		dev, ok := b.api.EnumDisplayDevice(index)
		if !ok {
			break
		}
		if dev.StateFlags&(displayDeviceActive|displayDeviceAttached) == 0 {
			continue
		}

		display := domain.NewDisplay(ordinal, dev.Description)
		adapter := &gdiAdapter{device: dev.Name}
		for modeID := 0; ; modeID++ {
			native, ok := b.api.EnumDisplaySettings(dev.Name, modeID)
			if !ok {
				break
			}
			vm := convertDevMode(native)
			vm.ID = modeID
			display.Modes[modeID] = &vm
			adapter.modes = append(adapter.modes, native)
		}

		total += len(adapter.modes)
		b.addDisplay(display)
		b.adapters[ordinal] = adapter
		ordinal++
	}

	if ordinal == 0 {
		b.logger.Warn("No display device attached to the desktop")
		return false
	}
	if total == 0 {
		b.logger.Error("No video mode found on any display")
		b.clear()
		return false
	}

	return b.Manager.Initialize()
}

func convertDevMode(native devMode) domain.VideoMode {
	return domain.VideoMode{
		Width:        int(native.Width),
		Height:       int(native.Height),
		RefreshRate:  normalizeIntegerRate(int(native.Frequency)),
		BitsPerPixel: bitsPerPixelFromDepth(int(native.BitsPerPel)),
		Interlaced:   native.DisplayFlags&dmInterlaced != 0,
	}
}

func (b *GDIBackend) SetDisplayMode(display, mode int) bool {
	if !b.IsValidDisplayMode(display, mode) {
		return false
	}
	adapter, ok := b.adapters[display]
	if !ok || mode >= len(adapter.modes) {
		return false
	}

	rc := b.api.ChangeDisplaySettings(adapter.device, adapter.modes[mode],
		dmPelsWidth|dmPelsHeight|dmDisplayFrequency|dmDisplayFlags, cdsFullscreen)
	if rc != dispChangeSuccessful {
		b.logger.Error("Unable to change display settings",
			zap.Int("display", display),
			zap.Int("mode", mode),
			zap.String("device", adapter.device),
			zap.Int32("code", rc))
		return false
	}

	return true
}

// GetCurrentDisplayMode compares the running settings field by field with the
// enumerated modes. The first equal mode wins.
func (b *GDIBackend) GetCurrentDisplayMode(display int) int {
	d, ok := b.Display(display)
	if !ok {
		return domain.NoMode
	}
	adapter, ok := b.adapters[display]
	if !ok {
		return domain.NoMode
	}

	native, ok := b.api.EnumDisplaySettings(adapter.device, enumCurrentSettings)
	if !ok {
		b.logger.Error("Unable to read current display settings",
			zap.Int("display", display),
			zap.String("device", adapter.device))
		return domain.NoMode
	}

	current := convertDevMode(native)
	for _, id := range d.ModeIDs() {
		if current.Equal(*d.Modes[id]) {
			return id
		}
	}

	return domain.NoMode
}

func (b *GDIBackend) GetMainDisplay() int {
	for index := 0; ; index++ {
		dev, ok := b.api.EnumDisplayDevice(index)
		if !ok {
			return domain.NoDisplay
		}
		if dev.StateFlags&displayDevicePrimary == 0 {
			continue
		}
		for ordinal, adapter := range b.adapters {
			if adapter.device == dev.Name {
				return ordinal
			}
		}
		return domain.NoDisplay
	}
}

func (b *GDIBackend) GetDisplayFromPoint(x, y int) int {
	pt := image.Pt(x, y)
	for _, d := range b.Displays() {
		adapter := b.adapters[d.ID]
		native, ok := b.api.EnumDisplaySettings(adapter.device, enumCurrentSettings)
		if !ok {
			b.logger.Debug("Unable to read display position", zap.Int("display", d.ID))
			continue
		}

		bounds := image.Rect(int(native.X), int(native.Y),
			int(native.X)+int(native.Width), int(native.Y)+int(native.Height))
		if pt.In(bounds) {
			return d.ID
		}
	}

	return domain.NoDisplay
}

func (b *GDIBackend) Close() error {
	b.clear()
	return nil
}

func (b *GDIBackend) clear() {
	b.adapters = make(map[int]*gdiAdapter)
	b.reset()
}
