package display

import (
	"fmt"
	"sort"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

const (
	maxQuartzDisplays = 32

	quartzModeInterlaced = 0x00000002

	pixelEncoding32 = "--------RRRRRRRRGGGGGGGGBBBBBBBB"
	pixelEncoding16 = "-RRRRRGGGGGBBBBB"
	pixelEncoding8  = "PPPPPPPP"
)

// quartzAPI is the subset of CoreGraphics and CoreFoundation used by QuartzBackend.
// References returned by the Copy calls are owned by the caller and must be released.
// Values read out of an array are borrowed from it.
type quartzAPI interface {
	ActiveDisplayList(max int) ([]uint32, int32)
	CopyAllDisplayModes(display uint32) uintptr
	ArrayCount(array uintptr) int
	ArrayValueAtIndex(array uintptr, index int) uintptr
	ModeWidth(mode uintptr) int
	ModeHeight(mode uintptr) int
	ModeRefreshRate(mode uintptr) float64
	ModeIOFlags(mode uintptr) uint32
	ModeIODisplayModeID(mode uintptr) int32
	CopyPixelEncoding(mode uintptr) uintptr
	StringEquals(str uintptr, value string) bool
	CopyDisplayMode(display uint32) uintptr
	SetDisplayMode(display uint32, mode uintptr) int32
	MainDisplayID() uint32
	DisplaysWithPoint(x, y float64, max int) ([]uint32, int32)
	Release(ref uintptr)
}

// QuartzBackend drives displays through the macOS Quartz Display Services.
// The mode list of every display is retained for the lifetime of the snapshot
// since mode ids index into it.
type QuartzBackend struct {
	*Manager
	api        quartzAPI
	displayIDs []uint32
	modeLists  map[int]uintptr
}

var _ domain.DisplayManager = (*QuartzBackend)(nil)

func newQuartzBackend(logger *zap.Logger, api quartzAPI) *QuartzBackend {
	return &QuartzBackend{
		Manager:   newManager(logger.Named("quartz")),
		api:       api,
		modeLists: make(map[int]uintptr),
	}
}

func (b *QuartzBackend) Initialize() bool {
	b.clear()

	ids, cgErr := b.api.ActiveDisplayList(maxQuartzDisplays)
	if cgErr != 0 {
		b.logger.Error("Unable to list active displays", zap.Int32("cgError", cgErr))
		return false
	}
	if len(ids) == 0 {
		b.logger.Warn("No active display found")
		return false
	}
	b.displayIDs = ids

	total := 0
	for i, id := range ids {
		display := domain.NewDisplay(i, fmt.Sprintf("Display %d", i))
		b.addDisplay(display)

		list := b.api.CopyAllDisplayModes(id)
		if list == 0 {
			b.logger.Warn("Unable to copy display modes", zap.Int("display", i), zap.Uint32("displayID", id))
			continue
		}
		b.modeLists[i] = list

		count := b.api.ArrayCount(list)
		for modeID := 0; modeID < count; modeID++ {
			display.Modes[modeID] = b.convertMode(modeID, b.api.ArrayValueAtIndex(list, modeID))
		}
		total += count
	}

	if total == 0 {
		b.logger.Error("No video mode found on any display")
		b.clear()
		return false
	}

	return b.Manager.Initialize()
}

func (b *QuartzBackend) convertMode(id int, mode uintptr) *domain.VideoMode {
	return &domain.VideoMode{
		ID:           id,
		Width:        b.api.ModeWidth(mode),
		Height:       b.api.ModeHeight(mode),
		RefreshRate:  normalizeContinuousRate(b.api.ModeRefreshRate(mode)),
		BitsPerPixel: b.pixelDepth(mode),
		Interlaced:   b.api.ModeIOFlags(mode)&quartzModeInterlaced != 0,
	}
}

func (b *QuartzBackend) pixelDepth(mode uintptr) int {
	encoding := b.api.CopyPixelEncoding(mode)
	if encoding == 0 {
		return 0
	}
	defer b.api.Release(encoding)

	switch {
	case b.api.StringEquals(encoding, pixelEncoding32):
		return 32
	case b.api.StringEquals(encoding, pixelEncoding16):
		return 16
	case b.api.StringEquals(encoding, pixelEncoding8):
		return 8
	default:
		return 0
	}
}

func (b *QuartzBackend) SetDisplayMode(display, mode int) bool {
	if !b.IsValidDisplayMode(display, mode) {
		return false
	}
	list, ok := b.modeLists[display]
	if !ok {
		return false
	}

	native := b.api.ArrayValueAtIndex(list, mode)
	if cgErr := b.api.SetDisplayMode(b.displayIDs[display], native); cgErr != 0 {
		b.logger.Error("Unable to set display mode",
			zap.Int("display", display),
			zap.Int("mode", mode),
			zap.Int32("cgError", cgErr))
		return false
	}

	return true
}

// GetCurrentDisplayMode matches the active mode against the retained list by
// its IOKit mode id, which is stable where the mode references are not.
func (b *QuartzBackend) GetCurrentDisplayMode(display int) int {
	if !b.IsValidDisplay(display) {
		return domain.NoMode
	}
	list, ok := b.modeLists[display]
	if !ok {
		return domain.NoMode
	}

	current := b.api.CopyDisplayMode(b.displayIDs[display])
	if current == 0 {
		b.logger.Error("Unable to copy current display mode", zap.Int("display", display))
		return domain.NoMode
	}
	defer b.api.Release(current)

	currentID := b.api.ModeIODisplayModeID(current)
	count := b.api.ArrayCount(list)
	for modeID := 0; modeID < count; modeID++ {
		if b.api.ModeIODisplayModeID(b.api.ArrayValueAtIndex(list, modeID)) == currentID {
			return modeID
		}
	}

	return domain.NoMode
}

func (b *QuartzBackend) GetMainDisplay() int {
	return b.ordinalOf(b.api.MainDisplayID())
}

func (b *QuartzBackend) GetDisplayFromPoint(x, y int) int {
	ids, cgErr := b.api.DisplaysWithPoint(float64(x), float64(y), 1)
	if cgErr != 0 {
		b.logger.Debug("Unable to find display at point",
			zap.Int("x", x),
			zap.Int("y", y),
			zap.Int32("cgError", cgErr))
		return domain.NoDisplay
	}
	if len(ids) == 0 {
		return domain.NoDisplay
	}
	return b.ordinalOf(ids[0])
}

func (b *QuartzBackend) ordinalOf(id uint32) int {
	for i, displayID := range b.displayIDs {
		if displayID == id {
			return i
		}
	}
	return domain.NoDisplay
}

func (b *QuartzBackend) Close() error {
	b.clear()
	return nil
}

// clear releases the retained mode lists, last acquired first, and drops the snapshot
func (b *QuartzBackend) clear() {
	displays := make([]int, 0, len(b.modeLists))
	for display := range b.modeLists {
		displays = append(displays, display)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(displays)))

	for _, display := range displays {
		b.api.Release(b.modeLists[display])
	}

	b.modeLists = make(map[int]uintptr)
	b.displayIDs = nil
	b.reset()
}
