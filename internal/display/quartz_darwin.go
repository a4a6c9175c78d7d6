//go:build darwin

package display

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
)

const (
	coreGraphicsPath   = "/System/Library/Frameworks/CoreGraphics.framework/CoreGraphics"
	coreFoundationPath = "/System/Library/Frameworks/CoreFoundation.framework/CoreFoundation"

	cfStringEncodingUTF8 = 0x08000100
	cfCompareEqualTo     = 0
)

type cgPoint struct {
	X, Y float64
}

var (
	quartzInitOnce sync.Once
	quartzInitErr  error

	coreGraphics   uintptr
	coreFoundation uintptr

	cgGetActiveDisplayList          func(maxDisplays uint32, displays *uint32, count *uint32) int32
	cgGetDisplaysWithPoint          func(point cgPoint, maxDisplays uint32, displays *uint32, count *uint32) int32
	cgMainDisplayID                 func() uint32
	cgDisplayCopyAllDisplayModes    func(display uint32, options uintptr) uintptr
	cgDisplayCopyDisplayMode        func(display uint32) uintptr
	cgDisplaySetDisplayMode         func(display uint32, mode uintptr, options uintptr) int32
	cgDisplayModeGetWidth           func(mode uintptr) uintptr
	cgDisplayModeGetHeight          func(mode uintptr) uintptr
	cgDisplayModeGetRefreshRate     func(mode uintptr) float64
	cgDisplayModeGetIOFlags         func(mode uintptr) uint32
	cgDisplayModeGetIODisplayModeID func(mode uintptr) int32
	cgDisplayModeCopyPixelEncoding  func(mode uintptr) uintptr

	cfArrayGetCount           func(array uintptr) int
	cfArrayGetValueAtIndex    func(array uintptr, index int) uintptr
	cfStringCreateWithCString func(alloc uintptr, str string, encoding uint32) uintptr
	cfStringCompare           func(a, b uintptr, options uint64) int
	cfRelease                 func(ref uintptr)
)

func ensureQuartz() error {
	quartzInitOnce.Do(func() {
		var err error
		coreGraphics, err = purego.Dlopen(coreGraphicsPath, purego.RTLD_GLOBAL)
		if err != nil {
			quartzInitErr = err
			return
		}
		coreFoundation, err = purego.Dlopen(coreFoundationPath, purego.RTLD_GLOBAL)
		if err != nil {
			quartzInitErr = err
			return
		}

		purego.RegisterLibFunc(&cgGetActiveDisplayList, coreGraphics, "CGGetActiveDisplayList")
		purego.RegisterLibFunc(&cgGetDisplaysWithPoint, coreGraphics, "CGGetDisplaysWithPoint")
		purego.RegisterLibFunc(&cgMainDisplayID, coreGraphics, "CGMainDisplayID")
		purego.RegisterLibFunc(&cgDisplayCopyAllDisplayModes, coreGraphics, "CGDisplayCopyAllDisplayModes")
		purego.RegisterLibFunc(&cgDisplayCopyDisplayMode, coreGraphics, "CGDisplayCopyDisplayMode")
		purego.RegisterLibFunc(&cgDisplaySetDisplayMode, coreGraphics, "CGDisplaySetDisplayMode")
		purego.RegisterLibFunc(&cgDisplayModeGetWidth, coreGraphics, "CGDisplayModeGetWidth")
		purego.RegisterLibFunc(&cgDisplayModeGetHeight, coreGraphics, "CGDisplayModeGetHeight")
		purego.RegisterLibFunc(&cgDisplayModeGetRefreshRate, coreGraphics, "CGDisplayModeGetRefreshRate")
		purego.RegisterLibFunc(&cgDisplayModeGetIOFlags, coreGraphics, "CGDisplayModeGetIOFlags")
		purego.RegisterLibFunc(&cgDisplayModeGetIODisplayModeID, coreGraphics, "CGDisplayModeGetIODisplayModeID")
		purego.RegisterLibFunc(&cgDisplayModeCopyPixelEncoding, coreGraphics, "CGDisplayModeCopyPixelEncoding")

		purego.RegisterLibFunc(&cfArrayGetCount, coreFoundation, "CFArrayGetCount")
		purego.RegisterLibFunc(&cfArrayGetValueAtIndex, coreFoundation, "CFArrayGetValueAtIndex")
		purego.RegisterLibFunc(&cfStringCreateWithCString, coreFoundation, "CFStringCreateWithCString")
		purego.RegisterLibFunc(&cfStringCompare, coreFoundation, "CFStringCompare")
		purego.RegisterLibFunc(&cfRelease, coreFoundation, "CFRelease")
	})
	return quartzInitErr
}

// quartzNative implements quartzAPI on top of the system frameworks
type quartzNative struct{}

func newQuartzNative() (*quartzNative, error) {
	if err := ensureQuartz(); err != nil {
		return nil, fmt.Errorf("load CoreGraphics: %w", err)
	}
	return &quartzNative{}, nil
}

func (quartzNative) ActiveDisplayList(max int) ([]uint32, int32) {
	ids := make([]uint32, max)
	var count uint32
	if rc := cgGetActiveDisplayList(uint32(max), &ids[0], &count); rc != 0 {
		return nil, rc
	}
	return ids[:count], 0
}

func (quartzNative) DisplaysWithPoint(x, y float64, max int) ([]uint32, int32) {
	ids := make([]uint32, max)
	var count uint32
	if rc := cgGetDisplaysWithPoint(cgPoint{X: x, Y: y}, uint32(max), &ids[0], &count); rc != 0 {
		return nil, rc
	}
	return ids[:count], 0
}

func (quartzNative) MainDisplayID() uint32 { return cgMainDisplayID() }

func (quartzNative) CopyAllDisplayModes(display uint32) uintptr {
	return cgDisplayCopyAllDisplayModes(display, 0)
}

func (quartzNative) CopyDisplayMode(display uint32) uintptr {
	return cgDisplayCopyDisplayMode(display)
}

func (quartzNative) SetDisplayMode(display uint32, mode uintptr) int32 {
	return cgDisplaySetDisplayMode(display, mode, 0)
}

func (quartzNative) ModeWidth(mode uintptr) int  { return int(cgDisplayModeGetWidth(mode)) }
func (quartzNative) ModeHeight(mode uintptr) int { return int(cgDisplayModeGetHeight(mode)) }

func (quartzNative) ModeRefreshRate(mode uintptr) float64 {
	return cgDisplayModeGetRefreshRate(mode)
}

func (quartzNative) ModeIOFlags(mode uintptr) uint32 { return cgDisplayModeGetIOFlags(mode) }

func (quartzNative) ModeIODisplayModeID(mode uintptr) int32 {
	return cgDisplayModeGetIODisplayModeID(mode)
}

func (quartzNative) CopyPixelEncoding(mode uintptr) uintptr {
	return cgDisplayModeCopyPixelEncoding(mode)
}

func (quartzNative) ArrayCount(array uintptr) int { return cfArrayGetCount(array) }

func (quartzNative) ArrayValueAtIndex(array uintptr, index int) uintptr {
	return cfArrayGetValueAtIndex(array, index)
}

func (quartzNative) StringEquals(str uintptr, value string) bool {
	other := cfStringCreateWithCString(0, value, cfStringEncodingUTF8)
	if other == 0 {
		return false
	}
	defer cfRelease(other)
	return cfStringCompare(str, other, 0) == cfCompareEqualTo
}

func (quartzNative) Release(ref uintptr) {
	if ref != 0 {
		cfRelease(ref)
	}
}
