//go:build windows

package display

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayDevicesW      = user32.NewProc("EnumDisplayDevicesW")
	procEnumDisplaySettingsExW   = user32.NewProc("EnumDisplaySettingsExW")
	procChangeDisplaySettingsExW = user32.NewProc("ChangeDisplaySettingsExW")
)

type displayDeviceW struct {
	Cb           uint32
	DeviceName   [win.CCHDEVICENAME]uint16
	DeviceString [128]uint16
	StateFlags   uint32
	DeviceID     [128]uint16
	DeviceKey    [128]uint16
}

// devModeW is DEVMODEW with the display variant of its unions
type devModeW struct {
	DeviceName         [win.CCHDEVICENAME]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	Position           win.POINT
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [win.CCHFORMNAME]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
	ICMMethod          uint32
	ICMIntent          uint32
	MediaType          uint32
	DitherType         uint32
	Reserved1          uint32
	Reserved2          uint32
	PanningWidth       uint32
	PanningHeight      uint32
}

// gdiNative implements gdiAPI on top of user32
type gdiNative struct{}

func newGDINative() (*gdiNative, error) {
	for _, proc := range []*windows.LazyProc{procEnumDisplayDevicesW, procEnumDisplaySettingsExW, procChangeDisplaySettingsExW} {
		if err := proc.Find(); err != nil {
			return nil, fmt.Errorf("load %s: %w", proc.Name, err)
		}
	}
	return &gdiNative{}, nil
}

func (gdiNative) EnumDisplayDevice(index int) (displayDevice, bool) {
	var dd displayDeviceW
	dd.Cb = uint32(unsafe.Sizeof(dd))

	r1, _, _ := procEnumDisplayDevicesW.Call(0, uintptr(index), uintptr(unsafe.Pointer(&dd)), 0)
	if r1 == 0 {
		return displayDevice{}, false
	}

	return displayDevice{
		Name:        windows.UTF16ToString(dd.DeviceName[:]),
		Description: windows.UTF16ToString(dd.DeviceString[:]),
		StateFlags:  dd.StateFlags,
	}, true
}

func (gdiNative) EnumDisplaySettings(device string, mode int) (devMode, bool) {
	name, err := windows.UTF16PtrFromString(device)
	if err != nil {
		return devMode{}, false
	}

	var dm devModeW
	dm.Size = uint16(unsafe.Sizeof(dm))

	r1, _, _ := procEnumDisplaySettingsExW.Call(
		uintptr(unsafe.Pointer(name)),
		uintptr(uint32(int32(mode))),
		uintptr(unsafe.Pointer(&dm)),
		0)
	if r1 == 0 {
		return devMode{}, false
	}

	return devMode{
		Width:        dm.PelsWidth,
		Height:       dm.PelsHeight,
		BitsPerPel:   dm.BitsPerPel,
		Frequency:    dm.DisplayFrequency,
		DisplayFlags: dm.DisplayFlags,
		X:            dm.Position.X,
		Y:            dm.Position.Y,
	}, true
}

func (gdiNative) ChangeDisplaySettings(device string, mode devMode, fields, flags uint32) int32 {
	name, err := windows.UTF16PtrFromString(device)
	if err != nil {
		return -1
	}

	var dm devModeW
	dm.Size = uint16(unsafe.Sizeof(dm))
	dm.Fields = fields
	dm.PelsWidth = mode.Width
	dm.PelsHeight = mode.Height
	dm.BitsPerPel = mode.BitsPerPel
	dm.DisplayFrequency = mode.Frequency
	dm.DisplayFlags = mode.DisplayFlags

	r1, _, _ := procChangeDisplaySettingsExW.Call(
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(&dm)),
		0,
		uintptr(flags),
		0)
	return int32(r1)
}
