//go:build linux || freebsd || openbsd || netbsd

package display

import (
	"image"

	"github.com/kbinani/screenshot"
)

// screenshotBounds reads display geometry through Xinerama
type screenshotBounds struct{}

func (screenshotBounds) NumActiveDisplays() int {
	return screenshot.NumActiveDisplays()
}

func (screenshotBounds) DisplayBounds(index int) image.Rectangle {
	return screenshot.GetDisplayBounds(index)
}
