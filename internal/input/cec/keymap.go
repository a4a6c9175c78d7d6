package cec

import (
	"github.com/genricoloni/vidmode/internal/cecdev"
	"github.com/genricoloni/vidmode/internal/input"
)

var keyMap = map[cecdev.UserControlCode]string{
	cecdev.UserControlSelect:             input.KeySelect,
	cecdev.UserControlUp:                 input.KeyUp,
	cecdev.UserControlDown:               input.KeyDown,
	cecdev.UserControlLeft:               input.KeyLeft,
	cecdev.UserControlRight:              input.KeyRight,
	cecdev.UserControlSetupMenu:          input.KeyMenu,
	cecdev.UserControlPlay:               input.KeyPlay,
	cecdev.UserControlPause:              input.KeyPause,
	cecdev.UserControlStop:               input.KeyStop,
	cecdev.UserControlExit:               input.KeyBack,
	cecdev.UserControlFastForward:        input.KeySeekFwd,
	cecdev.UserControlRewind:             input.KeySeekBck,
	cecdev.UserControlDisplayInformation: input.KeyInfo,
	cecdev.UserControlForward:            input.KeyNext,
	cecdev.UserControlBackward:           input.KeyPrev,
	cecdev.UserControlF1Blue:             input.KeyBlue,
	cecdev.UserControlF2Red:              input.KeyRed,
	cecdev.UserControlF3Green:            input.KeyGreen,
	cecdev.UserControlF4Yellow:           input.KeyYellow,
	cecdev.UserControlSubPicture:         input.KeySubtitles,
	cecdev.UserControlRootMenu:           input.KeyHome,
	cecdev.UserControlNumber0:            input.Key0,
	cecdev.UserControlNumber1:            input.Key1,
	cecdev.UserControlNumber2:            input.Key2,
	cecdev.UserControlNumber3:            input.Key3,
	cecdev.UserControlNumber4:            input.Key4,
	cecdev.UserControlNumber5:            input.Key5,
	cecdev.UserControlNumber6:            input.Key6,
	cecdev.UserControlNumber7:            input.Key7,
	cecdev.UserControlNumber8:            input.Key8,
	cecdev.UserControlNumber9:            input.Key9,
	cecdev.UserControlProgramGuide:       input.KeyGuide,
}

// KeyForCode returns the key name of a user control code, or "" when unmapped
func KeyForCode(code cecdev.UserControlCode) string {
	return keyMap[code]
}
