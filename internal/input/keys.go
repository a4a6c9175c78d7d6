package input

// Symbolic key names carried by domain.InputEvent
const (
	KeySelect    = "KEY_SELECT"
	KeyUp        = "KEY_UP"
	KeyDown      = "KEY_DOWN"
	KeyLeft      = "KEY_LEFT"
	KeyRight     = "KEY_RIGHT"
	KeyMenu      = "KEY_MENU"
	KeyHome      = "KEY_HOME"
	KeyBack      = "KEY_BACK"
	KeyInfo      = "KEY_INFO"
	KeyGuide     = "KEY_GUIDE"
	KeySubtitles = "KEY_SUBTITLES"

	KeyPlay    = "KEY_PLAY"
	KeyPause   = "KEY_PAUSE"
	KeyStop    = "KEY_STOP"
	KeySeekFwd = "KEY_SEEKFWD"
	KeySeekBck = "KEY_SEEKBCK"
	KeyNext    = "KEY_NEXT"
	KeyPrev    = "KEY_PREV"

	KeyRed    = "KEY_RED"
	KeyGreen  = "KEY_GREEN"
	KeyBlue   = "KEY_BLUE"
	KeyYellow = "KEY_YELLOW"

	Key0 = "KEY_0"
	Key1 = "KEY_1"
	Key2 = "KEY_2"
	Key3 = "KEY_3"
	Key4 = "KEY_4"
	Key5 = "KEY_5"
	Key6 = "KEY_6"
	Key7 = "KEY_7"
	Key8 = "KEY_8"
	Key9 = "KEY_9"
)
