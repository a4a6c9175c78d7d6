package domain

import "context"

// DisplayManager discovers displays and switches their video modes.
// Implementations are backed by exactly one native OS API selected at build time.
// Calls must be serialized by the owner; Initialize rebuilds the snapshot non-atomically.
//
//go:generate mockgen -destination=mocks/domain_mock.go -package=mocks github.com/genricoloni/vidmode/internal/domain DisplayManager,PowerController,Settings,InputSource
type DisplayManager interface {
	// Initialize discards the previous snapshot and enumerates displays and modes.
	// It returns false when discovery fails or no mode was found.
	Initialize() bool

	// SetDisplayMode switches a display into one of its enumerated modes
	SetDisplayMode(display, mode int) bool

	// GetCurrentDisplayMode returns the id of the active mode, or NoMode
	GetCurrentDisplayMode(display int) int

	// GetMainDisplay returns the id of the primary display, or NoDisplay
	GetMainDisplay() int

	// GetDisplayFromPoint returns the display containing a virtual desktop point, or NoDisplay
	GetDisplayFromPoint(x, y int) int

	// IsValidDisplay reports whether the id is part of the current snapshot
	IsValidDisplay(display int) bool

	// IsValidDisplayMode reports whether both ids are part of the current snapshot
	IsValidDisplayMode(display, mode int) bool

	// Displays returns the current snapshot ordered by id
	Displays() []*Display

	// FindBestMatch returns the mode of a display that best matches the wanted one, or NoMode
	FindBestMatch(display int, want VideoMode) int

	// Close releases every native resource held by the backend
	Close() error
}

// InputSource produces normalized key events
type InputSource interface {
	// Name identifies the source in emitted events
	Name() string

	// Init prepares the underlying device. It blocks until the device is ready.
	Init(ctx context.Context) bool

	// Events returns a read-only channel of normalized events
	Events() <-chan InputEvent

	// Close releases the device. No event is emitted after Close returns.
	Close() error
}

// PowerController exposes the host power actions triggered by remote commands
type PowerController interface {
	CanSuspend() bool
	CanPowerOff() bool
	Suspend() error
	PowerOff() error
}

// Settings is a read-only, string keyed settings store.
// Values are looked up on every call and never cached by callers.
type Settings interface {
	// Bool returns a boolean option, false when unset
	Bool(section, key string) bool

	// Int returns an integer option, 0 when unset
	Int(section, key string) int
}

// InputHandler consumes normalized input events
type InputHandler interface {
	HandleInput(ctx context.Context, ev InputEvent)
}
