package domain

import (
	"fmt"
	"math"
	"sort"
)

const (
	// NoDisplay is returned by display queries that cannot resolve a display
	NoDisplay = -1
	// NoMode is returned by mode queries that cannot resolve a video mode
	NoMode = -1
)

// refreshTolerance is the maximum refresh rate difference for two modes to be equal
const refreshTolerance = 1e-9

// VideoMode describes one mode a display can be driven at.
// Ids are ordinals local to a display and only valid for one discovery pass.
type VideoMode struct {
	ID           int
	Width        int
	Height       int
	RefreshRate  float64
	BitsPerPixel int
	Interlaced   bool
}

// Equal reports whether both modes describe the same timing.
// Ids are not compared.
func (m VideoMode) Equal(o VideoMode) bool {
	return m.Width == o.Width &&
		m.Height == o.Height &&
		math.Abs(m.RefreshRate-o.RefreshRate) < refreshTolerance &&
		m.BitsPerPixel == o.BitsPerPixel &&
		m.Interlaced == o.Interlaced
}

// String returns a diagnostic label such as "1920x1080@59.940Hz 32bpp"
func (m VideoMode) String() string {
	scan := ""
	if m.Interlaced {
		scan = "i"
	}
	return fmt.Sprintf("%dx%d%s@%.3fHz %dbpp", m.Width, m.Height, scan, m.RefreshRate, m.BitsPerPixel)
}

// Display is one screen output exposed by the OS.
// It owns its modes exclusively.
type Display struct {
	ID    int
	Name  string
	Modes map[int]*VideoMode
}

// NewDisplay creates an empty display
func NewDisplay(id int, name string) *Display {
	return &Display{
		ID:    id,
		Name:  name,
		Modes: make(map[int]*VideoMode),
	}
}

// ModeIDs returns the ids of all modes in ascending order
func (d *Display) ModeIDs() []int {
	ids := make([]int, 0, len(d.Modes))
	for id := range d.Modes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Mode returns the mode with the given id
func (d *Display) Mode(id int) (*VideoMode, bool) {
	m, ok := d.Modes[id]
	return m, ok
}

// KeyState is the state carried by a normalized input event
type KeyState int

const (
	// KeyPressed is a complete press/release cycle
	KeyPressed KeyState = iota
	// KeyDown indicates the key went down
	KeyDown
	// KeyUp indicates the key was released
	KeyUp
)

func (s KeyState) String() string {
	switch s {
	case KeyPressed:
		return "Pressed"
	case KeyDown:
		return "Down"
	case KeyUp:
		return "Up"
	default:
		return fmt.Sprintf("KeyState(%d)", int(s))
	}
}

// InputEvent is a key event normalized from any physical input
type InputEvent struct {
	// Source is the name of the input that produced the event (e.g. "CEC")
	Source string
	// Key is one of the symbolic key names
	Key string
	// State tells whether the key was pressed, went down or went up
	State KeyState
}
