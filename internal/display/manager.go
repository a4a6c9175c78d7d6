package display

import (
	"sort"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

// Manager holds the platform-neutral part of a display backend: the snapshot
// of displays found by the last discovery pass and the validity checks on it.
// Backends embed it, populate the snapshot and then call Manager.Initialize.
type Manager struct {
	logger   *zap.Logger
	displays map[int]*domain.Display
	hooks    []func()
}

func newManager(logger *zap.Logger) *Manager {
	return &Manager{
		logger:   logger,
		displays: make(map[int]*domain.Display),
	}
}

// Initialize finishes a discovery pass started by a backend.
// It must only be called once the backend has found at least one mode.
func (m *Manager) Initialize() bool {
	if len(m.displays) == 0 {
		m.logger.Warn("Display manager initialized without displays")
		return false
	}

	for _, d := range m.Displays() {
		if len(d.Modes) == 0 {
			m.logger.Warn("Display has no usable video mode",
				zap.Int("display", d.ID),
				zap.String("name", d.Name))
			continue
		}

		m.logger.Info("Display found",
			zap.Int("display", d.ID),
			zap.String("name", d.Name),
			zap.Int("modes", len(d.Modes)))

		for _, id := range d.ModeIDs() {
			m.logger.Debug("Video mode",
				zap.Int("display", d.ID),
				zap.Int("mode", id),
				zap.Stringer("info", d.Modes[id]))
		}
	}

	for _, hook := range m.hooks {
		hook()
	}

	return true
}

// OnInitialized registers a function run after every successful discovery pass
func (m *Manager) OnInitialized(fn func()) {
	m.hooks = append(m.hooks, fn)
}

// IsValidDisplay reports whether the display id belongs to the current snapshot
func (m *Manager) IsValidDisplay(display int) bool {
	_, ok := m.displays[display]
	return ok
}

// IsValidDisplayMode reports whether the display and mode ids belong to the current snapshot
func (m *Manager) IsValidDisplayMode(display, mode int) bool {
	d, ok := m.displays[display]
	if !ok {
		return false
	}
	_, ok = d.Modes[mode]
	return ok
}

// Displays returns the displays of the current snapshot ordered by id
func (m *Manager) Displays() []*domain.Display {
	out := make([]*domain.Display, 0, len(m.displays))
	for _, d := range m.displays {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Display returns the display with the given id
func (m *Manager) Display(display int) (*domain.Display, bool) {
	d, ok := m.displays[display]
	return d, ok
}

// VideoMode returns a copy of one mode of the snapshot
func (m *Manager) VideoMode(display, mode int) (domain.VideoMode, bool) {
	if !m.IsValidDisplayMode(display, mode) {
		return domain.VideoMode{}, false
	}
	return *m.displays[display].Modes[mode], true
}

func (m *Manager) addDisplay(d *domain.Display) {
	m.displays[d.ID] = d
}

// reset drops the whole snapshot. Ids handed out before are invalid afterwards.
func (m *Manager) reset() {
	m.displays = make(map[int]*domain.Display)
}
