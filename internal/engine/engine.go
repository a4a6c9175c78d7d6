package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrNoMainDisplay is returned when no primary display could be resolved
var ErrNoMainDisplay = errors.New("no main display")

// EventSource is a started set of input sources
type EventSource interface {
	Start(ctx context.Context) error
	Events() <-chan domain.InputEvent
	Stop() error
}

// Engine owns the display manager for the lifetime of the process.
// It remembers the mode the main display had at startup, forwards input
// events to a handler, and puts the original mode back on exit.
type Engine struct {
	logger   *zap.Logger
	settings domain.Settings
	displays domain.DisplayManager
	inputs   EventSource
	handler  domain.InputHandler

	mu           sync.Mutex
	display      int
	originalMode int
	changed      bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine creates a new engine
func NewEngine(
	logger *zap.Logger,
	settings domain.Settings,
	displays domain.DisplayManager,
	inputs EventSource,
	handler domain.InputHandler,
) *Engine {
	return &Engine{
		logger:       logger,
		settings:     settings,
		displays:     displays,
		inputs:       inputs,
		handler:      handler,
		display:      domain.NoDisplay,
		originalMode: domain.NoMode,
	}
}

// Capture enumerates displays and records the current mode of the main display
func (e *Engine) Capture() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.displays.Initialize() {
		return fmt.Errorf("display discovery failed")
	}

	e.display = e.displays.GetMainDisplay()
	e.originalMode = domain.NoMode
	e.changed = false
	if e.display == domain.NoDisplay {
		e.logger.Warn("No main display, restore on exit will be disabled")
		return nil
	}

	e.originalMode = e.displays.GetCurrentDisplayMode(e.display)
	if mode, ok := e.modeLocked(e.display, e.originalMode); ok {
		e.logger.Info("Captured original display mode",
			zap.Int("display", e.display),
			zap.Stringer("mode", mode))
	} else {
		e.logger.Warn("Could not resolve the current mode, restore on exit will be disabled",
			zap.Int("display", e.display))
	}
	return nil
}

// Start captures the display state and launches input forwarding.
// A failed discovery leaves mode switching disabled; the engine keeps running.
// It returns immediately (non-blocking).
func (e *Engine) Start(ctx context.Context) error {
	e.logger.Info("Engine starting...")

	if err := e.Capture(); err != nil {
		e.logger.Warn("Display mode switching disabled", zap.Error(err))
		e.mu.Lock()
		e.display = domain.NoDisplay
		e.originalMode = domain.NoMode
		e.changed = false
		e.mu.Unlock()
	}

	// the fx start context is short lived
	loopCtx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel

	if err := e.inputs.Start(loopCtx); err != nil {
		e.logger.Warn("Input unavailable, running without remote control", zap.Error(err))
	}

	e.wg.Add(1)
	go e.runLoop(loopCtx)
	return nil
}

func (e *Engine) runLoop(ctx context.Context) {
	defer e.wg.Done()

	events := e.inputs.Events()
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine loop stopped")
			return

		case ev, ok := <-events:
			if !ok {
				e.logger.Info("Input events channel closed")
				return
			}
			e.handler.HandleInput(ctx, ev)
		}
	}
}

// MatchRefreshRate switches the main display to the mode that best fits
// content at fps while keeping the current resolution
func (e *Engine) MatchRefreshRate(fps float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.display == domain.NoDisplay {
		return ErrNoMainDisplay
	}

	current := e.displays.GetCurrentDisplayMode(e.display)
	want, ok := e.modeLocked(e.display, current)
	if !ok {
		return fmt.Errorf("current mode of display %d unknown", e.display)
	}
	want.RefreshRate = fps

	best := e.displays.FindBestMatch(e.display, want)
	if best == domain.NoMode {
		return fmt.Errorf("no mode of display %d fits %.3f fps", e.display, fps)
	}
	if best == current {
		e.logger.Debug("Display already in the best mode", zap.Int("mode", best))
		return nil
	}

	if !e.displays.SetDisplayMode(e.display, best) {
		return fmt.Errorf("failed to switch display %d to mode %d", e.display, best)
	}
	e.changed = true

	mode, _ := e.modeLocked(e.display, best)
	e.logger.Info("Display mode switched",
		zap.Int("display", e.display),
		zap.Float64("fps", fps),
		zap.Stringer("mode", mode))
	return nil
}

// RestoreMode puts the main display back into the captured mode
func (e *Engine) RestoreMode() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.restoreLocked()
}

func (e *Engine) restoreLocked() error {
	if !e.changed {
		return nil
	}
	if e.originalMode == domain.NoMode {
		e.changed = false
		return fmt.Errorf("original mode of display %d unknown", e.display)
	}

	e.logger.Info("Restoring original display mode",
		zap.Int("display", e.display),
		zap.Int("mode", e.originalMode))
	if !e.displays.SetDisplayMode(e.display, e.originalMode) {
		return fmt.Errorf("failed to restore mode %d on display %d", e.originalMode, e.display)
	}
	e.changed = false
	return nil
}

func (e *Engine) modeLocked(display, mode int) (domain.VideoMode, bool) {
	for _, d := range e.displays.Displays() {
		if d.ID != display {
			continue
		}
		if m, ok := d.Mode(mode); ok {
			return *m, true
		}
	}
	return domain.VideoMode{}, false
}

// Stop closes the input sources, restores the original mode when it was
// changed and display.restore_on_exit is set, and releases the backend
func (e *Engine) Stop(ctx context.Context) error {
	e.logger.Info("Engine stopping...")

	var err error
	if e.cancel != nil {
		e.cancel()
	}
	err = multierr.Append(err, e.inputs.Stop())
	e.wg.Wait()

	e.mu.Lock()
	if e.changed && e.settings.Bool("display", "restore_on_exit") {
		err = multierr.Append(err, e.restoreLocked())
	}
	e.mu.Unlock()

	err = multierr.Append(err, e.displays.Close())
	return err
}
