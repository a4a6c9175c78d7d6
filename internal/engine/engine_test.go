package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/genricoloni/vidmode/internal/domain"
	"github.com/genricoloni/vidmode/internal/domain/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// fakeInputs is an EventSource fed by the test
type fakeInputs struct {
	events   chan domain.InputEvent
	startErr error
	once     sync.Once
}

func newFakeInputs() *fakeInputs {
	return &fakeInputs{events: make(chan domain.InputEvent, 4)}
}

func (f *fakeInputs) Start(ctx context.Context) error  { return f.startErr }
func (f *fakeInputs) Events() <-chan domain.InputEvent { return f.events }
func (f *fakeInputs) Stop() error {
	f.once.Do(func() { close(f.events) })
	return nil
}

// recorder is an InputHandler that hands events to the test
type recorder chan domain.InputEvent

func (r recorder) HandleInput(ctx context.Context, ev domain.InputEvent) { r <- ev }

func tvDisplay() *domain.Display {
	d := domain.NewDisplay(0, "HDMI-1")
	d.Modes[0] = &domain.VideoMode{ID: 0, Width: 1920, Height: 1080, RefreshRate: 60, BitsPerPixel: 32}
	d.Modes[1] = &domain.VideoMode{ID: 1, Width: 1920, Height: 1080, RefreshRate: 24000.0 / 1001, BitsPerPixel: 32}
	d.Modes[2] = &domain.VideoMode{ID: 2, Width: 1920, Height: 1080, RefreshRate: 50, BitsPerPixel: 32}
	return d
}

func newDisplays(ctrl *gomock.Controller) *mocks.MockDisplayManager {
	dm := mocks.NewMockDisplayManager(ctrl)
	dm.EXPECT().Initialize().Return(true)
	dm.EXPECT().GetMainDisplay().Return(0)
	dm.EXPECT().Displays().Return([]*domain.Display{tvDisplay()}).AnyTimes()
	return dm
}

func newSettings(ctrl *gomock.Controller, restore bool) *mocks.MockSettings {
	s := mocks.NewMockSettings(ctrl)
	s.EXPECT().Bool("display", "restore_on_exit").Return(restore).AnyTimes()
	return s
}

func TestEngine_ForwardsInput(t *testing.T) {
	ctrl := gomock.NewController(t)

	dm := newDisplays(ctrl)
	dm.EXPECT().GetCurrentDisplayMode(0).Return(0)
	dm.EXPECT().Close().Return(nil)

	inputs := newFakeInputs()
	handler := make(recorder, 1)
	e := NewEngine(zap.NewNop(), newSettings(ctrl, true), dm, inputs, handler)

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.InputEvent{Source: "CEC", Key: "KEY_PLAY", State: domain.KeyPressed}
	inputs.events <- want

	select {
	case got := <-handler:
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	case <-time.After(time.Second):
		t.Fatal("Timeout: event was not handled")
	}

	if err := e.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEngine_StartWithoutInput(t *testing.T) {
	ctrl := gomock.NewController(t)

	dm := newDisplays(ctrl)
	dm.EXPECT().GetCurrentDisplayMode(0).Return(0)
	dm.EXPECT().Close().Return(nil)

	inputs := newFakeInputs()
	inputs.startErr = errors.New("no input source could be initialized")
	e := NewEngine(zap.NewNop(), newSettings(ctrl, true), dm, inputs, make(recorder))

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("expected missing input to be tolerated, got %v", err)
	}
	if err := e.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEngine_DiscoveryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	dm := mocks.NewMockDisplayManager(ctrl)
	dm.EXPECT().Initialize().Return(false).Times(2)
	dm.EXPECT().Close().Return(nil)

	inputs := newFakeInputs()
	handler := make(recorder, 1)
	e := NewEngine(zap.NewNop(), newSettings(ctrl, true), dm, inputs, handler)

	// Capture still reports the failure to direct callers
	if err := e.Capture(); err == nil {
		t.Error("expected Capture to fail when discovery fails")
	}

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("expected Start to keep running without displays, got %v", err)
	}
	if err := e.MatchRefreshRate(23.976); !errors.Is(err, ErrNoMainDisplay) {
		t.Errorf("expected ErrNoMainDisplay, got %v", err)
	}

	inputs.events <- domain.InputEvent{Source: "Keyboard", Key: "KEY_UP", State: domain.KeyPressed}
	select {
	case <-handler:
	case <-time.After(time.Second):
		t.Fatal("Timeout: input was not forwarded without displays")
	}

	if err := e.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEngine_MatchRefreshRate(t *testing.T) {
	tests := []struct {
		name          string
		fps           float64
		best          int
		setOK         bool
		expectSet     bool
		expectError   bool
		expectChanged bool
	}{
		{name: "Film", fps: 23.976, best: 1, setOK: true, expectSet: true, expectChanged: true},
		{name: "Already matching", fps: 60, best: 0},
		{name: "No match", fps: 71, best: domain.NoMode, expectError: true},
		{name: "Switch rejected", fps: 50, best: 2, setOK: false, expectSet: true, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			dm := newDisplays(ctrl)
			dm.EXPECT().GetCurrentDisplayMode(0).Return(0).Times(2)
			dm.EXPECT().FindBestMatch(0, gomock.Any()).DoAndReturn(func(display int, want domain.VideoMode) int {
				if want.Width != 1920 || want.Height != 1080 || want.RefreshRate != tt.fps {
					t.Errorf("unexpected wanted mode %v", want)
				}
				return tt.best
			})
			if tt.expectSet {
				dm.EXPECT().SetDisplayMode(0, tt.best).Return(tt.setOK)
			}

			e := NewEngine(zap.NewNop(), newSettings(ctrl, true), dm, newFakeInputs(), make(recorder))
			if err := e.Capture(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			err := e.MatchRefreshRate(tt.fps)
			if (err != nil) != tt.expectError {
				t.Fatalf("expected error=%v, got %v", tt.expectError, err)
			}
			if e.changed != tt.expectChanged {
				t.Errorf("expected changed=%v, got %v", tt.expectChanged, e.changed)
			}
		})
	}
}

func TestEngine_RestoreOnStop(t *testing.T) {
	tests := []struct {
		name          string
		restoreOnExit bool
	}{
		{name: "Restore enabled", restoreOnExit: true},
		{name: "Restore disabled", restoreOnExit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			dm := newDisplays(ctrl)
			dm.EXPECT().GetCurrentDisplayMode(0).Return(0).Times(2)
			dm.EXPECT().FindBestMatch(0, gomock.Any()).Return(2)
			dm.EXPECT().SetDisplayMode(0, 2).Return(true)
			if tt.restoreOnExit {
				dm.EXPECT().SetDisplayMode(0, 0).Return(true)
			}
			dm.EXPECT().Close().Return(nil)

			e := NewEngine(zap.NewNop(), newSettings(ctrl, tt.restoreOnExit), dm, newFakeInputs(), make(recorder))
			if err := e.Start(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := e.MatchRefreshRate(50); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := e.Stop(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestEngine_StopAggregatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)

	dm := newDisplays(ctrl)
	dm.EXPECT().GetCurrentDisplayMode(0).Return(0).Times(2)
	dm.EXPECT().FindBestMatch(0, gomock.Any()).Return(1)
	dm.EXPECT().SetDisplayMode(0, 1).Return(true)
	dm.EXPECT().SetDisplayMode(0, 0).Return(false)
	dm.EXPECT().Close().Return(errors.New("release failed"))

	e := NewEngine(zap.NewNop(), newSettings(ctrl, true), dm, newFakeInputs(), make(recorder))
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.MatchRefreshRate(23.976); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := e.Stop(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("expected 2 aggregated errors, got %d: %v", got, err)
	}
}

func TestEngine_NoMainDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)

	dm := mocks.NewMockDisplayManager(ctrl)
	dm.EXPECT().Initialize().Return(true)
	dm.EXPECT().GetMainDisplay().Return(domain.NoDisplay)

	e := NewEngine(zap.NewNop(), newSettings(ctrl, true), dm, newFakeInputs(), make(recorder))
	if err := e.Capture(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.MatchRefreshRate(24); !errors.Is(err, ErrNoMainDisplay) {
		t.Errorf("expected ErrNoMainDisplay, got %v", err)
	}
	if err := e.RestoreMode(); err != nil {
		t.Errorf("expected RestoreMode to be a no-op, got %v", err)
	}
}
