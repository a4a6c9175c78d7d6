package display

import (
	"math"
	"testing"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

func newTestManager(modes ...domain.VideoMode) *Manager {
	m := newManager(zap.NewNop())
	d := domain.NewDisplay(0, "Test")
	for i := range modes {
		modes[i].ID = i
		d.Modes[i] = &modes[i]
	}
	m.addDisplay(d)
	return m
}

func TestManager_Initialize(t *testing.T) {
	m := newManager(zap.NewNop())
	calls := 0
	m.OnInitialized(func() { calls++ })

	if m.Initialize() {
		t.Error("expected failure on an empty snapshot")
	}
	if calls != 0 {
		t.Errorf("hook must not run on failure, ran %d times", calls)
	}

	m.addDisplay(domain.NewDisplay(0, "Test"))
	if !m.Initialize() {
		t.Fatal("expected success")
	}
	if calls != 1 {
		t.Errorf("expected hook to run once, ran %d times", calls)
	}
}

func TestManager_Validity(t *testing.T) {
	m := newTestManager(
		domain.VideoMode{Width: 1920, Height: 1080, RefreshRate: 60, BitsPerPixel: 32},
		domain.VideoMode{Width: 1280, Height: 720, RefreshRate: 60, BitsPerPixel: 32},
	)

	tests := []struct {
		name         string
		display      int
		mode         int
		validDisplay bool
		valid        bool
	}{
		{name: "Known display and mode", display: 0, mode: 1, validDisplay: true, valid: true},
		{name: "Unknown mode", display: 0, mode: 2, validDisplay: true, valid: false},
		{name: "Negative mode", display: 0, mode: -1, validDisplay: true, valid: false},
		{name: "Unknown display", display: 1, mode: 0, validDisplay: false, valid: false},
		{name: "Negative display", display: -1, mode: 0, validDisplay: false, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsValidDisplay(tt.display); got != tt.validDisplay {
				t.Errorf("IsValidDisplay(%d): expected %v, got %v", tt.display, tt.validDisplay, got)
			}
			if got := m.IsValidDisplayMode(tt.display, tt.mode); got != tt.valid {
				t.Errorf("IsValidDisplayMode(%d, %d): expected %v, got %v", tt.display, tt.mode, tt.valid, got)
			}
		})
	}

	m.reset()
	if m.IsValidDisplay(0) {
		t.Error("expected ids to be invalid after reset")
	}
}

func TestManager_Displays_Ordered(t *testing.T) {
	m := newManager(zap.NewNop())
	for _, id := range []int{2, 0, 1} {
		m.addDisplay(domain.NewDisplay(id, "d"))
	}

	got := m.Displays()
	for i, d := range got {
		if d.ID != i {
			t.Errorf("position %d: expected id %d, got %d", i, i, d.ID)
		}
	}
}

func TestManager_FindBestMatch(t *testing.T) {
	m := newTestManager(
		domain.VideoMode{Width: 1920, Height: 1080, RefreshRate: 60, BitsPerPixel: 32},
		domain.VideoMode{Width: 1920, Height: 1080, RefreshRate: 24000.0 / 1001, BitsPerPixel: 32},
		domain.VideoMode{Width: 1920, Height: 1080, RefreshRate: 50, BitsPerPixel: 32},
		domain.VideoMode{Width: 3840, Height: 2160, RefreshRate: 23.976, BitsPerPixel: 32},
		domain.VideoMode{Width: 1920, Height: 1080, RefreshRate: 60000.0 / 1001, BitsPerPixel: 32},
	)

	tests := []struct {
		name     string
		display  int
		rate     float64
		expected int
	}{
		{name: "Exact 23.976", display: 0, rate: 23.976, expected: 1},
		{name: "Exact 50", display: 0, rate: 50, expected: 2},
		{name: "Multiple of 25", display: 0, rate: 25, expected: 2},
		{name: "Multiple of 29.97", display: 0, rate: 29.97, expected: 4},
		{name: "Multiple of 30", display: 0, rate: 30, expected: 0},
		{name: "No match", display: 0, rate: 71, expected: domain.NoMode},
		{name: "Unknown display", display: 3, rate: 60, expected: domain.NoMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := domain.VideoMode{Width: 1920, Height: 1080, RefreshRate: tt.rate, BitsPerPixel: 32}
			if got := m.FindBestMatch(tt.display, want); got != tt.expected {
				t.Errorf("expected mode %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestIsRateMultipleOf(t *testing.T) {
	tests := []struct {
		refresh  float64
		multiple float64
		exact    bool
		expected bool
	}{
		{25, 50, true, true},
		{24, 48, true, true},
		{29.97, 59.94, true, false},
		{29.97, 59.94, false, true},
		{24, 50, false, false},
		{0, 60, false, false},
		{60, 0, false, false},
	}

	for _, tt := range tests {
		if got := IsRateMultipleOf(tt.refresh, tt.multiple, tt.exact); got != tt.expected {
			t.Errorf("IsRateMultipleOf(%v, %v, %v): expected %v, got %v",
				tt.refresh, tt.multiple, tt.exact, tt.expected, got)
		}
	}
}

func TestNormalizeIntegerRate(t *testing.T) {
	tests := []struct {
		in       int
		expected float64
	}{
		{59, 59.94},
		{29, 29.97},
		{23, 23.976},
		{60, 60},
		{50, 50},
		{24, 24},
	}

	for _, tt := range tests {
		if got := normalizeIntegerRate(tt.in); math.Abs(got-tt.expected) > 1e-3 {
			t.Errorf("normalizeIntegerRate(%d): expected %.3f, got %.6f", tt.in, tt.expected, got)
		}
	}
}

func TestNormalizeContinuousRate(t *testing.T) {
	if got := normalizeContinuousRate(0); got != 60 {
		t.Errorf("expected 0 Hz to become 60, got %v", got)
	}
	if got := normalizeContinuousRate(59.94); got != 59.94 {
		t.Errorf("expected 59.94 to be kept, got %v", got)
	}
}

func TestBitsPerPixelFromDepth(t *testing.T) {
	for depth, expected := range map[int]int{24: 32, 32: 32, 16: 16, 15: 16, 8: 8, 0: 0} {
		if got := bitsPerPixelFromDepth(depth); got != expected {
			t.Errorf("depth %d: expected %d, got %d", depth, expected, got)
		}
	}
}
