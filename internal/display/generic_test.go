package display

import (
	"image"
	"testing"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

type fakeBounds []image.Rectangle

func (f fakeBounds) NumActiveDisplays() int                  { return len(f) }
func (f fakeBounds) DisplayBounds(index int) image.Rectangle { return f[index] }

func TestGenericBackend(t *testing.T) {
	b := newGenericBackend(zap.NewNop(), fakeBounds{
		image.Rect(1920, 0, 3200, 720),
		image.Rect(0, 0, 1920, 1080),
	})
	if !b.Initialize() {
		t.Fatal("expected Initialize to succeed")
	}

	m, ok := b.VideoMode(1, 0)
	if !ok || m.Width != 1920 || m.Height != 1080 || m.RefreshRate != 60 {
		t.Errorf("unexpected mode %v", m)
	}

	if got := b.GetMainDisplay(); got != 1 {
		t.Errorf("expected the display at the origin to be main, got %d", got)
	}
	if got := b.GetCurrentDisplayMode(0); got != 0 {
		t.Errorf("expected current mode 0, got %d", got)
	}
	if !b.SetDisplayMode(0, 0) {
		t.Error("expected the active mode to be accepted")
	}
	if b.SetDisplayMode(0, 1) {
		t.Error("expected an unknown mode to be rejected")
	}

	tests := []struct {
		x, y     int
		expected int
	}{
		{2000, 100, 0},
		{100, 100, 1},
		{5000, 5000, domain.NoDisplay},
	}
	for _, tt := range tests {
		if got := b.GetDisplayFromPoint(tt.x, tt.y); got != tt.expected {
			t.Errorf("GetDisplayFromPoint(%d, %d): expected %d, got %d", tt.x, tt.y, tt.expected, got)
		}
	}
}

func TestFallbackBackend(t *testing.T) {
	b := NewFallbackBackend(zap.NewNop())
	if b.Initialize() {
		t.Error("expected the fallback backend to find no display")
	}
	if got := b.GetMainDisplay(); got != domain.NoDisplay {
		t.Errorf("expected NoDisplay, got %d", got)
	}
	if b.SetDisplayMode(0, 0) {
		t.Error("expected mode switching to fail")
	}
	if err := b.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
