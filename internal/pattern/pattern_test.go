package pattern

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name          string
		mode          domain.VideoMode
		expectedError string
	}{
		{name: "Success - 1920x1080", mode: domain.VideoMode{Width: 1920, Height: 1080, RefreshRate: 60, BitsPerPixel: 32}},
		{name: "Success - 720x576 interlaced", mode: domain.VideoMode{Width: 720, Height: 576, RefreshRate: 50, Interlaced: true}},
		{name: "Success - Tiny", mode: domain.VideoMode{Width: 64, Height: 32, RefreshRate: 60}},
		{name: "Error - Zero size", mode: domain.VideoMode{}, expectedError: "invalid mode dimensions"},
		{name: "Error - Too large", mode: domain.VideoMode{Width: 100000, Height: 10}, expectedError: "invalid mode dimensions"},
	}

	r := NewRenderer(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := r.Render(tt.mode)
			if tt.expectedError != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectedError) {
					t.Fatalf("expected error containing %q, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			b := img.Bounds()
			if b.Dx() != tt.mode.Width || b.Dy() != tt.mode.Height {
				t.Errorf("expected %dx%d, got %dx%d", tt.mode.Width, tt.mode.Height, b.Dx(), b.Dy())
			}
			// the top-left corner is part of the white border
			if c := img.NRGBAAt(0, 0); c != white {
				t.Errorf("expected white border, got %v", c)
			}
		})
	}
}

func TestRenderer_Bars(t *testing.T) {
	r := NewRenderer(zap.NewNop())
	img, err := r.Render(domain.VideoMode{Width: 800, Height: 600, RefreshRate: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// sample inside each bar, away from the border and the cross
	for i, want := range bars {
		x := i*800/len(bars) + 800/len(bars)/2
		if got := img.NRGBAAt(x, 40); got != want {
			t.Errorf("bar %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestRenderer_Save(t *testing.T) {
	r := NewRenderer(zap.NewNop())
	img, err := r.Render(domain.VideoMode{Width: 320, Height: 240, RefreshRate: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "cards", "card.png")
	saved, err := r.Save(img, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(saved) {
		t.Errorf("expected an absolute path, got %q", saved)
	}
	if _, err := os.Stat(saved); err != nil {
		t.Fatalf("file not written: %v", err)
	}

	back, err := imaging.Open(saved)
	if err != nil {
		t.Fatalf("saved file is not an image: %v", err)
	}
	if back.Bounds() != image.Rect(0, 0, 320, 240) {
		t.Errorf("unexpected bounds %v", back.Bounds())
	}

	if _, err := r.Save(img, filepath.Join(t.TempDir(), "card.unknown")); err == nil {
		t.Error("expected an error for an unknown extension")
	}
}
