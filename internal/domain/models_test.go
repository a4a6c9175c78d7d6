package domain

import "testing"

func TestVideoMode_Equal(t *testing.T) {
	base := VideoMode{ID: 1, Width: 1920, Height: 1080, RefreshRate: 59.94, BitsPerPixel: 32}

	tests := []struct {
		name     string
		other    VideoMode
		expected bool
	}{
		{"Same timing, other id", VideoMode{ID: 7, Width: 1920, Height: 1080, RefreshRate: 59.94, BitsPerPixel: 32}, true},
		{"Rate within tolerance", VideoMode{Width: 1920, Height: 1080, RefreshRate: 59.94 + 1e-10, BitsPerPixel: 32}, true},
		{"Rate outside tolerance", VideoMode{Width: 1920, Height: 1080, RefreshRate: 59.95, BitsPerPixel: 32}, false},
		{"Width differs", VideoMode{Width: 1280, Height: 1080, RefreshRate: 59.94, BitsPerPixel: 32}, false},
		{"Depth differs", VideoMode{Width: 1920, Height: 1080, RefreshRate: 59.94, BitsPerPixel: 16}, false},
		{"Interlace differs", VideoMode{Width: 1920, Height: 1080, RefreshRate: 59.94, BitsPerPixel: 32, Interlaced: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			if got := tt.other.Equal(base); got != tt.expected {
				t.Errorf("expected symmetric result %v, got %v", tt.expected, got)
			}
		})
	}

	if !base.Equal(base) {
		t.Error("expected a mode to equal itself")
	}
}

func TestVideoMode_String(t *testing.T) {
	m := VideoMode{Width: 1920, Height: 1080, RefreshRate: 60000.0 / 1001, BitsPerPixel: 32, Interlaced: true}
	if got, want := m.String(), "1920x1080i@59.940Hz 32bpp"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDisplay_ModeIDs(t *testing.T) {
	d := NewDisplay(0, "Test")
	for _, id := range []int{3, 0, 2} {
		d.Modes[id] = &VideoMode{ID: id}
	}

	ids := d.ModeIDs()
	if len(ids) != 3 || ids[0] != 0 || ids[1] != 2 || ids[2] != 3 {
		t.Errorf("expected sorted ids, got %v", ids)
	}
	if _, ok := d.Mode(1); ok {
		t.Error("expected mode 1 to be missing")
	}
}

func TestKeyState_String(t *testing.T) {
	for state, want := range map[KeyState]string{KeyPressed: "Pressed", KeyDown: "Down", KeyUp: "Up", KeyState(9): "KeyState(9)"} {
		if got := state.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
