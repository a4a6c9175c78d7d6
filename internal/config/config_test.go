package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

var _ domain.Settings = (*AppConfig)(nil)

func writeFile(t *testing.T, path, content string, mod time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
}

func TestAppConfig_Defaults(t *testing.T) {
	c := newAppConfig(zap.NewNop(), filepath.Join(t.TempDir(), "missing.yaml"))

	if !c.Bool("display", "restore_on_exit") {
		t.Error("expected restore_on_exit to default to true")
	}
	if !c.Bool("cec", "activatesource") {
		t.Error("expected activatesource to default to true")
	}
	if c.Bool("cec", "usekeyupdown") {
		t.Error("expected usekeyupdown to default to false")
	}
	if c.Int("cec", "hdmiport") != 0 {
		t.Error("expected hdmiport to default to 0")
	}
	if c.Bool("nope", "nothing") || c.Int("nope", "nothing") != 0 {
		t.Error("expected unknown options to be zero")
	}
}

func TestAppConfig_Priority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "cec:\n  hdmiport: 2\n  UseKeyUpDown: true\n", time.Now())

	c := newAppConfig(zap.NewNop(), path)

	if got := c.Int("cec", "hdmiport"); got != 2 {
		t.Errorf("expected file value 2, got %d", got)
	}
	if !c.Bool("cec", "usekeyupdown") {
		t.Error("expected keys to match case-insensitively")
	}

	t.Setenv("VIDMODE_CEC_HDMIPORT", "3")
	if got := c.Int("cec", "hdmiport"); got != 3 {
		t.Errorf("expected environment value 3, got %d", got)
	}

	t.Setenv("VIDMODE_CEC_HDMIPORT", "three")
	if got := c.Int("cec", "hdmiport"); got != 0 {
		t.Errorf("expected malformed value to read as 0, got %d", got)
	}
}

func TestAppConfig_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	start := time.Now().Add(-time.Hour)
	writeFile(t, path, "cec:\n  suspendonstandby: false\n", start)

	c := newAppConfig(zap.NewNop(), path)
	if c.Bool("cec", "suspendonstandby") {
		t.Fatal("expected suspendonstandby to be false")
	}

	writeFile(t, path, "cec:\n  suspendonstandby: true\n", start.Add(time.Minute))
	if !c.Bool("cec", "suspendonstandby") {
		t.Error("expected the file to be re-read after it changed")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if c.Bool("cec", "suspendonstandby") {
		t.Error("expected defaults once the file is gone")
	}
}

func TestAppConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "cec: [unterminated", time.Now())

	c := newAppConfig(zap.NewNop(), path)
	if !c.Bool("display", "restore_on_exit") {
		t.Error("expected defaults when the file cannot be parsed")
	}
}

func TestNewAppConfig_Path(t *testing.T) {
	t.Setenv("VIDMODE_CONFIG", "/etc/vidmode.yaml")
	if got := NewAppConfig(zap.NewNop()).Path(); got != "/etc/vidmode.yaml" {
		t.Errorf("expected VIDMODE_CONFIG to win, got %q", got)
	}

	t.Setenv("VIDMODE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := os.UserConfigDir()
	if err != nil {
		t.Skip("no user config directory")
	}
	if got, want := NewAppConfig(zap.NewNop()).Path(), filepath.Join(dir, "vidmode", "config.yaml"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
