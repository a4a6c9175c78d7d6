package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix     = "VIDMODE_"
	envConfigPath = "VIDMODE_CONFIG"
)

// defaults holds the built-in value of every known option
var defaults = map[string]map[string]any{
	"cec": {
		"usekeyupdown":      false,
		"activatesource":    true,
		"hdmiport":          0,
		"verbose_logging":   false,
		"suspendonstandby":  false,
		"poweroffonstandby": false,
	},
	"display": {
		"restore_on_exit": true,
	},
}

type sections map[string]map[string]any

// AppConfig is a read-only settings store. Values are resolved on every
// lookup: environment first, then the YAML file, then the defaults.
type AppConfig struct {
	logger *zap.Logger
	path   string

	mu      sync.Mutex
	modTime time.Time
	file    sections
}

// NewAppConfig creates a settings store backed by the file named in
// VIDMODE_CONFIG, or by $XDG_CONFIG_HOME/vidmode/config.yaml
func NewAppConfig(logger *zap.Logger) *AppConfig {
	path := os.Getenv(envConfigPath)
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "vidmode", "config.yaml")
		}
	}

	// Expand path if it contains ~ or environment variables
	path = os.ExpandEnv(path)
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	logger.Info("Configuration loaded", zap.String("path", path))

	return newAppConfig(logger, path)
}

func newAppConfig(logger *zap.Logger, path string) *AppConfig {
	return &AppConfig{logger: logger, path: path}
}

// Path returns the settings file location
func (c *AppConfig) Path() string {
	return c.path
}

// Bool returns a boolean option, false when unset or malformed
func (c *AppConfig) Bool(section, key string) bool {
	v, ok := c.lookup(section, key)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case int:
		return t != 0
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			c.logger.Warn("Invalid boolean option",
				zap.String("section", section), zap.String("key", key), zap.String("value", t))
			return false
		}
		return b
	default:
		return false
	}
}

// Int returns an integer option, 0 when unset or malformed
func (c *AppConfig) Int(section, key string) int {
	v, ok := c.lookup(section, key)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case int:
		return t
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			c.logger.Warn("Invalid integer option",
				zap.String("section", section), zap.String("key", key), zap.String("value", t))
			return 0
		}
		return n
	default:
		return 0
	}
}

func (c *AppConfig) lookup(section, key string) (any, bool) {
	if v, ok := os.LookupEnv(envName(section, key)); ok {
		return v, true
	}

	if v, ok := c.fromFile(section, key); ok {
		return v, true
	}

	v, ok := defaults[section][key]
	return v, ok
}

func envName(section, key string) string {
	return envPrefix + strings.ToUpper(section) + "_" + strings.ToUpper(key)
}

func (c *AppConfig) fromFile(section, key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reloadLocked()
	v, ok := c.file[section][key]
	return v, ok
}

// reloadLocked re-reads the file when its modification time changed
func (c *AppConfig) reloadLocked() {
	if c.path == "" {
		return
	}

	info, err := os.Stat(c.path)
	if err != nil {
		if c.file != nil {
			c.logger.Info("Settings file removed", zap.String("path", c.path))
		}
		c.file = nil
		c.modTime = time.Time{}
		return
	}
	if c.file != nil && info.ModTime().Equal(c.modTime) {
		return
	}

	file, err := load(c.path)
	if err != nil {
		c.logger.Warn("Failed to read settings file", zap.String("path", c.path), zap.Error(err))
		c.file = sections{}
		c.modTime = info.ModTime()
		return
	}

	c.logger.Debug("Settings file loaded", zap.String("path", c.path))
	c.file = file
	c.modTime = info.ModTime()
}

func load(path string) (sections, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw sections
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if raw == nil {
		raw = sections{}
	}

	// keys are matched case-insensitively
	out := make(sections, len(raw))
	for section, values := range raw {
		s := make(map[string]any, len(values))
		for k, v := range values {
			s[strings.ToLower(k)] = v
		}
		out[strings.ToLower(section)] = s
	}
	return out, nil
}
