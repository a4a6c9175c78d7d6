package main

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

// modeSwitcher is the part of the engine driven from the console
type modeSwitcher interface {
	MatchRefreshRate(fps float64) error
	RestoreMode() error
}

// keyPresser receives key names typed on the console
type keyPresser interface {
	KeyPress(keys string, state domain.KeyState)
}

// console reads one command per line from standard input:
//
//	match <fps>   switch the main display to the best mode for fps
//	restore       go back to the mode captured at startup
//	KEY_UP, up    emit a key press
type console struct {
	logger   *zap.Logger
	switcher modeSwitcher
	keys     keyPresser
}

func newConsole(logger *zap.Logger, switcher modeSwitcher, keys keyPresser) *console {
	return &console{logger: logger.Named("console"), switcher: switcher, keys: keys}
}

func (c *console) run(ctx context.Context, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		c.handle(scanner.Text())
	}
}

func (c *console) handle(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch strings.ToLower(fields[0]) {
	case "match":
		if len(fields) != 2 {
			c.logger.Warn("Usage: match <fps>")
			return
		}
		fps, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || fps <= 0 {
			c.logger.Warn("Invalid frame rate", zap.String("fps", fields[1]))
			return
		}
		if err := c.switcher.MatchRefreshRate(fps); err != nil {
			c.logger.Error("Refresh rate matching failed", zap.Error(err))
		}
	case "restore":
		if err := c.switcher.RestoreMode(); err != nil {
			c.logger.Error("Mode restore failed", zap.Error(err))
		}
	default:
		key := strings.ToUpper(fields[0])
		if !strings.HasPrefix(key, "KEY_") {
			key = "KEY_" + key
		}
		c.keys.KeyPress(key, domain.KeyPressed)
	}
}
