// Package power suspends or powers off the host on behalf of input commands
package power

import (
	"errors"
	"fmt"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

const (
	logindDest    = "org.freedesktop.login1"
	logindPath    = "/org/freedesktop/login1"
	logindManager = "org.freedesktop.login1.Manager"
)

// ErrUnsupported is returned by the Nop controller
var ErrUnsupported = errors.New("power: not supported on this system")

// Logind drives power actions through systemd-logind
type Logind struct {
	logger *zap.Logger
	conn   DBusClient
}

// NewLogind connects to logind on the system bus
func NewLogind(logger *zap.Logger) (*Logind, error) {
	conn, err := NewStdDBusClient()
	if err != nil {
		return nil, fmt.Errorf("system bus connection failed: %w", err)
	}
	return newLogind(logger, conn), nil
}

func newLogind(logger *zap.Logger, conn DBusClient) *Logind {
	return &Logind{logger: logger.Named("power"), conn: conn}
}

// can asks logind whether an action is permitted. Only "yes" counts:
// "challenge" would need an interactive authentication we cannot provide.
func (l *Logind) can(action string) bool {
	var answer string
	if err := l.conn.Call(logindDest, logindPath, logindManager+".Can"+action).Store(&answer); err != nil {
		l.logger.Warn("Failed to query logind", zap.String("action", action), zap.Error(err))
		return false
	}
	l.logger.Debug("logind capability", zap.String("action", action), zap.String("answer", answer))
	return answer == "yes"
}

func (l *Logind) do(action string) error {
	l.logger.Info("Requesting power action", zap.String("action", action))
	if err := l.conn.Call(logindDest, logindPath, logindManager+"."+action, false).Err; err != nil {
		return fmt.Errorf("logind %s: %w", action, err)
	}
	return nil
}

func (l *Logind) CanSuspend() bool  { return l.can("Suspend") }
func (l *Logind) CanPowerOff() bool { return l.can("PowerOff") }
func (l *Logind) Suspend() error    { return l.do("Suspend") }
func (l *Logind) PowerOff() error   { return l.do("PowerOff") }

// Close closes the bus connection
func (l *Logind) Close() error {
	return l.conn.Close()
}

// Nop reports every action as unavailable
type Nop struct{}

func (Nop) CanSuspend() bool  { return false }
func (Nop) CanPowerOff() bool { return false }
func (Nop) Suspend() error    { return ErrUnsupported }
func (Nop) PowerOff() error   { return ErrUnsupported }
func (Nop) Close() error      { return nil }

// Controller is a power controller that owns a connection
type Controller interface {
	domain.PowerController
	Close() error
}

// NewController returns a logind controller, or Nop when the system bus is unreachable
func NewController(logger *zap.Logger) Controller {
	l, err := NewLogind(logger)
	if err != nil {
		logger.Warn("Power control unavailable", zap.Error(err))
		return Nop{}
	}
	return l
}
