package input

import (
	"sync"
	"time"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

const (
	// EventBufferSize is the capacity of every event channel
	EventBufferSize = 10

	dropWarningInterval = 5 * time.Second
)

// Emitter delivers events on a buffered channel without ever blocking the
// producer. Events emitted after Close are dropped.
type Emitter struct {
	logger          *zap.Logger
	mu              sync.Mutex
	events          chan domain.InputEvent
	closed          bool
	lastDropWarning time.Time // Rate limiting for "channel full" warnings
}

// NewEmitter creates an emitter with a channel of the given capacity
func NewEmitter(logger *zap.Logger, size int) *Emitter {
	return &Emitter{
		logger: logger,
		events: make(chan domain.InputEvent, size),
	}
}

// Emit queues an event and reports whether it was accepted
func (e *Emitter) Emit(ev domain.InputEvent) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return false
	}

	select {
	case e.events <- ev:
		return true
	default:
		now := time.Now()
		if now.Sub(e.lastDropWarning) >= dropWarningInterval {
			e.logger.Warn("Input channel full, dropping events",
				zap.String("source", ev.Source),
				zap.String("key", ev.Key))
			e.lastDropWarning = now
		}
		return false
	}
}

// Events returns the read side of the channel
func (e *Emitter) Events() <-chan domain.InputEvent {
	return e.events
}

// Close closes the channel. It is safe to call more than once.
func (e *Emitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.closed {
		e.closed = true
		close(e.events)
	}
}
