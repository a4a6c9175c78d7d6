package input

import (
	"context"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

// KeyboardSourceName is the source of events emitted by Keyboard
const KeyboardSourceName = "Keyboard"

// Keyboard turns key presses forwarded by the host window into input events
type Keyboard struct {
	*Emitter
}

var _ domain.InputSource = (*Keyboard)(nil)

// NewKeyboard creates a keyboard input source
func NewKeyboard(logger *zap.Logger) *Keyboard {
	return &Keyboard{Emitter: NewEmitter(logger.Named("keyboard"), EventBufferSize)}
}

func (k *Keyboard) Name() string { return KeyboardSourceName }

// Init always succeeds: there is no device to open
func (k *Keyboard) Init(ctx context.Context) bool { return true }

// KeyPress emits one event for the given key sequence
func (k *Keyboard) KeyPress(keys string, state domain.KeyState) {
	k.Emit(domain.InputEvent{Source: KeyboardSourceName, Key: keys, State: state})
}

func (k *Keyboard) Close() error {
	k.Emitter.Close()
	return nil
}
