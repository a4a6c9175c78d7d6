package engine

import (
	"context"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

// LogHandler logs every input event. It stands in for the player UI.
type LogHandler struct {
	logger *zap.Logger
}

// NewLogHandler creates a new logging input handler
func NewLogHandler(logger *zap.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

func (h *LogHandler) HandleInput(ctx context.Context, ev domain.InputEvent) {
	h.logger.Info("Input event",
		zap.String("source", ev.Source),
		zap.String("key", ev.Key),
		zap.Stringer("state", ev.State))
}
