package cec

import (
	"context"

	"github.com/genricoloni/vidmode/internal/cecdev"
	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

// Input exposes a worker as an input source
type Input struct {
	worker *Worker
}

// NewInput creates a CEC input backed by the platform's CEC framework
func NewInput(logger *zap.Logger, settings domain.Settings, power domain.PowerController) *Input {
	return &Input{worker: NewWorker(logger, settings, power, cecdev.Initialise)}
}

func (i *Input) Name() string {
	return SourceName
}

func (i *Input) Init(ctx context.Context) bool {
	return i.worker.Init(ctx)
}

func (i *Input) Events() <-chan domain.InputEvent {
	return i.worker.Events()
}

func (i *Input) Close() error {
	return i.worker.Close()
}
