package input

import (
	"context"
	"fmt"
	"sync"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Hub fans the events of several input sources into one channel
type Hub struct {
	logger  *zap.Logger
	sources []domain.InputSource
	out     *Emitter
	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup // Tracks forwarding goroutines
}

// NewHub creates a hub over the given sources
func NewHub(logger *zap.Logger, sources ...domain.InputSource) *Hub {
	return &Hub{
		logger:  logger.Named("input"),
		sources: sources,
		out:     NewEmitter(logger.Named("input"), EventBufferSize),
	}
}

// Start initializes every source and begins forwarding their events.
// A source that fails to initialize is logged and left out.
func (h *Hub) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return nil
	}
	h.running = true

	active := 0
	for _, src := range h.sources {
		if !src.Init(ctx) {
			h.logger.Warn("Input source failed to initialize", zap.String("source", src.Name()))
			continue
		}
		h.logger.Info("Input source ready", zap.String("source", src.Name()))
		active++

		h.wg.Add(1)
		go h.forward(ctx, src)
	}

	if active == 0 && len(h.sources) > 0 {
		return fmt.Errorf("no input source could be initialized")
	}
	return nil
}

func (h *Hub) forward(ctx context.Context, src domain.InputSource) {
	defer h.wg.Done()

	events := src.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				h.logger.Debug("Input source closed", zap.String("source", src.Name()))
				return
			}
			h.out.Emit(ev)
		}
	}
}

// Events returns the merged event stream. It is closed by Stop.
func (h *Hub) Events() <-chan domain.InputEvent {
	return h.out.Events()
}

// Stop closes every source and waits for forwarding to end
func (h *Hub) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.running {
		return nil
	}
	h.running = false

	var err error
	for _, src := range h.sources {
		if cerr := src.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("close %s: %w", src.Name(), cerr))
		}
	}

	// sources close their channels, which ends the forwarders
	h.wg.Wait()
	h.out.Close()

	return err
}
