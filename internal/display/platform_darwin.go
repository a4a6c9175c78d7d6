//go:build darwin

package display

import (
	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

// NewPlatformBackend returns the Quartz backend
func NewPlatformBackend(logger *zap.Logger) (domain.DisplayManager, error) {
	api, err := newQuartzNative()
	if err != nil {
		return nil, err
	}
	return newQuartzBackend(logger, api), nil
}
