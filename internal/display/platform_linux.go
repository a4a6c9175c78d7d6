//go:build linux

package display

import (
	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

// NewPlatformBackend returns the RandR backend, or the read-only generic one
// when the X server lacks the RandR extension.
func NewPlatformBackend(logger *zap.Logger) (domain.DisplayManager, error) {
	api, err := newX11RandR()
	if err != nil {
		logger.Warn("RandR unavailable, falling back to read-only display backend", zap.Error(err))
		return newGenericBackend(logger, screenshotBounds{}), nil
	}
	return newRandRBackend(logger, api), nil
}
