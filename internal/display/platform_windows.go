//go:build windows

package display

import (
	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

// NewPlatformBackend returns the GDI backend
func NewPlatformBackend(logger *zap.Logger) (domain.DisplayManager, error) {
	api, err := newGDINative()
	if err != nil {
		return nil, err
	}
	return newGDIBackend(logger, api), nil
}
