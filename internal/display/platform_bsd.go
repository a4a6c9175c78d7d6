//go:build freebsd || openbsd || netbsd

package display

import (
	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

// NewPlatformBackend returns the read-only generic backend
func NewPlatformBackend(logger *zap.Logger) (domain.DisplayManager, error) {
	return newGenericBackend(logger, screenshotBounds{}), nil
}
