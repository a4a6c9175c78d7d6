//go:build !linux && !darwin && !windows && !freebsd && !openbsd && !netbsd

package display

import (
	"errors"
	"runtime"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

// NewPlatformBackend always fails: no display API is supported on this OS
func NewPlatformBackend(logger *zap.Logger) (domain.DisplayManager, error) {
	return nil, errors.New("display mode switching is not supported on " + runtime.GOOS)
}
