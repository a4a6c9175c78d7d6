package display

import (
	"math"

	"github.com/genricoloni/vidmode/internal/domain"
	"go.uber.org/zap"
)

// Weights used to rank candidate modes. A higher criterion always wins over
// any combination of lower ones.
const (
	weightInterlace = 1 << iota
	weightRateMultipleClose
	weightRateClose
	weightRateMultiple
	weightRateExact
	weightResolution
)

const (
	exactRateTolerance = 0.01
	closeRateTolerance = 1.0

	rateWeights = weightRateExact | weightRateMultiple | weightRateClose | weightRateMultipleClose
)

// FindBestMatch ranks the modes of a display against the wanted one and returns
// the best candidate. The wanted resolution and depth must be matched, and the
// refresh rate must be exact, a multiple or close to the wanted rate.
// Ties go to the rate closest to a whole multiple of the wanted one, then to
// the lowest mode id.
func (m *Manager) FindBestMatch(display int, want domain.VideoMode) int {
	d, ok := m.displays[display]
	if !ok {
		return domain.NoMode
	}

	best, bestWeight, bestError := domain.NoMode, 0, math.Inf(1)
	for _, id := range d.ModeIDs() {
		candidate := *d.Modes[id]
		w := modeWeight(candidate, want)
		if w&weightResolution == 0 || w&rateWeights == 0 {
			continue
		}
		e := multipleError(candidate.RefreshRate, want.RefreshRate)
		if w > bestWeight || (w == bestWeight && e < bestError) {
			best, bestWeight, bestError = id, w, e
		}
	}

	if best != domain.NoMode {
		m.logger.Debug("Best matching mode",
			zap.Int("display", display),
			zap.Stringer("want", want),
			zap.Stringer("mode", d.Modes[best]),
			zap.Int("weight", bestWeight))
	}

	return best
}

func modeWeight(candidate, want domain.VideoMode) int {
	weight := 0

	if candidate.Width == want.Width &&
		candidate.Height == want.Height &&
		candidate.BitsPerPixel == want.BitsPerPixel {
		weight |= weightResolution
	}

	diff := math.Abs(candidate.RefreshRate - want.RefreshRate)
	switch {
	case diff <= exactRateTolerance:
		weight |= weightRateExact
	case IsRateMultipleOf(want.RefreshRate, candidate.RefreshRate, true):
		weight |= weightRateMultiple
	case diff < closeRateTolerance:
		weight |= weightRateClose
	case IsRateMultipleOf(want.RefreshRate, candidate.RefreshRate, false):
		weight |= weightRateMultipleClose
	}

	if candidate.Interlaced == want.Interlaced {
		weight |= weightInterlace
	}

	return weight
}

// multipleError is the distance of the rate ratio to the nearest whole number
func multipleError(rate, want float64) float64 {
	if want == 0 {
		return math.Inf(1)
	}
	ratio := rate / want
	return math.Abs(ratio - math.Round(ratio))
}

// IsRateMultipleOf reports whether multiple is a whole multiple of refresh.
// The exact form compares truncated rates, the loose one also accepts rounded rates
// so that 59.94 counts as a multiple of 29.97.
func IsRateMultipleOf(refresh, multiple float64, exact bool) bool {
	r, mul := int(refresh), int(multiple)
	if r == 0 || mul == 0 {
		return false
	}
	if mul%r == 0 {
		return true
	}
	if exact {
		return false
	}

	rr, rm := int(math.Round(refresh)), int(math.Round(multiple))
	return rr != 0 && rm%rr == 0
}
