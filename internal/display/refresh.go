package display

// defaultRefreshRate replaces the 0 Hz reported by some virtual or headless outputs
const defaultRefreshRate = 60.0

// normalizeContinuousRate fixes rates reported as floating point values
func normalizeContinuousRate(hz float64) float64 {
	if hz == 0 {
		return defaultRefreshRate
	}
	return hz
}

// normalizeIntegerRate restores the NTSC family rates from their truncated value.
// 59, 29 and 23 stand for 59.94, 29.97 and 23.976 Hz.
func normalizeIntegerRate(hz int) float64 {
	switch hz {
	case 59, 29, 23:
		return float64(hz+1) / 1.001
	default:
		return float64(hz)
	}
}

// bitsPerPixelFromDepth maps a colour depth onto 32, 16 or 8 bits per pixel, 0 if unknown
func bitsPerPixelFromDepth(depth int) int {
	switch {
	case depth > 16:
		return 32
	case depth > 8:
		return 16
	case depth > 0:
		return 8
	default:
		return 0
	}
}
