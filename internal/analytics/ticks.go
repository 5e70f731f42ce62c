package analytics

import "math"

const (
	minTickCount = 2
	maxTickCount = 8
)

// NiceTicks produces human-friendly Y-axis tick values for a data maximum:
// the first tick is exactly 0, the last is max rounded up to a "nice" step
// multiple, and the ticks in between are evenly spaced and rounded.
// Consecutive duplicates (possible when the ceiling is small) are dropped,
// so the result is strictly increasing.
func NiceTicks(max float64, count int) []float64 {
	if count < minTickCount {
		count = minTickCount
	}
	if count > maxTickCount {
		count = maxTickCount
	}
	if max <= 0 {
		max = 1
	}

	pow := math.Pow(10, math.Floor(math.Log10(max)))
	norm := max / pow

	var mult float64
	switch {
	case norm <= 1.2:
		mult = 0.2
	case norm <= 2.5:
		mult = 0.5
	case norm <= 6:
		mult = 1
	default:
		mult = 2
	}
	step := mult * pow
	top := math.Ceil(max/step-1e-9) * step

	// Rounding intermediate ticks to whole numbers only makes sense when the
	// spacing is at least one unit; fractional axes keep exact values.
	roundWhole := top/float64(count-1) >= 1

	ticks := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		v := top * float64(i) / float64(count-1)
		switch i {
		case 0:
			v = 0
		case count - 1:
			v = top
		default:
			if roundWhole {
				v = math.Round(v)
			}
		}
		if len(ticks) > 0 && v == ticks[len(ticks)-1] {
			continue
		}
		ticks = append(ticks, v)
	}
	return ticks
}
