package engine

import "math"

func clamp(value, min, max float64) float64 {
	return math.Min(max, math.Max(min, value))
}

func clamp01(value float64) float64 {
	return clamp(value, 0, 1)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the population standard deviation; fewer than two samples yield 0.
func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	avg := mean(values)
	variance := 0.0
	for _, v := range values {
		variance += (v - avg) * (v - avg)
	}
	return math.Sqrt(variance / float64(len(values)))
}

// round4 rounds to four decimals; every exported score is stored this way so
// recomputation is byte-stable under JSON round trips.
func round4(value float64) float64 {
	return math.Round(value*10000) / 10000
}

func roundTo(value float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(value*factor) / factor
}

// slope is the least-squares slope over index-ordered values.
func slope(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	xMean := float64(len(values)-1) / 2
	yMean := mean(values)
	num, den := 0.0, 0.0
	for i, v := range values {
		dx := float64(i) - xMean
		num += dx * (v - yMean)
		den += dx * dx
	}
	if den == 0 {
		den = 1
	}
	return num / den
}
