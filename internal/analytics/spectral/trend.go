package spectral

import (
	"github.com/cyclesight/cyclesight/internal/analytics"
)

// TrendSlope estimates the linear trend of a price series via ordinary
// least squares, regressing value against elapsed days since the first
// sample. Returns the slope in value units per day.
//
// The function is total: fewer than two samples, or a degenerate time
// axis with zero variance, yields a slope of 0 rather than an error.
func TrendSlope(samples analytics.Series) float64 {
	if len(samples) < 2 {
		return 0
	}

	n := float64(len(samples))
	first := samples[0].Time

	sumX := 0.0
	sumY := 0.0
	sumXY := 0.0
	sumX2 := 0.0

	for _, p := range samples {
		x := p.Time.Sub(first).Hours() / 24.0
		sumX += x
		sumY += p.Value
		sumXY += x * p.Value
		sumX2 += x * x
	}

	// Equivalent to sum((x-x̄)(y-ȳ)) / sum((x-x̄)²)
	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		return 0
	}

	return (n*sumXY - sumX*sumY) / denominator
}
