// Package analytics provides the shared types used by the price-series
// analysis packages (spectral decomposition, trend estimation, etc.)
package analytics

import (
	"time"
)

// SamplePoint is a single observation of an asset price at a point in time.
type SamplePoint struct {
	Time  time.Time
	Value float64
}

// Series is an ordered collection of sample points. Callers guarantee
// strictly increasing timestamps with no duplicates; the analysis
// packages only ever read it.
type Series []SamplePoint

// Values extracts just the values from the series.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Len returns the number of sample points.
func (s Series) Len() int {
	return len(s)
}

// Mean calculates the arithmetic mean of all values.
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range s {
		sum += p.Value
	}
	return sum / float64(len(s))
}

// MeanSpacingDays returns the mean difference between consecutive
// timestamps, in days. Returns 1.0 when fewer than two samples exist.
func (s Series) MeanSpacingDays() float64 {
	if len(s) < 2 {
		return 1.0
	}
	total := s[len(s)-1].Time.Sub(s[0].Time)
	return total.Hours() / 24.0 / float64(len(s)-1)
}
