package spectral

import (
	"math"
	"time"

	"github.com/cyclesight/cyclesight/internal/analytics"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// generateDailySeries builds a daily-spaced series from a value function
// of the sample index.
func generateDailySeries(n int, value func(t int) float64) analytics.Series {
	series := make(analytics.Series, n)
	for t := 0; t < n; t++ {
		series[t] = analytics.SamplePoint{
			Time:  testEpoch.AddDate(0, 0, t),
			Value: value(t),
		}
	}
	return series
}

// generateSinusoid builds n daily samples of offset + a*sin(2*pi*t/period).
func generateSinusoid(n int, offset, a, period float64) analytics.Series {
	return generateDailySeries(n, func(t int) float64 {
		return offset + a*math.Sin(2*math.Pi*float64(t)/period)
	})
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
