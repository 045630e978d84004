// Package spectral turns a price series into a cyclical profile: a
// least-squares trend slope, a discrete Fourier decomposition of the
// mean-centered series, a short list of dominant cycles with calendar-
// day periods, an amplitude-weighted average cycle length, and a
// narrative summary.
//
// Every function in the package is pure and total: one call consumes
// one input series, produces one result, touches no shared state, and
// never returns an error. Degenerate inputs resolve to defined
// sentinels (zero slope, empty cycle lists, absent averages) instead
// of failure paths, so independent analyses may run fully in parallel.
package spectral

import (
	"github.com/cyclesight/cyclesight/internal/analytics"
)

// AnalysisResult is the aggregate output of one analysis call. It is
// constructed fresh per call and never mutated afterwards.
type AnalysisResult struct {
	// TrendSlope is the OLS rate of change in value per elapsed day.
	TrendSlope float64
	// DominantCycles holds at most four cycles, amplitude-descending.
	DominantCycles []DominantCycle
	// WeightedAveragePeriodDays is the amplitude-weighted mean period.
	// Nil when DominantCycles is empty or its amplitudes sum to zero.
	WeightedAveragePeriodDays *float64
	// Summary is the rendered narrative.
	Summary string
}

// Analyze runs the full spectral pipeline over a price series.
//
// spacingDays is the mean gap between consecutive samples in days,
// precomputed by the caller (1.0 when fewer than two samples exist).
// assetLabel and rangeLabel are opaque strings used only in the
// narrative. Minimum-length policy is the caller's concern; Analyze
// accepts any series, including an empty one.
func Analyze(samples analytics.Series, spacingDays float64, assetLabel, rangeLabel string) AnalysisResult {
	components := Decompose(samples.Values())
	dominant := SelectDominant(components, spacingDays)

	result := AnalysisResult{
		TrendSlope:     TrendSlope(samples),
		DominantCycles: dominant,
		Summary:        Summarize(assetLabel, dominant, rangeLabel),
	}

	if avg, ok := WeightedAveragePeriod(dominant); ok {
		result.WeightedAveragePeriodDays = &avg
	}

	return result
}
