package spectral

import (
	"math"
)

const (
	// candidatePool is how many of the highest-amplitude components are
	// considered before filtering.
	candidatePool = 6
	// maxDominant caps the dominant-cycle list handed to callers.
	maxDominant = 4
)

// DominantCycle is a harmonic component that survived ranking and
// filtering, with its period converted to calendar days.
type DominantCycle struct {
	CycleComponent
	// PeriodDays is PeriodSamples scaled by the mean sample spacing.
	PeriodDays float64 `json:"period_days"`
}

// SelectDominant reduces the amplitude-sorted component list to at most
// four dominant cycles, converting sample-based periods to calendar
// days using spacingDays (mean days between consecutive samples).
//
// Selection is deliberately two-staged: the top six components by
// amplitude form the candidate pool, then candidates with a non-finite
// period or zero amplitude are dropped, then the survivors are cut to
// four. Candidates beyond rank six are never pulled in to backfill, so
// heavy filtering can surface fewer than four cycles.
func SelectDominant(components []CycleComponent, spacingDays float64) []DominantCycle {
	pool := components
	if len(pool) > candidatePool {
		pool = pool[:candidatePool]
	}

	dominant := make([]DominantCycle, 0, maxDominant)
	for _, c := range pool {
		periodDays := c.PeriodSamples * spacingDays
		if math.IsInf(periodDays, 0) || math.IsNaN(periodDays) {
			continue
		}
		if c.Amplitude <= 0 {
			continue
		}
		dominant = append(dominant, DominantCycle{
			CycleComponent: c,
			PeriodDays:     periodDays,
		})
	}

	if len(dominant) > maxDominant {
		dominant = dominant[:maxDominant]
	}
	return dominant
}
