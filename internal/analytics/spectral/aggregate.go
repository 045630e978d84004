package spectral

// WeightedAveragePeriod computes the amplitude-weighted mean of the
// dominant cycles' calendar-day periods.
//
// Returns ok=false when the list is empty or the amplitude sum is
// exactly zero; the division is guarded so a NaN or Inf never leaks
// into results.
func WeightedAveragePeriod(cycles []DominantCycle) (float64, bool) {
	if len(cycles) == 0 {
		return 0, false
	}

	var weighted, total float64
	for _, c := range cycles {
		weighted += c.PeriodDays * c.Amplitude
		total += c.Amplitude
	}

	if total == 0 {
		return 0, false
	}
	return weighted / total, true
}
