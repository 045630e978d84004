package spectral

import (
	"math"
	"testing"
)

func makeComponent(index int, amplitude, periodSamples float64) CycleComponent {
	return CycleComponent{
		Index:         index,
		Frequency:     1 / periodSamples,
		Amplitude:     amplitude,
		PeriodSamples: periodSamples,
	}
}

func TestSelectDominant_CapsAtFour(t *testing.T) {
	components := []CycleComponent{
		makeComponent(1, 9, 64),
		makeComponent(2, 8, 32),
		makeComponent(3, 7, 21),
		makeComponent(4, 6, 16),
		makeComponent(5, 5, 12),
		makeComponent(6, 4, 10),
		makeComponent(7, 3, 9),
	}

	dominant := SelectDominant(components, 1.0)
	if len(dominant) != 4 {
		t.Fatalf("Expected 4 dominant cycles, got %d", len(dominant))
	}

	// Order preserved: amplitude-descending.
	for i := 1; i < len(dominant); i++ {
		if dominant[i].Amplitude > dominant[i-1].Amplitude {
			t.Errorf("Dominant cycles not amplitude-descending at position %d", i)
		}
	}
}

func TestSelectDominant_PeriodDaysScaling(t *testing.T) {
	components := []CycleComponent{makeComponent(4, 2.5, 16)}

	dominant := SelectDominant(components, 7.0) // weekly samples
	if len(dominant) != 1 {
		t.Fatalf("Expected 1 dominant cycle, got %d", len(dominant))
	}
	if dominant[0].PeriodDays != 112 {
		t.Errorf("Expected period 112 days (16 samples * 7 days), got %v", dominant[0].PeriodDays)
	}
}

func TestSelectDominant_FiltersZeroAmplitude(t *testing.T) {
	components := []CycleComponent{
		makeComponent(1, 5, 64),
		makeComponent(2, 0, 32),
		makeComponent(3, 3, 21),
	}

	dominant := SelectDominant(components, 1.0)
	if len(dominant) != 2 {
		t.Fatalf("Expected 2 dominant cycles after filtering, got %d", len(dominant))
	}
	for _, d := range dominant {
		if d.Amplitude <= 0 {
			t.Errorf("Dominant cycle with non-positive amplitude %v survived", d.Amplitude)
		}
	}
}

func TestSelectDominant_FiltersNonFinitePeriod(t *testing.T) {
	infinite := makeComponent(0, 4, math.Inf(1))
	components := []CycleComponent{
		makeComponent(1, 5, 64),
		infinite,
	}

	dominant := SelectDominant(components, 1.0)
	if len(dominant) != 1 {
		t.Fatalf("Expected 1 dominant cycle after filtering, got %d", len(dominant))
	}
	for _, d := range dominant {
		if math.IsInf(d.PeriodDays, 0) || math.IsNaN(d.PeriodDays) || d.PeriodDays <= 0 {
			t.Errorf("Dominant cycle with bad period %v survived", d.PeriodDays)
		}
	}
}

// The candidate pool is the literal top six; candidates filtered out of
// it are not backfilled from rank seven onwards even when valid ones
// exist there.
func TestSelectDominant_NoBackfillBeyondPool(t *testing.T) {
	components := []CycleComponent{
		makeComponent(1, 9, 64),
		makeComponent(2, 8, 0), // amplitude > 0 but zero period is still finite; keep
		makeComponent(3, 7, 21),
		{Index: 4, Amplitude: 0, PeriodSamples: 16}, // filtered: zero amplitude
		{Index: 5, Amplitude: 0, PeriodSamples: 12}, // filtered: zero amplitude
		{Index: 6, Amplitude: 0, PeriodSamples: 10}, // filtered: zero amplitude
		makeComponent(7, 3, 9),                      // valid but beyond the pool
		makeComponent(8, 2, 8),                      // valid but beyond the pool
	}

	dominant := SelectDominant(components, 1.0)
	if len(dominant) != 3 {
		t.Fatalf("Expected 3 dominant cycles (no backfill), got %d", len(dominant))
	}
	for _, d := range dominant {
		if d.Index == 7 || d.Index == 8 {
			t.Errorf("Component beyond the candidate pool surfaced: index %d", d.Index)
		}
	}
}

func TestSelectDominant_EmptyInput(t *testing.T) {
	if dominant := SelectDominant(nil, 1.0); len(dominant) != 0 {
		t.Errorf("Expected empty output for empty input, got %d cycles", len(dominant))
	}
}
