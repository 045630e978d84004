package spectral

import (
	"math"
	"testing"
)

func TestDecompose_ComponentCount(t *testing.T) {
	for _, n := range []int{1, 2, 3, 16, 17, 64, 100} {
		values := make([]float64, n)
		for i := range values {
			values[i] = float64(i % 7)
		}

		components := Decompose(values)
		if len(components) != n/2 {
			t.Errorf("n=%d: expected %d components, got %d", n, n/2, len(components))
		}
	}
}

func TestDecompose_EmptyInput(t *testing.T) {
	if components := Decompose(nil); components != nil {
		t.Errorf("Expected nil for empty input, got %d components", len(components))
	}
}

func TestDecompose_ConstantSeries(t *testing.T) {
	values := make([]float64, 48)
	for i := range values {
		values[i] = 250.0
	}

	for _, c := range Decompose(values) {
		if !almostEqual(c.Amplitude, 0, 1e-9) {
			t.Errorf("Harmonic %d: expected amplitude ~0 for constant series, got %v", c.Index, c.Amplitude)
		}
	}
}

func TestDecompose_PureSinusoid(t *testing.T) {
	const (
		n      = 64
		period = 16.0
		amp    = 5.0
	)
	values := make([]float64, n)
	for i := range values {
		values[i] = 100 + amp*math.Sin(2*math.Pi*float64(i)/period)
	}

	components := Decompose(values)
	top := components[0]

	wantIndex := int(math.Round(n / period))
	if top.Index != wantIndex {
		t.Errorf("Expected dominant harmonic index %d, got %d", wantIndex, top.Index)
	}
	if !almostEqual(top.PeriodSamples, period, 1.0) {
		t.Errorf("Expected dominant period ~%v samples, got %v", period, top.PeriodSamples)
	}
	if !almostEqual(top.Amplitude, amp, 1e-6) {
		t.Errorf("Expected recovered amplitude ~%v, got %v", amp, top.Amplitude)
	}
}

func TestDecompose_FieldInvariants(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = math.Sin(float64(i)) + 0.5*math.Cos(2.3*float64(i))
	}

	components := Decompose(values)
	n := len(values)

	byIndex := make(map[int]CycleComponent, len(components))
	for _, c := range components {
		if c.Amplitude < 0 {
			t.Errorf("Harmonic %d: negative amplitude %v", c.Index, c.Amplitude)
		}
		if c.Phase <= -math.Pi || c.Phase > math.Pi {
			t.Errorf("Harmonic %d: phase %v outside (-pi, pi]", c.Index, c.Phase)
		}
		if want := float64(c.Index) / float64(n); c.Frequency != want {
			t.Errorf("Harmonic %d: frequency %v, want %v", c.Index, c.Frequency, want)
		}
		if want := float64(n) / float64(c.Index); c.PeriodSamples != want {
			t.Errorf("Harmonic %d: period %v samples, want %v", c.Index, c.PeriodSamples, want)
		}
		byIndex[c.Index] = c
	}

	// Frequency strictly increases with harmonic index.
	for k := 2; k <= n/2; k++ {
		if byIndex[k].Frequency <= byIndex[k-1].Frequency {
			t.Errorf("Frequency not increasing between harmonics %d and %d", k-1, k)
		}
	}
}

func TestDecompose_SortedByAmplitude(t *testing.T) {
	values := make([]float64, 60)
	for i := range values {
		values[i] = 3*math.Sin(2*math.Pi*float64(i)/20) + math.Sin(2*math.Pi*float64(i)/6)
	}

	components := Decompose(values)
	for i := 1; i < len(components); i++ {
		prev, cur := components[i-1], components[i]
		if cur.Amplitude > prev.Amplitude {
			t.Errorf("Components not amplitude-descending at position %d: %v > %v",
				i, cur.Amplitude, prev.Amplitude)
		}
		if cur.Amplitude == prev.Amplitude && cur.Index < prev.Index {
			t.Errorf("Amplitude tie at position %d not broken by ascending index: %d before %d",
				i, prev.Index, cur.Index)
		}
	}
}

func TestDecompose_Deterministic(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = math.Sin(2*math.Pi*float64(i)/10) + 0.3*float64(i)
	}

	first := Decompose(values)
	second := Decompose(values)

	if len(first) != len(second) {
		t.Fatalf("Component counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Component %d differs between identical runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPeriodForFrequency_ZeroFrequency(t *testing.T) {
	if p := periodForFrequency(0, 32, 0); !math.IsInf(p, 1) {
		t.Errorf("Expected +Inf period for zero frequency, got %v", p)
	}
}
