package spectral

import (
	"math"
	"sort"
)

// CycleComponent is one harmonic of the decomposed series.
type CycleComponent struct {
	// Index is the harmonic number k: the component completes k full
	// cycles across the analysis window.
	Index int `json:"index"`
	// Frequency is k/n in cycles per sample.
	Frequency float64 `json:"frequency"`
	// Amplitude is the normalized magnitude 2*|X_k|/n, always >= 0.
	Amplitude float64 `json:"amplitude"`
	// Phase is atan2(imag, real) in radians, in (-pi, pi].
	Phase float64 `json:"phase"`
	// PeriodSamples is n/k, the cycle length in samples.
	PeriodSamples float64 `json:"period_samples"`
}

// Decompose runs a direct discrete Fourier transform over the values
// and returns one component per harmonic k = 1..floor(n/2).
//
// The series is mean-centered before the transform so the k=0 DC term
// carries nothing. Components are returned sorted by amplitude
// descending; equal amplitudes (possible for symmetric inputs) are
// broken by ascending harmonic index so the ordering is deterministic.
//
// Direct summation is O(n²), which is acceptable at the series lengths
// callers hand in (a few thousand samples at most). The dominant-cycle
// ranking downstream depends on the exact 2*|X_k|/n normalization and
// the negative-angle sign convention used here.
func Decompose(values []float64) []CycleComponent {
	n := len(values)
	if n == 0 {
		return nil
	}

	// Center on the mean.
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range values {
		centered[i] = v - mean
	}

	half := n / 2
	components := make([]CycleComponent, 0, half)

	for k := 1; k <= half; k++ {
		var re, im float64
		for t := 0; t < n; t++ {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			re += centered[t] * math.Cos(angle)
			im += centered[t] * math.Sin(angle)
		}

		magnitude := math.Sqrt(re*re + im*im)
		frequency := float64(k) / float64(n)

		components = append(components, CycleComponent{
			Index:         k,
			Frequency:     frequency,
			Amplitude:     2 * magnitude / float64(n),
			Phase:         math.Atan2(im, re),
			PeriodSamples: periodForFrequency(frequency, n, k),
		})
	}

	sort.SliceStable(components, func(i, j int) bool {
		if components[i].Amplitude != components[j].Amplitude {
			return components[i].Amplitude > components[j].Amplitude
		}
		return components[i].Index < components[j].Index
	})

	return components
}

// periodForFrequency converts a harmonic to its period in samples.
// The loop in Decompose starts at k=1 so the zero-frequency branch is
// unreachable from there; it exists for the theoretical DC case.
func periodForFrequency(frequency float64, n, k int) float64 {
	if frequency == 0 {
		return math.Inf(1)
	}
	return float64(n) / float64(k)
}
