package spectral

import (
	"math"
	"reflect"
	"testing"
)

func TestAnalyze_SinusoidWithDrift(t *testing.T) {
	// 64 daily samples: 100 + 5*sin(2*pi*t/16) + 0.01*t
	series := generateDailySeries(64, func(d int) float64 {
		return 100 + 5*math.Sin(2*math.Pi*float64(d)/16) + 0.01*float64(d)
	})

	result := Analyze(series, series.MeanSpacingDays(), "TEST", "3mo")

	if !almostEqual(result.TrendSlope, 0.01, 0.01) {
		t.Errorf("Expected trend slope ~0.01, got %v", result.TrendSlope)
	}

	if len(result.DominantCycles) == 0 {
		t.Fatal("Expected at least one dominant cycle")
	}
	top := result.DominantCycles[0]
	if !almostEqual(top.PeriodDays, 16, 1.0) {
		t.Errorf("Expected dominant period ~16 days, got %v", top.PeriodDays)
	}
	if !almostEqual(top.Amplitude, 5, 0.3) {
		t.Errorf("Expected dominant amplitude ~5, got %v", top.Amplitude)
	}

	if result.WeightedAveragePeriodDays == nil {
		t.Fatal("Expected a weighted average period")
	}
	if result.Summary == "" {
		t.Error("Expected a non-empty summary")
	}
}

func TestAnalyze_ConstantSeries(t *testing.T) {
	series := generateDailySeries(40, func(int) float64 { return 500 })

	result := Analyze(series, 1.0, "FLAT", "6mo")

	if result.TrendSlope != 0 {
		t.Errorf("Expected zero trend slope, got %v", result.TrendSlope)
	}
	// Every amplitude is ~0 but not exactly 0 is possible; either all
	// cycles were filtered or the amplitude sum collapses to zero.
	for _, c := range result.DominantCycles {
		if c.Amplitude > 1e-9 {
			t.Errorf("Constant series produced cycle with amplitude %v", c.Amplitude)
		}
	}
}

func TestAnalyze_EmptySeries(t *testing.T) {
	result := Analyze(nil, 1.0, "EMPTY", "1mo")

	if result.TrendSlope != 0 {
		t.Errorf("Expected zero trend slope, got %v", result.TrendSlope)
	}
	if len(result.DominantCycles) != 0 {
		t.Errorf("Expected no dominant cycles, got %d", len(result.DominantCycles))
	}
	if result.WeightedAveragePeriodDays != nil {
		t.Errorf("Expected absent weighted average, got %v", *result.WeightedAveragePeriodDays)
	}
	if result.Summary == "" {
		t.Error("Expected the insufficient-data summary")
	}
}

func TestAnalyze_DominantCycleBounds(t *testing.T) {
	series := generateDailySeries(128, func(d int) float64 {
		return 50 +
			4*math.Sin(2*math.Pi*float64(d)/32) +
			2*math.Sin(2*math.Pi*float64(d)/10) +
			1*math.Sin(2*math.Pi*float64(d)/5)
	})

	result := Analyze(series, 1.0, "MULTI", "1y")

	if len(result.DominantCycles) > 4 {
		t.Fatalf("Dominant cycle list exceeds 4 entries: %d", len(result.DominantCycles))
	}
	var minPeriod, maxPeriod float64
	for i, c := range result.DominantCycles {
		if c.Amplitude <= 0 {
			t.Errorf("Cycle %d has non-positive amplitude %v", i, c.Amplitude)
		}
		if c.PeriodDays <= 0 || math.IsInf(c.PeriodDays, 0) || math.IsNaN(c.PeriodDays) {
			t.Errorf("Cycle %d has invalid period %v", i, c.PeriodDays)
		}
		if i == 0 || c.PeriodDays < minPeriod {
			minPeriod = c.PeriodDays
		}
		if i == 0 || c.PeriodDays > maxPeriod {
			maxPeriod = c.PeriodDays
		}
	}

	if avg := result.WeightedAveragePeriodDays; avg != nil {
		if *avg < minPeriod || *avg > maxPeriod {
			t.Errorf("Weighted average %v outside dominant period bounds [%v, %v]",
				*avg, minPeriod, maxPeriod)
		}
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	series := generateDailySeries(96, func(d int) float64 {
		return 75 + 3*math.Sin(2*math.Pi*float64(d)/24) + 0.05*float64(d)
	})
	spacing := series.MeanSpacingDays()

	first := Analyze(series, spacing, "SAME", "2y")
	second := Analyze(series, spacing, "SAME", "2y")

	if first.TrendSlope != second.TrendSlope {
		t.Errorf("Trend slope differs between runs: %v vs %v", first.TrendSlope, second.TrendSlope)
	}
	if !reflect.DeepEqual(first.DominantCycles, second.DominantCycles) {
		t.Error("Dominant cycles differ between identical runs")
	}
	switch {
	case first.WeightedAveragePeriodDays == nil && second.WeightedAveragePeriodDays == nil:
	case first.WeightedAveragePeriodDays != nil && second.WeightedAveragePeriodDays != nil:
		if *first.WeightedAveragePeriodDays != *second.WeightedAveragePeriodDays {
			t.Error("Weighted average differs between identical runs")
		}
	default:
		t.Error("Weighted average presence differs between identical runs")
	}
	if first.Summary != second.Summary {
		t.Error("Summary differs between identical runs")
	}
}
