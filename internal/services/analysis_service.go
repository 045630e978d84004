package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cyclesight/cyclesight/internal/analytics"
	"github.com/cyclesight/cyclesight/internal/analytics/spectral"
	"github.com/cyclesight/cyclesight/internal/cache"
	"github.com/cyclesight/cyclesight/internal/config"
	"github.com/cyclesight/cyclesight/internal/logging"
	"github.com/cyclesight/cyclesight/internal/providers"
)

// AnalysisService handles cycle-analysis business logic
type AnalysisService struct {
	logger   *logging.Logger
	provider providers.PriceProvider
	cache    cache.SeriesCache
	cfg      config.AnalysisConfig
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(
	logger *logging.Logger,
	provider providers.PriceProvider,
	seriesCache cache.SeriesCache,
	cfg config.AnalysisConfig,
) *AnalysisService {
	return &AnalysisService{
		logger:   logger,
		provider: provider,
		cache:    seriesCache,
		cfg:      cfg,
	}
}

// AnalysisRequest represents a cycle analysis request
type AnalysisRequest struct {
	Symbol string
	Range  string
}

// AnalysisOutcome bundles the engine result with the request context
// the handler needs to shape a response.
type AnalysisOutcome struct {
	Symbol    string
	Range     string
	Samples   int
	StartTime time.Time
	EndTime   time.Time
	Cached    bool
	Result    spectral.AnalysisResult
}

// Execute validates the request, obtains the price series (cache
// first, then the upstream provider), enforces the series-length
// policy, and runs the spectral analysis.
func (s *AnalysisService) Execute(ctx context.Context, req *AnalysisRequest) (*AnalysisOutcome, error) {
	startExec := time.Now()

	symbol, err := providers.NormalizeSymbol(req.Symbol)
	if err != nil {
		return nil, NewServiceError(CodeInvalidSymbol, err.Error())
	}

	window, ok := providers.WindowForRange(req.Range)
	if !ok {
		return nil, NewServiceErrorWithDetails(CodeInvalidRange,
			fmt.Sprintf("unsupported range %q", req.Range),
			map[string]interface{}{"available_ranges": providers.SupportedRanges()})
	}

	series, cached := s.cache.Get(ctx, symbol, window.Label)
	if !cached {
		series, err = s.fetchSeries(ctx, symbol, window)
		if err != nil {
			return nil, err
		}
		s.cache.Set(ctx, symbol, window.Label, series)
	}

	if len(series) < s.cfg.MinSamples {
		return nil, NewServiceErrorWithDetails(CodeNotEnoughData,
			fmt.Sprintf("series for %s over %s has %d samples, need at least %d",
				symbol, window.Label, len(series), s.cfg.MinSamples),
			map[string]interface{}{"samples": len(series), "min_samples": s.cfg.MinSamples})
	}

	// The direct DFT is O(n²); keep only the most recent samples when
	// the upstream hands back more than the configured bound.
	if s.cfg.MaxSamples > 0 && len(series) > s.cfg.MaxSamples {
		series = series[len(series)-s.cfg.MaxSamples:]
	}

	result := spectral.Analyze(series, series.MeanSpacingDays(), symbol, window.Label)

	s.logger.Info("Analysis completed",
		"symbol", symbol,
		"range", window.Label,
		"samples", len(series),
		"dominant_cycles", len(result.DominantCycles),
		"cached", cached,
		"latency_ms", time.Since(startExec).Milliseconds())

	return &AnalysisOutcome{
		Symbol:    symbol,
		Range:     window.Label,
		Samples:   len(series),
		StartTime: series[0].Time,
		EndTime:   series[len(series)-1].Time,
		Cached:    cached,
		Result:    result,
	}, nil
}

// fetchSeries pulls the price history from the upstream provider and
// maps provider failures onto the service error taxonomy.
func (s *AnalysisService) fetchSeries(ctx context.Context, symbol string, window providers.Window) (analytics.Series, error) {
	series, err := s.provider.FetchHistory(ctx, symbol, window)
	if err != nil {
		switch {
		case errors.Is(err, providers.ErrSymbolNotFound):
			return nil, NewServiceError(CodeSymbolNotFound,
				fmt.Sprintf("symbol %s not found", symbol))
		case errors.Is(err, providers.ErrNoData):
			return nil, NewServiceErrorWithDetails(CodeNotEnoughData,
				fmt.Sprintf("no price data for %s over %s", symbol, window.Label),
				map[string]interface{}{"samples": 0, "min_samples": s.cfg.MinSamples})
		default:
			s.logger.Error("Upstream fetch failed", "symbol", symbol, "range", window.Label, "error", err)
			return nil, NewServiceErrorWithDetails(CodeUpstreamFailed,
				"failed to fetch price history",
				map[string]interface{}{"error": err.Error()})
		}
	}
	return series, nil
}
