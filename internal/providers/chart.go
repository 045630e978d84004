package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cyclesight/cyclesight/internal/analytics"
	"github.com/cyclesight/cyclesight/internal/config"
	"github.com/cyclesight/cyclesight/internal/logging"
	"github.com/cyclesight/cyclesight/internal/utils"
)

// ChartClient implements PriceProvider against a Yahoo-style chart API:
// GET {base}/{symbol}?range={range}&interval={interval} returning
// parallel timestamp and close arrays.
type ChartClient struct {
	logger    *logging.Logger
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewChartClient creates a chart API client from provider configuration
func NewChartClient(logger *logging.Logger, cfg config.ProviderConfig) *ChartClient {
	return &ChartClient{
		logger:    logger,
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

// chartEnvelope mirrors the upstream response shape. Close values are
// decoded as interface{} because the upstream nulls out sessions with
// no trade data.
type chartEnvelope struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchHistory fetches the close-price history for a symbol.
//
// Null closes are dropped together with their timestamps, and any
// non-increasing timestamps are skipped, so the returned series always
// satisfies the analysis input contract.
func (c *ChartClient) FetchHistory(ctx context.Context, symbol string, window Window) (analytics.Series, error) {
	endpoint := fmt.Sprintf("%s/%s?range=%s&interval=%s",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(window.Range), url.QueryEscape(window.Interval))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	var envelope chartEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode upstream response: %w", err)
	}

	if envelope.Chart.Error != nil {
		if envelope.Chart.Error.Code == "Not Found" {
			return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
		}
		return nil, fmt.Errorf("upstream error %s: %s",
			envelope.Chart.Error.Code, envelope.Chart.Error.Description)
	}

	series := extractSeries(envelope)
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNoData, symbol, window.Label)
	}

	c.logger.Debug("Fetched price history",
		"symbol", symbol,
		"range", window.Label,
		"samples", len(series),
		"latency_ms", time.Since(start).Milliseconds())

	return series, nil
}

// extractSeries converts the parallel timestamp/close arrays into an
// ordered, null-free sample series.
func extractSeries(envelope chartEnvelope) analytics.Series {
	results := envelope.Chart.Result
	if len(results) == 0 {
		return nil
	}
	result := results[0]
	if len(result.Indicators.Quote) == 0 {
		return nil
	}

	timestamps := result.Timestamp
	closes := result.Indicators.Quote[0].Close

	series := make(analytics.Series, 0, len(timestamps))
	var last time.Time

	for i, ts := range timestamps {
		if i >= len(closes) {
			break
		}
		value, ok := utils.ToFloat64(closes[i])
		if !ok {
			continue // null or malformed close
		}

		t := time.Unix(ts, 0).UTC()
		if len(series) > 0 && !t.After(last) {
			continue // enforce strictly increasing timestamps
		}

		series = append(series, analytics.SamplePoint{Time: t, Value: value})
		last = t
	}

	return series
}
