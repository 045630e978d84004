package providers

import (
	"context"
	"errors"

	"github.com/cyclesight/cyclesight/internal/analytics"
)

// PriceProvider fetches an ordered historical price series for a
// symbol over a window. Implementations return series with strictly
// increasing timestamps and no null values.
type PriceProvider interface {
	FetchHistory(ctx context.Context, symbol string, window Window) (analytics.Series, error)
}

// ErrSymbolNotFound is returned when the upstream does not know the
// requested symbol.
var ErrSymbolNotFound = errors.New("symbol not found upstream")

// ErrNoData is returned when the upstream response contains no usable
// price samples for the requested window.
var ErrNoData = errors.New("no price data in upstream response")
