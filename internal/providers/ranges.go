// Package providers fetches historical price series for asset symbols
// from an upstream chart API and shapes them into analysis-ready
// sample series.
package providers

// Window describes one supported analysis range: the label used in
// requests, the upstream range parameter, and the sampling interval.
// The table is a fixed enumeration rather than mutable global state so
// the supported ranges are visible in one place.
type Window struct {
	Label    string // request label, e.g. "6mo"
	Range    string // upstream chart API range parameter
	Interval string // upstream sampling interval
}

var windows = []Window{
	{Label: "1mo", Range: "1mo", Interval: "1d"},
	{Label: "3mo", Range: "3mo", Interval: "1d"},
	{Label: "6mo", Range: "6mo", Interval: "1d"},
	{Label: "1y", Range: "1y", Interval: "1d"},
	{Label: "2y", Range: "2y", Interval: "1d"},
	{Label: "5y", Range: "5y", Interval: "1wk"},
}

// WindowForRange resolves a request range label to its window.
func WindowForRange(label string) (Window, bool) {
	for _, w := range windows {
		if w.Label == label {
			return w, true
		}
	}
	return Window{}, false
}

// SupportedRanges returns the request labels of all supported windows,
// in their declared order.
func SupportedRanges() []string {
	labels := make([]string, len(windows))
	for i, w := range windows {
		labels[i] = w.Label
	}
	return labels
}
