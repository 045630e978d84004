package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cyclesight/cyclesight/internal/analytics"
	"github.com/golang/snappy"
)

// cachedPoint is the wire shape of one sample: unix seconds plus value.
type cachedPoint struct {
	T int64   `json:"t"`
	V float64 `json:"v"`
}

// encodeSeries serializes a series to snappy-compressed JSON.
func encodeSeries(series analytics.Series) ([]byte, error) {
	points := make([]cachedPoint, len(series))
	for i, p := range series {
		points[i] = cachedPoint{T: p.Time.Unix(), V: p.Value}
	}

	raw, err := json.Marshal(points)
	if err != nil {
		return nil, fmt.Errorf("failed to encode series: %w", err)
	}

	return snappy.Encode(nil, raw), nil
}

// decodeSeries deserializes a snappy-compressed JSON payload back into
// a series.
func decodeSeries(payload []byte) (analytics.Series, error) {
	raw, err := snappy.Decode(nil, payload)
	if err != nil {
		return nil, fmt.Errorf("snappy decompress failed: %w", err)
	}

	var points []cachedPoint
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, fmt.Errorf("failed to decode series: %w", err)
	}

	series := make(analytics.Series, len(points))
	for i, p := range points {
		series[i] = analytics.SamplePoint{Time: time.Unix(p.T, 0).UTC(), Value: p.V}
	}
	return series, nil
}
