package models

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// DominantCycleView represents one dominant cycle in an analysis response
type DominantCycleView struct {
	Index         int     `json:"index"`
	Frequency     float64 `json:"frequency"`
	Amplitude     float64 `json:"amplitude"`
	Phase         float64 `json:"phase"`
	PeriodSamples float64 `json:"period_samples"`
	PeriodDays    float64 `json:"period_days"`
}

// AnalysisResponse represents the cycle analysis response for a symbol
type AnalysisResponse struct {
	Symbol                    string              `json:"symbol"`
	Range                     string              `json:"range"`
	Samples                   int                 `json:"samples"`
	StartTime                 string              `json:"start_time"`
	EndTime                   string              `json:"end_time"`
	TrendSlope                float64             `json:"trend_slope"`
	DominantCycles            []DominantCycleView `json:"dominant_cycles"`
	WeightedAveragePeriodDays *float64            `json:"weighted_average_period_days,omitempty"`
	Summary                   string              `json:"summary"`
	Cached                    bool                `json:"cached"`
}

// RangeListResponse lists the supported analysis ranges
type RangeListResponse struct {
	Ranges []string `json:"ranges"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}
