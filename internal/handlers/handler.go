package handlers

import (
	"github.com/cyclesight/cyclesight/internal/cache"
	"github.com/cyclesight/cyclesight/internal/config"
	"github.com/cyclesight/cyclesight/internal/logging"
	"github.com/cyclesight/cyclesight/internal/providers"
	"github.com/cyclesight/cyclesight/internal/services"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger          *logging.Logger
	analysisService *services.AnalysisService
}

// New creates a new handler instance
func New(logger *logging.Logger, provider providers.PriceProvider,
	seriesCache cache.SeriesCache, analysisCfg config.AnalysisConfig,
) *Handler {
	analysisService := services.NewAnalysisService(logger, provider, seriesCache, analysisCfg)

	return &Handler{
		logger:          logger,
		analysisService: analysisService,
	}
}
