package handlers

import (
	"time"

	"github.com/cyclesight/cyclesight/internal/models"
	"github.com/cyclesight/cyclesight/internal/providers"
	"github.com/cyclesight/cyclesight/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Cycles handles cycle analysis requests
// GET /v1/symbols/:symbol/cycles?range=6mo
func (h *Handler) Cycles(c *fiber.Ctx) error {
	req := &services.AnalysisRequest{
		Symbol: c.Params("symbol"),
		Range:  c.Query("range", "6mo"),
	}

	outcome, err := h.analysisService.Execute(c.Context(), req)
	if err != nil {
		if svcErr, ok := err.(*services.ServiceError); ok {
			return c.Status(statusForServiceError(svcErr)).JSON(models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    svcErr.Code,
					Message: svcErr.Message,
					Details: svcErr.Details,
				},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ANALYSIS_FAILED",
				Message: err.Error(),
			},
		})
	}

	return c.JSON(buildAnalysisResponse(outcome))
}

// Ranges lists the supported analysis ranges
// GET /v1/ranges
func (h *Handler) Ranges(c *fiber.Ctx) error {
	return c.JSON(models.RangeListResponse{Ranges: providers.SupportedRanges()})
}

// statusForServiceError maps service error codes onto HTTP statuses
func statusForServiceError(err *services.ServiceError) int {
	switch err.Code {
	case services.CodeInvalidSymbol, services.CodeInvalidRange:
		return fiber.StatusBadRequest
	case services.CodeSymbolNotFound:
		return fiber.StatusNotFound
	case services.CodeNotEnoughData:
		return fiber.StatusUnprocessableEntity
	case services.CodeUpstreamFailed:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// buildAnalysisResponse converts a service outcome into the response model
func buildAnalysisResponse(outcome *services.AnalysisOutcome) models.AnalysisResponse {
	cycles := make([]models.DominantCycleView, len(outcome.Result.DominantCycles))
	for i, dc := range outcome.Result.DominantCycles {
		cycles[i] = models.DominantCycleView{
			Index:         dc.Index,
			Frequency:     dc.Frequency,
			Amplitude:     dc.Amplitude,
			Phase:         dc.Phase,
			PeriodSamples: dc.PeriodSamples,
			PeriodDays:    dc.PeriodDays,
		}
	}

	return models.AnalysisResponse{
		Symbol:                    outcome.Symbol,
		Range:                     outcome.Range,
		Samples:                   outcome.Samples,
		StartTime:                 outcome.StartTime.Format(time.RFC3339),
		EndTime:                   outcome.EndTime.Format(time.RFC3339),
		TrendSlope:                outcome.Result.TrendSlope,
		DominantCycles:            cycles,
		WeightedAveragePeriodDays: outcome.Result.WeightedAveragePeriodDays,
		Summary:                   outcome.Result.Summary,
		Cached:                    outcome.Cached,
	}
}
