package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/placement-microservice/internal/pkg/utils"
	"github.com/placement-microservice/internal/usecase"
)

// StatsHandler serves catalog statistics.
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStats godoc
// @Summary Get catalog statistics
// @Description Returns aggregate counts over the loaded catalog: facilities, free places, facilities with an immediately free place, cities and regions.
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.CatalogStats}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStats(c.Context())
	if err != nil {
		h.logger.Error("Failed to get catalog stats", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
