package handler

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/placement-microservice/internal/domain"
	"github.com/placement-microservice/internal/pkg/errors"
	"github.com/placement-microservice/internal/pkg/utils"
	"github.com/placement-microservice/internal/usecase"
)

// FacilityHandler serves facility search, detail and filter options.
type FacilityHandler struct {
	facilityUC *usecase.FacilityUseCase
	logger     *zap.Logger
}

// NewFacilityHandler creates a new FacilityHandler.
func NewFacilityHandler(facilityUC *usecase.FacilityUseCase, logger *zap.Logger) *FacilityHandler {
	return &FacilityHandler{
		facilityUC: facilityUC,
		logger:     logger,
	}
}

// Search godoc
// @Summary Search facilities
// @Description Applies the filter criteria to the whole catalog and returns matching facilities. With an "umkreis" block the results are annotated with the distance in km and sorted nearest first.
// @Tags Facilities
// @Accept json
// @Produce json
// @Param criteria body domain.FilterCriteria true "Filter criteria; omitted fields are inactive"
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/facilities/search [post]
func (h *FacilityHandler) Search(c *fiber.Ctx) error {
	start := time.Now()

	var criteria domain.FilterCriteria
	if err := c.BodyParser(&criteria); err != nil {
		h.logger.Warn("Failed to parse search criteria", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"parse": err.Error(),
		}))
	}

	resp, err := h.facilityUC.Search(c.Context(), criteria)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total:    resp.Total,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

// GetByID godoc
// @Summary Get facility details
// @Description Returns the full record of one facility for the detail page.
// @Tags Facilities
// @Produce json
// @Param id path int true "Facility ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.FacilityDetailResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/facilities/{id} [get]
func (h *FacilityHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": c.Params("id"),
		}))
	}

	resp, err := h.facilityUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// Options godoc
// @Summary Get filter options
// @Description Returns the selectable values for the multi-select filter controls. With "bundeslaender" given, the "landkreise" list is restricted to those regions.
// @Tags Facilities
// @Produce json
// @Param bundeslaender query string false "Comma-separated region names"
// @Success 200 {object} utils.SuccessResponse{data=domain.FilterOptions}
// @Router /api/v1/facilities/options [get]
func (h *FacilityHandler) Options(c *fiber.Ctx) error {
	var regions []string
	if raw := c.Query("bundeslaender"); raw != "" {
		for _, r := range strings.Split(raw, ",") {
			if r = strings.TrimSpace(r); r != "" {
				regions = append(regions, r)
			}
		}
	}

	opts := h.facilityUC.Options(c.Context(), regions)

	return utils.SendSuccess(c, opts, nil)
}
