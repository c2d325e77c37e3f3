package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/placement-microservice/internal/pkg/errors"
	"github.com/placement-microservice/internal/pkg/utils"
	"github.com/placement-microservice/internal/usecase"
	"github.com/placement-microservice/internal/usecase/dto"
)

// HeaderSessionID carries the client session for navigation state.
const HeaderSessionID = "X-Session-ID"

// NavigationHandler serves the per-session overview/detail view state.
type NavigationHandler struct {
	navigationUC *usecase.NavigationUseCase
	logger       *zap.Logger
}

// NewNavigationHandler creates a new NavigationHandler.
func NewNavigationHandler(navigationUC *usecase.NavigationUseCase, logger *zap.Logger) *NavigationHandler {
	return &NavigationHandler{
		navigationUC: navigationUC,
		logger:       logger,
	}
}

// Current godoc
// @Summary Get navigation state
// @Description Returns the session's current view. Unknown sessions start on the overview.
// @Tags Navigation
// @Produce json
// @Param X-Session-ID header string false "Session id; defaults to a shared session"
// @Success 200 {object} utils.SuccessResponse{data=dto.NavigationResponse}
// @Router /api/v1/navigation [get]
func (h *NavigationHandler) Current(c *fiber.Ctx) error {
	resp := h.navigationUC.Current(c.Context(), c.Get(HeaderSessionID))
	return utils.SendSuccess(c, resp, nil)
}

// Select godoc
// @Summary Open a facility detail page
// @Description Moves the session to the detail view of the given facility. When the facility does not exist the session stays on the overview and "found" is false.
// @Tags Navigation
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id; defaults to a shared session"
// @Param request body dto.SelectFacilityRequest true "Facility to open"
// @Success 200 {object} utils.SuccessResponse{data=dto.NavigationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/navigation/select [post]
func (h *NavigationHandler) Select(c *fiber.Ctx) error {
	var req dto.SelectFacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"parse": err.Error(),
		}))
	}
	if req.FacilityID < 1 {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"facility_id": req.FacilityID,
		}))
	}

	resp := h.navigationUC.Select(c.Context(), c.Get(HeaderSessionID), req.FacilityID)
	return utils.SendSuccess(c, resp, nil)
}

// Back godoc
// @Summary Return to the overview
// @Description Moves the session back to the overview list.
// @Tags Navigation
// @Produce json
// @Param X-Session-ID header string false "Session id; defaults to a shared session"
// @Success 200 {object} utils.SuccessResponse{data=dto.NavigationResponse}
// @Router /api/v1/navigation/back [post]
func (h *NavigationHandler) Back(c *fiber.Ctx) error {
	resp := h.navigationUC.Back(c.Context(), c.Get(HeaderSessionID))
	return utils.SendSuccess(c, resp, nil)
}
