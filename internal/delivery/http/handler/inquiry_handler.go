package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/placement-microservice/internal/pkg/errors"
	"github.com/placement-microservice/internal/pkg/utils"
	"github.com/placement-microservice/internal/usecase"
	"github.com/placement-microservice/internal/usecase/dto"
)

// InquiryHandler accepts contact inquiries for facilities.
type InquiryHandler struct {
	inquiryUC *usecase.InquiryUseCase
	logger    *zap.Logger
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(inquiryUC *usecase.InquiryUseCase, logger *zap.Logger) *InquiryHandler {
	return &InquiryHandler{
		inquiryUC: inquiryUC,
		logger:    logger,
	}
}

// Submit godoc
// @Summary Submit a facility inquiry
// @Description Validates and accepts a contact inquiry. The inquiry is acknowledged and queued for internal notification; no message is sent to the facility.
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param inquiry body dto.InquiryRequest true "Inquiry form; name, email and message are required"
// @Success 201 {object} utils.SuccessResponse{data=dto.InquiryAckResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/inquiries [post]
func (h *InquiryHandler) Submit(c *fiber.Ctx) error {
	var req dto.InquiryRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warn("Failed to parse inquiry", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"parse": err.Error(),
		}))
	}

	ack, err := h.inquiryUC.Submit(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: ack})
}
