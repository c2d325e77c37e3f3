package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/placement-microservice/internal/domain"
	"github.com/placement-microservice/internal/domain/repository"
	"github.com/placement-microservice/internal/pkg/errors"
	"github.com/placement-microservice/internal/pkg/validator"
	"github.com/placement-microservice/internal/usecase/dto"
)

// InquiryUseCase accepts contact inquiries. An accepted inquiry is only
// acknowledged and handed to the notification stream; nothing is sent to
// the facility.
type InquiryUseCase struct {
	facilityRepo repository.FacilityRepository
	streamRepo   repository.StreamRepository
	logger       *zap.Logger
}

// NewInquiryUseCase creates a new InquiryUseCase.
func NewInquiryUseCase(
	facilityRepo repository.FacilityRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *InquiryUseCase {
	return &InquiryUseCase{
		facilityRepo: facilityRepo,
		streamRepo:   streamRepo,
		logger:       logger,
	}
}

// Submit validates the inquiry, checks the target facility exists and
// publishes an event for the notification worker. The returned ack carries
// the generated inquiry id.
func (uc *InquiryUseCase) Submit(ctx context.Context, req *dto.InquiryRequest) (*dto.InquiryAckResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	facility, ok := uc.facilityRepo.GetByID(req.FacilityID)
	if !ok {
		return nil, errors.ErrFacilityNotFound.WithDetails(map[string]interface{}{
			"facility_id": req.FacilityID,
		})
	}

	event := domain.InquiryEvent{
		InquiryID:    uuid.New(),
		FacilityID:   facility.ID,
		FacilityName: facility.Name,
		ContactEmail: facility.ContactEmail,
		Inquiry: domain.Inquiry{
			FacilityID:   req.FacilityID,
			Name:         req.Name,
			Organisation: req.Organisation,
			Email:        req.Email,
			Phone:        req.Phone,
			Message:      req.Message,
			RequesterAge: req.RequesterAge,
		},
		SubmittedAt: time.Now().UTC(),
	}

	if uc.streamRepo != nil {
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamInquirySubmitted, event); err != nil {
			uc.logger.Error("Failed to publish inquiry event",
				zap.String("inquiry_id", event.InquiryID.String()),
				zap.Error(err))
			return nil, errors.ErrStreamError
		}
	}

	uc.logger.Info("Inquiry accepted",
		zap.String("inquiry_id", event.InquiryID.String()),
		zap.Int("facility_id", facility.ID),
		zap.String("facility", facility.Name))

	return &dto.InquiryAckResponse{
		InquiryID:    event.InquiryID,
		FacilityID:   facility.ID,
		FacilityName: facility.Name,
		Status:       "accepted",
		Message:      "Anfrage entgegengenommen. Es wird keine Nachricht versendet.",
	}, nil
}
