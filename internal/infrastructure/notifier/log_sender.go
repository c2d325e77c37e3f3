package notifier

import (
	"context"

	"go.uber.org/zap"

	"github.com/placement-microservice/internal/domain"
	"github.com/placement-microservice/internal/domain/repository"
)

// LogSender acknowledges inquiries without dispatching anything. It stands
// in for a real delivery channel behind the NotificationSender interface.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

var _ repository.NotificationSender = (*LogSender)(nil)

func (s *LogSender) Send(_ context.Context, event domain.InquiryEvent) error {
	s.logger.Info("Inquiry acknowledged",
		zap.String("inquiry_id", event.InquiryID.String()),
		zap.Int("facility_id", event.FacilityID),
		zap.String("facility_name", event.FacilityName),
		zap.String("contact_email", event.ContactEmail),
		zap.String("requester", event.Inquiry.Name),
	)
	return nil
}
