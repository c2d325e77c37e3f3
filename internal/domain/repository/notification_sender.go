package repository

import (
	"context"

	"github.com/placement-microservice/internal/domain"
)

// NotificationSender delivers a submitted inquiry to the facility. The
// default implementation only acknowledges; real delivery channels (mail,
// fax, carrier pigeon) plug in here.
type NotificationSender interface {
	Send(ctx context.Context, event domain.InquiryEvent) error
}
