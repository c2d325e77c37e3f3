package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/placement-microservice/internal/domain"
	"github.com/placement-microservice/internal/pkg/errors"
	"github.com/placement-microservice/internal/usecase/dto"
)

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func validInquiry() *dto.InquiryRequest {
	return &dto.InquiryRequest{
		FacilityID: 1,
		Name:       "Frau Schneider",
		Email:      "schneider@jugendamt-berlin.de",
		Message:    "Wir suchen kurzfristig einen Platz für einen 15-Jährigen.",
	}
}

func TestInquiryUseCase_Submit(t *testing.T) {
	catalog := searchCatalog()

	facilityRepo := new(MockFacilityRepository)
	facilityRepo.On("GetByID", 1).Return(&catalog[0], true)

	streamRepo := new(MockStreamRepository)
	streamRepo.On("PublishToStream", mock.Anything, domain.StreamInquirySubmitted, mock.MatchedBy(func(data interface{}) bool {
		event, ok := data.(domain.InquiryEvent)
		return ok &&
			event.InquiryID != uuid.Nil &&
			event.FacilityID == 1 &&
			event.FacilityName == "Wohngruppe Mitte" &&
			event.Inquiry.Name == "Frau Schneider"
	})).Return(nil)

	uc := NewInquiryUseCase(facilityRepo, streamRepo, zap.NewNop())

	ack, err := uc.Submit(context.Background(), validInquiry())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ack.InquiryID)
	assert.Equal(t, 1, ack.FacilityID)
	assert.Equal(t, "accepted", ack.Status)
	streamRepo.AssertExpectations(t)
}

func TestInquiryUseCase_Submit_MissingFields(t *testing.T) {
	facilityRepo := new(MockFacilityRepository)
	streamRepo := new(MockStreamRepository)

	uc := NewInquiryUseCase(facilityRepo, streamRepo, zap.NewNop())

	cases := []struct {
		name string
		req  *dto.InquiryRequest
	}{
		{"no name", &dto.InquiryRequest{FacilityID: 1, Email: "a@b.de", Message: "m"}},
		{"no email", &dto.InquiryRequest{FacilityID: 1, Name: "n", Message: "m"}},
		{"bad email", &dto.InquiryRequest{FacilityID: 1, Name: "n", Email: "not-an-email", Message: "m"}},
		{"no message", &dto.InquiryRequest{FacilityID: 1, Name: "n", Email: "a@b.de"}},
		{"no facility", &dto.InquiryRequest{Name: "n", Email: "a@b.de", Message: "m"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Submit(context.Background(), tc.req)

			require.Error(t, err)
			appErr, ok := err.(*errors.AppError)
			require.True(t, ok)
			assert.Equal(t, errors.ErrValidationFailed.Code, appErr.Code)
		})
	}

	facilityRepo.AssertNotCalled(t, "GetByID")
	streamRepo.AssertNotCalled(t, "PublishToStream")
}

func TestInquiryUseCase_Submit_UnknownFacility(t *testing.T) {
	facilityRepo := new(MockFacilityRepository)
	facilityRepo.On("GetByID", 99).Return(nil, false)

	streamRepo := new(MockStreamRepository)

	uc := NewInquiryUseCase(facilityRepo, streamRepo, zap.NewNop())

	req := validInquiry()
	req.FacilityID = 99

	_, err := uc.Submit(context.Background(), req)

	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrFacilityNotFound.Code, appErr.Code)
	streamRepo.AssertNotCalled(t, "PublishToStream")
}

func TestInquiryUseCase_Submit_StreamFailure(t *testing.T) {
	catalog := searchCatalog()

	facilityRepo := new(MockFacilityRepository)
	facilityRepo.On("GetByID", 1).Return(&catalog[0], true)

	streamRepo := new(MockStreamRepository)
	streamRepo.On("PublishToStream", mock.Anything, mock.Anything, mock.Anything).
		Return(stderrors.New("redis down"))

	uc := NewInquiryUseCase(facilityRepo, streamRepo, zap.NewNop())

	_, err := uc.Submit(context.Background(), validInquiry())

	assert.ErrorIs(t, err, errors.ErrStreamError)
}
