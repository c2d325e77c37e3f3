package inquiry_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/placement-microservice/internal/domain"
	"github.com/placement-microservice/internal/worker/inquiry"
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

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, event domain.InquiryEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func inquiryMessage(t *testing.T, id string, event domain.InquiryEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestNotificationWorker_Name(t *testing.T) {
	w := inquiry.NewNotificationWorker(&MockStreamRepository{}, &MockSender{}, "test-group", 3, zap.NewNop())

	assert.Equal(t, "inquiry-notification", w.Name())
}

func TestNotificationWorker_StopIsIdempotent(t *testing.T) {
	w := inquiry.NewNotificationWorker(&MockStreamRepository{}, &MockSender{}, "test-group", 3, zap.NewNop())

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
}

func TestNotificationWorker_ContextCancellation(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamInquirySubmitted, "test-group").Return(nil)
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamInquirySubmitted, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)

	w := inquiry.NewNotificationWorker(streamRepo, &MockSender{}, "test-group", 3, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errChan:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop on context cancellation")
	}
}

func TestNotificationWorker_DeliversAndAcks(t *testing.T) {
	event := domain.InquiryEvent{
		InquiryID:    uuid.New(),
		FacilityID:   1,
		FacilityName: "Wohngruppe Mitte",
		ContactEmail: "kontakt@wg-mitte.de",
		Inquiry:      domain.Inquiry{FacilityID: 1, Name: "Frau Schneider", Email: "a@b.de", Message: "m"},
		SubmittedAt:  time.Now().UTC(),
	}

	streamRepo := &MockStreamRepository{}
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamInquirySubmitted, "test-group").Return(nil)
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamInquirySubmitted, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{inquiryMessage(t, "1-0", event)}, nil).Once()
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamInquirySubmitted, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)
	streamRepo.On("PublishToStream", mock.Anything, domain.StreamInquiryNotified, mock.MatchedBy(func(data interface{}) bool {
		notified, ok := data.(domain.InquiryNotifiedEvent)
		return ok && notified.InquiryID == event.InquiryID && notified.Error == ""
	})).Return(nil)
	streamRepo.On("AckMessages", mock.Anything, domain.StreamInquirySubmitted, "test-group", []string{"1-0"}).Return(nil)

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.MatchedBy(func(e domain.InquiryEvent) bool {
		return e.InquiryID == event.InquiryID
	})).Return(nil)

	w := inquiry.NewNotificationWorker(streamRepo, sender, "test-group", 3, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, w.Stop())
	cancel()
	<-errChan

	sender.AssertExpectations(t)
	streamRepo.AssertCalled(t, "AckMessages", mock.Anything, domain.StreamInquirySubmitted, "test-group", []string{"1-0"})
}

func TestNotificationWorker_FailedSendIsNotAcked(t *testing.T) {
	event := domain.InquiryEvent{
		InquiryID:  uuid.New(),
		FacilityID: 1,
		Inquiry:    domain.Inquiry{FacilityID: 1, Name: "n", Email: "a@b.de", Message: "m"},
	}

	streamRepo := &MockStreamRepository{}
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamInquirySubmitted, "test-group").Return(nil)
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamInquirySubmitted, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{inquiryMessage(t, "2-0", event)}, nil).Once()
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamInquirySubmitted, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)
	streamRepo.On("PublishToStream", mock.Anything, domain.StreamInquiryNotified, mock.MatchedBy(func(data interface{}) bool {
		notified, ok := data.(domain.InquiryNotifiedEvent)
		return ok && notified.Error != ""
	})).Return(nil)
	streamRepo.On("AckMessages", mock.Anything, domain.StreamInquirySubmitted, "test-group", []string{}).Return(nil)

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(stderrors.New("delivery refused"))

	w := inquiry.NewNotificationWorker(streamRepo, sender, "test-group", 3, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, w.Stop())
	cancel()
	<-errChan

	streamRepo.AssertNotCalled(t, "AckMessages", mock.Anything, domain.StreamInquirySubmitted, "test-group", []string{"2-0"})
}
