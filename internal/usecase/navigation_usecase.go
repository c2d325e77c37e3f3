package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/placement-microservice/internal/domain"
	"github.com/placement-microservice/internal/domain/repository"
	"github.com/placement-microservice/internal/usecase/dto"
)

// DefaultSession is used when the client does not supply a session id.
const DefaultSession = "default"

// NavigationUseCase tracks the per-session view state. A session is always
// on the overview or on the detail view of an existing facility; selecting
// an unknown facility lands the session back on the overview.
type NavigationUseCase struct {
	facilityRepo repository.FacilityRepository
	logger       *zap.Logger

	mu       sync.RWMutex
	sessions map[string]domain.NavigationState
}

// NewNavigationUseCase creates a new NavigationUseCase.
func NewNavigationUseCase(facilityRepo repository.FacilityRepository, logger *zap.Logger) *NavigationUseCase {
	return &NavigationUseCase{
		facilityRepo: facilityRepo,
		logger:       logger,
		sessions:     make(map[string]domain.NavigationState),
	}
}

func normalizeSession(sessionID string) string {
	if sessionID == "" {
		return DefaultSession
	}
	return sessionID
}

// Current returns the session's view state. Unknown sessions start on the
// overview.
func (uc *NavigationUseCase) Current(_ context.Context, sessionID string) *dto.NavigationResponse {
	sessionID = normalizeSession(sessionID)

	uc.mu.RLock()
	state, ok := uc.sessions[sessionID]
	uc.mu.RUnlock()

	if !ok {
		state = domain.Overview()
	}
	return &dto.NavigationResponse{State: state, Found: true}
}

// Select moves the session to the detail view of the given facility. When
// the facility does not exist the session goes to the overview and Found
// is false.
func (uc *NavigationUseCase) Select(_ context.Context, sessionID string, facilityID int) *dto.NavigationResponse {
	sessionID = normalizeSession(sessionID)

	_, found := uc.facilityRepo.GetByID(facilityID)

	state := domain.Overview()
	if found {
		state = domain.Detail(facilityID)
	} else {
		uc.logger.Info("Selected facility not in catalog, returning to overview",
			zap.String("session", sessionID),
			zap.Int("facility_id", facilityID))
	}

	uc.mu.Lock()
	uc.sessions[sessionID] = state
	uc.mu.Unlock()

	return &dto.NavigationResponse{State: state, Found: found}
}

// Back returns the session to the overview.
func (uc *NavigationUseCase) Back(_ context.Context, sessionID string) *dto.NavigationResponse {
	sessionID = normalizeSession(sessionID)

	state := domain.Overview()

	uc.mu.Lock()
	uc.sessions[sessionID] = state
	uc.mu.Unlock()

	return &dto.NavigationResponse{State: state, Found: true}
}
