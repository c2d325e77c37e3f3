package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/placement-microservice/internal/domain"
	"github.com/placement-microservice/internal/domain/repository"
)

// StatsUseCase serves catalog statistics through a read-through cache.
// Cache faults degrade to a recount, never to an error.
type StatsUseCase struct {
	facilityRepo repository.FacilityRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewStatsUseCase creates a new StatsUseCase.
func NewStatsUseCase(
	facilityRepo repository.FacilityRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		facilityRepo: facilityRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// GetStats returns the catalog statistics, cached for the configured TTL.
func (uc *StatsUseCase) GetStats(ctx context.Context) (*domain.CatalogStats, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetStats(ctx)
		if err != nil {
			uc.logger.Warn("Stats cache read failed, recounting", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	stats := uc.facilityRepo.Stats()

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetStats(ctx, &stats, uc.cacheTTL); err != nil {
			uc.logger.Warn("Stats cache write failed", zap.Error(err))
		}
	}

	return &stats, nil
}
