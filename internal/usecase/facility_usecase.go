package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/placement-microservice/internal/domain"
	"github.com/placement-microservice/internal/domain/repository"
	"github.com/placement-microservice/internal/pkg/errors"
	"github.com/placement-microservice/internal/pkg/utils"
	"github.com/placement-microservice/internal/usecase/dto"
)

// FacilityUseCase runs the filter pipeline over the catalog and serves
// facility details and filter options.
type FacilityUseCase struct {
	facilityRepo repository.FacilityRepository
	logger       *zap.Logger
}

// NewFacilityUseCase creates a new FacilityUseCase.
func NewFacilityUseCase(facilityRepo repository.FacilityRepository, logger *zap.Logger) *FacilityUseCase {
	return &FacilityUseCase{
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// Search applies the criteria snapshot to the whole catalog and returns the
// matching facilities, distance-annotated and sorted when a radius search
// is active. The result is recomputed in full on every call.
func (uc *FacilityUseCase) Search(_ context.Context, criteria domain.FilterCriteria) (*dto.SearchResponse, error) {
	if criteria.Radius != nil {
		if !utils.ValidateCoordinates(criteria.Radius.Lat, criteria.Radius.Lon) {
			return nil, errors.ErrInvalidCoordinates
		}
		if !utils.ValidateRadius(criteria.Radius.RadiusKm) {
			return nil, errors.ErrInvalidRadius
		}
	}

	catalog := uc.facilityRepo.All()
	filtered := domain.FilterCatalog(catalog, criteria)

	uc.logger.Debug("Filter pipeline applied",
		zap.Int("catalog_size", len(catalog)),
		zap.Int("matched", len(filtered)),
		zap.Strings("active_filters", criteria.ActiveKeys()))

	results := make([]dto.FacilitySummary, 0, len(filtered))
	for _, r := range filtered {
		results = append(results, dto.ConvertFacilitySummary(r))
	}

	return &dto.SearchResponse{
		Results: results,
		Total:   len(results),
	}, nil
}

// GetByID returns the full record for the detail page.
func (uc *FacilityUseCase) GetByID(_ context.Context, id int) (*dto.FacilityDetailResponse, error) {
	facility, ok := uc.facilityRepo.GetByID(id)
	if !ok {
		return nil, errors.ErrFacilityNotFound.WithDetails(map[string]interface{}{
			"facility_id": id,
		})
	}

	return &dto.FacilityDetailResponse{Facility: *facility}, nil
}

// Options derives the selectable filter values, restricting sub-regions to
// the selected regions when any are given.
func (uc *FacilityUseCase) Options(_ context.Context, regions []string) domain.FilterOptions {
	return uc.facilityRepo.Options(regions)
}
