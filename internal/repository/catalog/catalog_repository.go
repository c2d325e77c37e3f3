package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/placement-microservice/internal/domain"
	"github.com/placement-microservice/internal/domain/repository"
)

// Repository is the in-memory facility catalog. It is populated exactly
// once at construction and read-only afterwards, so lookups need no
// locking.
type Repository struct {
	facilities []domain.Facility
	byID       map[int]int
	loadedAt   time.Time
	logger     *zap.Logger
}

// NewFromFile loads the catalog from a JSON seed file. Any unreadable file,
// malformed record or invariant violation is a load-time fault.
func NewFromFile(path string, logger *zap.Logger) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var facilities []domain.Facility
	if err := json.Unmarshal(data, &facilities); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	repo, err := NewFromFacilities(facilities, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Facility catalog loaded",
		zap.String("path", path),
		zap.Int("facilities", len(facilities)))

	return repo, nil
}

// NewFromFacilities builds the catalog snapshot from already-loaded records.
// Used by the file loader and by the Postgres catalog source.
func NewFromFacilities(facilities []domain.Facility, logger *zap.Logger) (*Repository, error) {
	if len(facilities) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	byID := make(map[int]int, len(facilities))
	for i := range facilities {
		f := &facilities[i]
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog record: %w", err)
		}
		if _, exists := byID[f.ID]; exists {
			return nil, fmt.Errorf("duplicate facility id %d", f.ID)
		}
		byID[f.ID] = i
	}

	return &Repository{
		facilities: facilities,
		byID:       byID,
		loadedAt:   time.Now(),
		logger:     logger,
	}, nil
}

var _ repository.FacilityRepository = (*Repository)(nil)

// All returns a copy of the catalog in load order.
func (r *Repository) All() []domain.Facility {
	out := make([]domain.Facility, len(r.facilities))
	copy(out, r.facilities)
	return out
}

// GetByID returns the facility with the given id.
func (r *Repository) GetByID(id int) (*domain.Facility, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	f := r.facilities[idx]
	return &f, true
}

// Options derives the selectable values for the filter controls. The
// sub-region list is restricted to the selected regions when any are given,
// otherwise it covers the whole catalog.
func (r *Repository) Options(regions []string) domain.FilterOptions {
	selected := make(map[string]bool, len(regions))
	for _, reg := range regions {
		selected[reg] = true
	}

	regionSet := map[string]bool{}
	subRegionSet := map[string]bool{}
	careTypeSet := map[string]bool{}
	careFormSet := map[string]bool{}
	intakeTypeSet := map[string]bool{}
	schoolFormSet := map[string]bool{}
	facilityTypeSet := map[string]bool{}
	operatorSet := map[string]bool{}
	contactWindowSet := map[string]bool{}
	genderSet := map[string]bool{}

	opts := domain.FilterOptions{}
	for i := range r.facilities {
		f := &r.facilities[i]

		regionSet[f.Region] = true
		if sub := f.SubRegionName(); sub != "" {
			if len(selected) == 0 || selected[f.Region] {
				subRegionSet[sub] = true
			}
		}
		careTypeSet[f.CareType] = true
		for _, v := range f.CareForms {
			careFormSet[v] = true
		}
		for _, v := range f.IntakeTypes {
			intakeTypeSet[v] = true
		}
		for _, v := range f.SchoolForms {
			schoolFormSet[v] = true
		}
		facilityTypeSet[f.FacilityType] = true
		operatorSet[f.Operator] = true
		if w := f.ContactWindowName(); w != "" {
			contactWindowSet[w] = true
		}
		genderSet[f.Gender] = true

		if i == 0 || f.AgeMin < opts.AgeMin {
			opts.AgeMin = f.AgeMin
		}
		if f.AgeMax > opts.AgeMax {
			opts.AgeMax = f.AgeMax
		}
		if f.AvailableMonths > opts.MaxMonths {
			opts.MaxMonths = f.AvailableMonths
		}
	}

	opts.Regions = sortedKeys(regionSet)
	opts.SubRegions = sortedKeys(subRegionSet)
	opts.CareTypes = sortedKeys(careTypeSet)
	opts.CareForms = sortedKeys(careFormSet)
	opts.IntakeTypes = sortedKeys(intakeTypeSet)
	opts.SchoolForms = sortedKeys(schoolFormSet)
	opts.FacilityTypes = sortedKeys(facilityTypeSet)
	opts.Operators = sortedKeys(operatorSet)
	opts.ContactWindows = sortedKeys(contactWindowSet)
	opts.Genders = sortedKeys(genderSet)

	return opts
}

// Stats computes the overview metric row from the catalog.
func (r *Repository) Stats() domain.CatalogStats {
	cities := map[string]bool{}
	regions := map[string]bool{}

	stats := domain.CatalogStats{
		Facilities:      len(r.facilities),
		CatalogLoadedAt: r.loadedAt,
	}
	for i := range r.facilities {
		f := &r.facilities[i]
		stats.FreePlaces += f.FreePlaces
		if f.FreeNow {
			stats.FreeNow++
		}
		cities[f.City] = true
		regions[f.Region] = true
	}
	stats.Cities = len(cities)
	stats.Regions = len(regions)

	return stats
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
