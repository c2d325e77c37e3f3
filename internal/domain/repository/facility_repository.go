package repository

import (
	"github.com/placement-microservice/internal/domain"
)

// FacilityRepository serves the immutable facility catalog. Implementations
// load the catalog once at startup; all reads afterwards are in-memory and
// never fail. Returned slices are copies, the catalog itself is never
// mutated.
type FacilityRepository interface {
	// All returns every facility in catalog order.
	All() []domain.Facility

	// GetByID returns the facility with the given id, or false.
	GetByID(id int) (*domain.Facility, bool)

	// Options derives the selectable filter values. When regions are given,
	// the sub-region list is restricted to those regions.
	Options(regions []string) domain.FilterOptions

	// Stats computes the catalog headline metrics.
	Stats() domain.CatalogStats
}
