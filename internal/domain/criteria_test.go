package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placement-microservice/internal/domain"
)

func strPtr(s string) *string { return &s }

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func testCatalog(t *testing.T) []domain.Facility {
	t.Helper()
	base := func(id int, name, city, region string, lat, lon float64) domain.Facility {
		return domain.Facility{
			ID:              id,
			Name:            name,
			City:            city,
			Region:          region,
			Latitude:        lat,
			Longitude:       lon,
			Address:         "Musterstraße 1",
			FreePlaces:      2,
			AvailableFrom:   mustDate(t, "2026-01-15"),
			AvailableMonths: 6,
			AgeMin:          10,
			AgeMax:          17,
			Gender:          domain.GenderOpen,
			CareType:        "Wohngruppe",
			CareForms:       domain.StringList{"stationär"},
			IntakeTypes:     domain.StringList{"mittel"},
			FacilityType:    "Jugendwohngruppe",
			Operator:        domain.OperatorNonProfit,
			ContactEmail:    "info@example.de",
		}
	}

	berlin := base(1, "Haus Spree", "Berlin", "Berlin", 52.5200, 13.4050)
	berlin.FreeNow = true
	berlin.CrisisSuitable = true
	berlin.CrisisPlace = true
	berlin.SchoolForms = domain.StringList{"Gymnasium", "Realschule"}
	berlin.ContactWindow = strPtr("werktags 9-17 Uhr")
	berlin.Confirm24h = true

	potsdam := base(2, "Haus Havel", "Potsdam", "Brandenburg", 52.3906, 13.0645)
	potsdam.SubRegion = strPtr("Potsdam-Mittelmark")
	potsdam.AgeMin = 12
	potsdam.AgeMax = 17
	potsdam.Gender = domain.GenderGirls
	potsdam.EmergencyIntake24h = true
	potsdam.PetsAllowed = true

	muenchen := base(3, "Haus Isar", "München", "Bayern", 48.1351, 11.5820)
	muenchen.FreeNow = true
	muenchen.AvailableFrom = mustDate(t, "2026-06-01")
	muenchen.AvailableMonths = 12
	muenchen.TraumaPedagogy = true
	muenchen.IntakeTypes = domain.StringList{"langfristig"}
	muenchen.CareForms = domain.StringList{"intensivpädagogisch"}
	muenchen.Confirm7d = true

	hamburg := base(4, "Haus Elbe", "Hamburg", "Hamburg", 53.5511, 9.9937)
	hamburg.AgeMin = 6
	hamburg.AgeMax = 12
	hamburg.Operator = domain.OperatorPublic
	hamburg.NightShift = true

	koeln := base(5, "Haus Rhein", "Köln", "Nordrhein-Westfalen", 50.9375, 6.9603)
	koeln.SubRegion = strPtr("Rhein-Erft-Kreis")
	koeln.AvailableMonths = 3
	koeln.OneToOne = true
	koeln.ContactWindow = strPtr("täglich 8-20 Uhr")

	return []domain.Facility{berlin, potsdam, muenchen, hamburg, koeln}
}

func ids(results []domain.FilterResult) []int {
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}

func TestFilterCatalog_NeutralCriteriaIsIdentity(t *testing.T) {
	catalog := testCatalog(t)

	results := domain.FilterCatalog(catalog, domain.FilterCriteria{})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(results))
	for _, r := range results {
		assert.Nil(t, r.DistanceKm)
	}
}

func TestFilterCatalog_AvailabilityNow(t *testing.T) {
	// 5 facilities, 2 with freie_plaetze_jetzt=true.
	catalog := testCatalog(t)

	results := domain.FilterCatalog(catalog, domain.FilterCriteria{FreeNow: true})

	assert.Equal(t, []int{1, 3}, ids(results))
}

func TestFilterCatalog_AvailableByDate(t *testing.T) {
	catalog := testCatalog(t)

	results := domain.FilterCatalog(catalog, domain.FilterCriteria{
		AvailableBy: mustDate(t, "2026-02-01"),
	})

	// München only becomes available in June.
	assert.Equal(t, []int{1, 2, 4, 5}, ids(results))
}

func TestFilterCatalog_MinimumDuration(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("slider above neutral", func(t *testing.T) {
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{MinMonths: 6})
		assert.Equal(t, []int{1, 2, 3, 4}, ids(results))
	})

	t.Run("slider at 1 is neutral", func(t *testing.T) {
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{MinMonths: 1})
		assert.Len(t, results, 5)
	})
}

func TestFilterCatalog_RegionAndSubRegion(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("region membership", func(t *testing.T) {
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{
			Regions: []string{"Berlin", "Bayern"},
		})
		assert.Equal(t, []int{1, 3}, ids(results))
	})

	t.Run("sub-region membership ignores records without landkreis", func(t *testing.T) {
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{
			SubRegions: []string{"Rhein-Erft-Kreis"},
		})
		assert.Equal(t, []int{5}, ids(results))
	})
}

func TestFilterCatalog_AgeOverlap(t *testing.T) {
	facility := domain.Facility{ID: 1, AgeMin: 12, AgeMax: 17}

	t.Run("intersecting band matches", func(t *testing.T) {
		c := domain.FilterCriteria{Ages: &domain.AgeRange{Min: 16, Max: 20}}
		assert.True(t, c.Matches(&facility))
	})

	t.Run("disjoint band does not match", func(t *testing.T) {
		c := domain.FilterCriteria{Ages: &domain.AgeRange{Min: 18, Max: 25}}
		assert.False(t, c.Matches(&facility))
	})

	t.Run("containment is not required", func(t *testing.T) {
		c := domain.FilterCriteria{Ages: &domain.AgeRange{Min: 6, Max: 25}}
		assert.True(t, c.Matches(&facility))
	})
}

func TestFilterCatalog_CrisisPredicates(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("inobhutnahme", func(t *testing.T) {
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{CrisisSuitable: true})
		assert.Equal(t, []int{1}, ids(results))
	})

	t.Run("krisenplatz or notaufnahme 24/7", func(t *testing.T) {
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{CrisisPlace: true})
		assert.Equal(t, []int{1, 2}, ids(results))
	})
}

func TestFilterCatalog_TagOverlap(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("intake types", func(t *testing.T) {
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{
			IntakeTypes: []string{"langfristig", "kurzfristig"},
		})
		assert.Equal(t, []int{3}, ids(results))
	})

	t.Run("care forms", func(t *testing.T) {
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{
			CareForms: []string{"stationär"},
		})
		assert.Equal(t, []int{1, 2, 4, 5}, ids(results))
	})

	t.Run("school forms any-overlap", func(t *testing.T) {
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{
			SchoolForms: []string{"Realschule"},
		})
		assert.Equal(t, []int{1}, ids(results))
	})
}

func TestFilterCatalog_BooleanFlags(t *testing.T) {
	catalog := testCatalog(t)

	cases := []struct {
		name     string
		criteria domain.FilterCriteria
		want     []int
	}{
		{"pets allowed", domain.FilterCriteria{PetsAllowed: true}, []int{2}},
		{"trauma pedagogy", domain.FilterCriteria{TraumaPedagogy: true}, []int{3}},
		{"night shift", domain.FilterCriteria{NightShift: true}, []int{4}},
		{"one to one", domain.FilterCriteria{OneToOne: true}, []int{5}},
		{"gender membership", domain.FilterCriteria{Genders: []string{domain.GenderGirls}}, []int{2}},
		{"operator membership", domain.FilterCriteria{Operators: []string{domain.OperatorPublic}}, []int{4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(domain.FilterCatalog(catalog, tc.criteria)))
		})
	}
}

func TestFilterCatalog_ConfirmationSLA(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("24h tier", func(t *testing.T) {
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{
			ConfirmationSLA: domain.ConfirmWithin24h,
		})
		assert.Equal(t, []int{1}, ids(results))
	})

	t.Run("7d tier", func(t *testing.T) {
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{
			ConfirmationSLA: domain.ConfirmWithin7d,
		})
		assert.Equal(t, []int{3}, ids(results))
	})

	t.Run("no preference applies no constraint", func(t *testing.T) {
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{ConfirmationSLA: ""})
		assert.Len(t, results, 5)
	})

	t.Run("unknown tier applies no constraint", func(t *testing.T) {
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{ConfirmationSLA: "sofort"})
		assert.Len(t, results, 5)
	})
}

func TestFilterCatalog_ContactWindow(t *testing.T) {
	catalog := testCatalog(t)

	results := domain.FilterCatalog(catalog, domain.FilterCriteria{
		ContactWindows: []string{"täglich 8-20 Uhr"},
	})

	assert.Equal(t, []int{5}, ids(results))
}

func TestFilterCatalog_RadiusSearch(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("annotates and filters by distance", func(t *testing.T) {
		// Reference point Berlin, 50 km: Berlin itself plus Potsdam.
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{
			Radius: &domain.RadiusCriteria{Lat: 52.5200, Lon: 13.4050, RadiusKm: 50},
		})

		assert.Equal(t, []int{1, 2}, ids(results))
		for _, r := range results {
			assert.NotNil(t, r.DistanceKm)
		}
		assert.InDelta(t, 0.0, *results[0].DistanceKm, 0.1)
		assert.InDelta(t, 29.0, *results[1].DistanceKm, 3.0)
	})

	t.Run("sorts ascending by distance", func(t *testing.T) {
		// From Munich everything within 600 km, nearest first.
		results := domain.FilterCatalog(catalog, domain.FilterCriteria{
			Radius: &domain.RadiusCriteria{Lat: 48.1351, Lon: 11.5820, RadiusKm: 600},
		})

		require.NotEmpty(t, results)
		assert.Equal(t, 3, results[0].ID)
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, *results[i-1].DistanceKm, *results[i].DistanceKm)
		}
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		a := domain.Facility{ID: 10, Latitude: 50.0, Longitude: 9.0}
		b := domain.Facility{ID: 11, Latitude: 50.0, Longitude: 11.0}

		// Reference point equidistant between both longitudes.
		results := domain.FilterCatalog([]domain.Facility{a, b}, domain.FilterCriteria{
			Radius: &domain.RadiusCriteria{Lat: 50.0, Lon: 10.0, RadiusKm: 200},
		})

		require.Len(t, results, 2)
		assert.Equal(t, []int{10, 11}, ids(results))
	})
}

func TestFilterCatalog_Idempotent(t *testing.T) {
	catalog := testCatalog(t)
	criteria := domain.FilterCriteria{
		FreeNow: true,
		Ages:    &domain.AgeRange{Min: 10, Max: 16},
	}

	first := domain.FilterCatalog(catalog, criteria)

	again := make([]domain.Facility, len(first))
	for i, r := range first {
		again[i] = r.Facility
	}
	second := domain.FilterCatalog(again, criteria)

	assert.Equal(t, ids(first), ids(second))
}

func TestFilterCatalog_DoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog(t)
	before := ids(domain.FilterCatalog(catalog, domain.FilterCriteria{}))

	domain.FilterCatalog(catalog, domain.FilterCriteria{
		FreeNow: true,
		Radius:  &domain.RadiusCriteria{Lat: 52.52, Lon: 13.405, RadiusKm: 10},
	})

	after := ids(domain.FilterCatalog(catalog, domain.FilterCriteria{}))
	assert.Equal(t, before, after)
}

func TestFilterCriteria_ActiveKeys(t *testing.T) {
	c := domain.FilterCriteria{
		FreeNow: true,
		Regions: []string{"Berlin"},
		Radius:  &domain.RadiusCriteria{Lat: 52.52, Lon: 13.4, RadiusKm: 100},
	}

	keys := c.ActiveKeys()

	assert.ElementsMatch(t, []string{"freie_plaetze_jetzt", "bundesland", "umkreis"}, keys)
	assert.Empty(t, (&domain.FilterCriteria{}).ActiveKeys())
}
