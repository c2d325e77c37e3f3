package domain

import "time"

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CatalogStats is the headline metric row of the overview page.
type CatalogStats struct {
	Facilities      int       `json:"facilities"`
	FreePlaces      int       `json:"free_places"`
	FreeNow         int       `json:"free_now"`
	Cities          int       `json:"cities"`
	Regions         int       `json:"regions"`
	CatalogLoadedAt time.Time `json:"catalog_loaded_at"`
}

// FilterOptions are the selectable values for the multi-select controls,
// derived from the catalog. SubRegions is restricted to the selected
// regions when any are chosen.
type FilterOptions struct {
	Regions        []string `json:"bundeslaender"`
	SubRegions     []string `json:"landkreise"`
	CareTypes      []string `json:"betreuungsarten"`
	CareForms      []string `json:"hilfeformen"`
	IntakeTypes    []string `json:"aufnahmearten"`
	SchoolForms    []string `json:"schulformen"`
	FacilityTypes  []string `json:"einrichtungstypen"`
	Operators      []string `json:"traeger"`
	ContactWindows []string `json:"kontaktzeitfenster"`
	Genders        []string `json:"geschlechter"`
	AgeMin         int      `json:"alter_min"`
	AgeMax         int      `json:"alter_max"`
	MaxMonths      int      `json:"verfuegbar_monate_max"`
}
