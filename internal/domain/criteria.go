package domain

import (
	"sort"

	"github.com/placement-microservice/internal/pkg/utils"
)

// Placement-confirmation tiers selectable in the criteria. Empty means no
// preference.
const (
	ConfirmWithin24h = "24h"
	ConfirmWithin3d  = "3d"
	ConfirmWithin7d  = "7d"
)

// RadiusCriteria is an active reference-point search.
type RadiusCriteria struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	RadiusKm float64 `json:"radius_km"`
}

// AgeRange is a requested age band. A facility qualifies when its accepted
// band overlaps the requested one at all.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterCriteria is an immutable snapshot of every filter control. A field
// left at its zero value contributes no constraint.
type FilterCriteria struct {
	// Availability
	FreeNow     bool `json:"freie_plaetze_jetzt,omitempty"`
	AvailableBy Date `json:"verfuegbar_ab,omitempty"`
	MinMonths   int  `json:"verfuegbar_monate,omitempty"`

	// Location
	Regions    []string        `json:"bundeslaender,omitempty"`
	SubRegions []string        `json:"landkreise,omitempty"`
	Radius     *RadiusCriteria `json:"umkreis,omitempty"`

	// Demographics
	Ages    *AgeRange `json:"alter,omitempty"`
	Genders []string  `json:"geschlechter,omitempty"`

	// Intake
	CrisisSuitable bool     `json:"inobhutnahme_geeignet,omitempty"`
	CrisisPlace    bool     `json:"krisenplatz,omitempty"`
	IntakeTypes    []string `json:"aufnahmearten,omitempty"`

	// Care form and setting
	CareForms       []string `json:"hilfeformen,omitempty"`
	SinglePlacement bool     `json:"einzelplatz_moeglich,omitempty"`
	SmallGroup      bool     `json:"kleingruppe,omitempty"`

	// Exclusion and minimum criteria
	NoViolenceHistory  bool     `json:"keine_gewaltproblematik,omitempty"`
	NoAddictionHistory bool     `json:"keine_suchtthematik,omitempty"`
	SchoolPossible     bool     `json:"schulbesuch_moeglich,omitempty"`
	SchoolForms        []string `json:"schulformen,omitempty"`
	PetsAllowed        bool     `json:"haustiere_erlaubt,omitempty"`

	// Specialisations
	TraumaPedagogy         bool `json:"traumapaedagogik,omitempty"`
	PsychiatricCare        bool `json:"psychiatrienahe_betreuung,omitempty"`
	Autism                 bool `json:"autismus,omitempty"`
	IntellectualDisability bool `json:"geistige_behinderung,omitempty"`
	PhysicalDisability     bool `json:"koerperliche_einschraenkungen,omitempty"`
	GermanRequired         bool `json:"deutschkenntnisse_erforderlich,omitempty"`
	LanguageSupport        bool `json:"sprachunterstuetzung,omitempty"`

	// Staffing
	OneToOne     bool `json:"eins_zu_eins_moeglich,omitempty"`
	NightStandby bool `json:"nachtbereitschaft,omitempty"`
	NightShift   bool `json:"nachtdienst,omitempty"`
	DeEscalation bool `json:"deeskalationserfahrung,omitempty"`

	// Administrative
	FacilityTypes   []string `json:"einrichtungstypen,omitempty"`
	Operators       []string `json:"traeger,omitempty"`
	ConfirmationSLA string   `json:"platz_bestaetigt,omitempty"`
	ContactWindows  []string `json:"kontaktzeitfenster,omitempty"`
}

// Predicate is one independent filter criterion. Active reports whether the
// control is away from its neutral value; Match evaluates a single facility.
type Predicate struct {
	Key    string
	Active func(c *FilterCriteria) bool
	Match  func(c *FilterCriteria, f *Facility) bool
}

func flagPredicate(key string, active func(*FilterCriteria) bool, flag func(*Facility) bool) Predicate {
	return Predicate{
		Key:    key,
		Active: active,
		Match:  func(_ *FilterCriteria, f *Facility) bool { return flag(f) },
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// predicates is the registry of all criteria except the radius search, which
// needs distance annotation and is applied by FilterCatalog itself. Order
// follows the sidebar of the original directory UI.
var predicates = []Predicate{
	flagPredicate("freie_plaetze_jetzt",
		func(c *FilterCriteria) bool { return c.FreeNow },
		func(f *Facility) bool { return f.FreeNow }),
	{
		Key:    "verfuegbar_ab",
		Active: func(c *FilterCriteria) bool { return !c.AvailableBy.IsZero() },
		Match: func(c *FilterCriteria, f *Facility) bool {
			return !f.AvailableFrom.After(c.AvailableBy.Time)
		},
	},
	{
		Key:    "verfuegbar_monate",
		Active: func(c *FilterCriteria) bool { return c.MinMonths > 1 },
		Match: func(c *FilterCriteria, f *Facility) bool {
			return f.AvailableMonths >= c.MinMonths
		},
	},
	{
		Key:    "bundesland",
		Active: func(c *FilterCriteria) bool { return len(c.Regions) > 0 },
		Match: func(c *FilterCriteria, f *Facility) bool {
			return contains(c.Regions, f.Region)
		},
	},
	{
		Key:    "landkreis",
		Active: func(c *FilterCriteria) bool { return len(c.SubRegions) > 0 },
		Match: func(c *FilterCriteria, f *Facility) bool {
			return contains(c.SubRegions, f.SubRegionName())
		},
	},
	{
		Key:    "alter",
		Active: func(c *FilterCriteria) bool { return c.Ages != nil },
		Match: func(c *FilterCriteria, f *Facility) bool {
			// Overlap semantics, not containment.
			return f.AgeMax >= c.Ages.Min && f.AgeMin <= c.Ages.Max
		},
	},
	flagPredicate("inobhutnahme_geeignet",
		func(c *FilterCriteria) bool { return c.CrisisSuitable },
		func(f *Facility) bool { return f.CrisisSuitable }),
	flagPredicate("krisenplatz",
		func(c *FilterCriteria) bool { return c.CrisisPlace },
		func(f *Facility) bool { return f.CrisisPlace || f.EmergencyIntake24h }),
	{
		Key:    "aufnahmeart",
		Active: func(c *FilterCriteria) bool { return len(c.IntakeTypes) > 0 },
		Match: func(c *FilterCriteria, f *Facility) bool {
			return f.IntakeTypes.Overlaps(c.IntakeTypes)
		},
	},
	{
		Key:    "hilfeform",
		Active: func(c *FilterCriteria) bool { return len(c.CareForms) > 0 },
		Match: func(c *FilterCriteria, f *Facility) bool {
			return f.CareForms.Overlaps(c.CareForms)
		},
	},
	flagPredicate("einzelplatz_moeglich",
		func(c *FilterCriteria) bool { return c.SinglePlacement },
		func(f *Facility) bool { return f.SinglePlacement }),
	flagPredicate("kleingruppe",
		func(c *FilterCriteria) bool { return c.SmallGroup },
		func(f *Facility) bool { return f.SmallGroup }),
	{
		Key:    "geschlecht",
		Active: func(c *FilterCriteria) bool { return len(c.Genders) > 0 },
		Match: func(c *FilterCriteria, f *Facility) bool {
			return contains(c.Genders, f.Gender)
		},
	},
	flagPredicate("keine_gewaltproblematik",
		func(c *FilterCriteria) bool { return c.NoViolenceHistory },
		func(f *Facility) bool { return f.NoViolenceHistory }),
	flagPredicate("keine_suchtthematik",
		func(c *FilterCriteria) bool { return c.NoAddictionHistory },
		func(f *Facility) bool { return f.NoAddictionHistory }),
	flagPredicate("schulbesuch_moeglich",
		func(c *FilterCriteria) bool { return c.SchoolPossible },
		func(f *Facility) bool { return f.SchoolPossible }),
	{
		Key:    "schulform_unterstuetzung",
		Active: func(c *FilterCriteria) bool { return len(c.SchoolForms) > 0 },
		Match: func(c *FilterCriteria, f *Facility) bool {
			return f.SchoolForms.Overlaps(c.SchoolForms)
		},
	},
	flagPredicate("haustiere_erlaubt",
		func(c *FilterCriteria) bool { return c.PetsAllowed },
		func(f *Facility) bool { return f.PetsAllowed }),
	flagPredicate("traumapaedagogik",
		func(c *FilterCriteria) bool { return c.TraumaPedagogy },
		func(f *Facility) bool { return f.TraumaPedagogy }),
	flagPredicate("psychiatrienahe_betreuung",
		func(c *FilterCriteria) bool { return c.PsychiatricCare },
		func(f *Facility) bool { return f.PsychiatricCare }),
	flagPredicate("autismus",
		func(c *FilterCriteria) bool { return c.Autism },
		func(f *Facility) bool { return f.Autism }),
	flagPredicate("geistige_behinderung",
		func(c *FilterCriteria) bool { return c.IntellectualDisability },
		func(f *Facility) bool { return f.IntellectualDisability }),
	flagPredicate("koerperliche_einschraenkungen",
		func(c *FilterCriteria) bool { return c.PhysicalDisability },
		func(f *Facility) bool { return f.PhysicalDisability }),
	flagPredicate("deutschkenntnisse_erforderlich",
		func(c *FilterCriteria) bool { return c.GermanRequired },
		func(f *Facility) bool { return f.GermanRequired }),
	flagPredicate("sprachunterstuetzung",
		func(c *FilterCriteria) bool { return c.LanguageSupport },
		func(f *Facility) bool { return f.LanguageSupport }),
	flagPredicate("eins_zu_eins_moeglich",
		func(c *FilterCriteria) bool { return c.OneToOne },
		func(f *Facility) bool { return f.OneToOne }),
	flagPredicate("nachtbereitschaft",
		func(c *FilterCriteria) bool { return c.NightStandby },
		func(f *Facility) bool { return f.NightStandby }),
	flagPredicate("nachtdienst",
		func(c *FilterCriteria) bool { return c.NightShift },
		func(f *Facility) bool { return f.NightShift }),
	flagPredicate("deeskalationserfahrung",
		func(c *FilterCriteria) bool { return c.DeEscalation },
		func(f *Facility) bool { return f.DeEscalation }),
	{
		Key:    "einrichtungstyp",
		Active: func(c *FilterCriteria) bool { return len(c.FacilityTypes) > 0 },
		Match: func(c *FilterCriteria, f *Facility) bool {
			return contains(c.FacilityTypes, f.FacilityType)
		},
	},
	{
		Key:    "traeger",
		Active: func(c *FilterCriteria) bool { return len(c.Operators) > 0 },
		Match: func(c *FilterCriteria, f *Facility) bool {
			return contains(c.Operators, f.Operator)
		},
	},
	{
		Key: "platz_bestaetigt",
		Active: func(c *FilterCriteria) bool {
			switch c.ConfirmationSLA {
			case ConfirmWithin24h, ConfirmWithin3d, ConfirmWithin7d:
				return true
			}
			return false
		},
		Match: func(c *FilterCriteria, f *Facility) bool {
			switch c.ConfirmationSLA {
			case ConfirmWithin24h:
				return f.Confirm24h
			case ConfirmWithin3d:
				return f.Confirm3d
			case ConfirmWithin7d:
				return f.Confirm7d
			}
			return true
		},
	},
	{
		Key:    "kontaktzeitfenster",
		Active: func(c *FilterCriteria) bool { return len(c.ContactWindows) > 0 },
		Match: func(c *FilterCriteria, f *Facility) bool {
			return contains(c.ContactWindows, f.ContactWindowName())
		},
	},
}

// Matches reports whether f passes every active predicate of the registry.
// The radius criterion is not part of the registry; see FilterCatalog.
func (c *FilterCriteria) Matches(f *Facility) bool {
	for i := range predicates {
		p := &predicates[i]
		if p.Active(c) && !p.Match(c, f) {
			return false
		}
	}
	return true
}

// ActiveKeys lists the registry keys of all active criteria, plus "umkreis"
// when a radius search is set.
func (c *FilterCriteria) ActiveKeys() []string {
	var keys []string
	for i := range predicates {
		if predicates[i].Active(c) {
			keys = append(keys, predicates[i].Key)
		}
	}
	if c.Radius != nil {
		keys = append(keys, "umkreis")
	}
	return keys
}

// FilterResult is one catalog entry that passed all active criteria,
// annotated with the distance to the reference point when a radius search
// was active.
type FilterResult struct {
	Facility
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// FilterCatalog reduces the catalog to the entries matching every active
// criterion in a single pass. With a radius search active each surviving
// entry is annotated with its distance, entries beyond the radius are
// dropped and the result is sorted ascending by distance; ties keep the
// original catalog order. Without a radius search the catalog order is
// preserved and no distance is set. The catalog itself is never modified.
func FilterCatalog(catalog []Facility, c FilterCriteria) []FilterResult {
	results := make([]FilterResult, 0, len(catalog))

	for i := range catalog {
		f := &catalog[i]
		if !c.Matches(f) {
			continue
		}

		result := FilterResult{Facility: catalog[i]}
		if c.Radius != nil {
			d := utils.HaversineDistance(c.Radius.Lat, c.Radius.Lon, f.Latitude, f.Longitude)
			if d > c.Radius.RadiusKm {
				continue
			}
			result.DistanceKm = &d
		}
		results = append(results, result)
	}

	if c.Radius != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return *results[i].DistanceKm < *results[j].DistanceKm
		})
	}

	return results
}
