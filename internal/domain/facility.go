package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/placement-microservice/internal/pkg/utils"
)

// Gender categories accepted by a facility. "offen" takes everyone.
const (
	GenderGirls = "Mädchen"
	GenderBoys  = "Jungen"
	GenderOpen  = "offen"
	GenderOther = "divers"
)

// Operator categories (Träger).
const (
	OperatorPublic    = "öffentlich"
	OperatorNonProfit = "frei gemeinnützig"
	OperatorPrivate   = "privat"
)

const dateLayout = "2006-01-02"

// Date is a calendar day. It marshals as "2006-01-02" in JSON and scans
// from DATE columns.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(*s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", *s, err)
	}
	*d = parsed
	return nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{Time: v}
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// StringList is a tag set stored as JSON in the database.
type StringList []string

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Contains reports whether the list holds s.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// Overlaps reports whether any value of the list is among selection.
func (l StringList) Overlaps(selection []string) bool {
	for _, s := range selection {
		if l.Contains(s) {
			return true
		}
	}
	return false
}

// Facility is one youth-care placement entry of the catalog. JSON and db
// tags follow the German field names of the seed dataset.
type Facility struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	// Location
	City      string  `json:"stadt" db:"stadt"`
	Region    string  `json:"bundesland" db:"bundesland"`
	SubRegion *string `json:"landkreis,omitempty" db:"landkreis"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Address   string  `json:"adresse" db:"adresse"`

	// Capacity and status
	FreePlaces int  `json:"freie_plaetze" db:"freie_plaetze"`
	FreeNow    bool `json:"freie_plaetze_jetzt" db:"freie_plaetze_jetzt"`
	Reservable bool `json:"reservierbar" db:"reservierbar"`

	// Temporal availability
	AvailableFrom   Date `json:"verfuegbar_ab" db:"verfuegbar_ab"`
	AvailableMonths int  `json:"verfuegbar_monate" db:"verfuegbar_monate"`

	// Demographics
	AgeMin int    `json:"alter_min" db:"alter_min"`
	AgeMax int    `json:"alter_max" db:"alter_max"`
	Gender string `json:"geschlecht" db:"geschlecht"`

	// Care attributes
	CareType     string     `json:"betreuungsart" db:"betreuungsart"`
	CareForms    StringList `json:"hilfeform" db:"hilfeform"`
	IntakeTypes  StringList `json:"aufnahmeart" db:"aufnahmeart"`
	RoomSizeSqm  *float64   `json:"zimmergroesse_qm,omitempty" db:"zimmergroesse_qm"`
	FacilityType string     `json:"einrichtungstyp" db:"einrichtungstyp"`
	Operator     string     `json:"traeger" db:"traeger"`

	// Capability flags
	CrisisSuitable        bool       `json:"inobhutnahme_geeignet" db:"inobhutnahme_geeignet"`
	CrisisPlace           bool       `json:"krisenplatz" db:"krisenplatz"`
	EmergencyIntake24h    bool       `json:"notaufnahme_24_7" db:"notaufnahme_24_7"`
	SinglePlacement       bool       `json:"einzelplatz_moeglich" db:"einzelplatz_moeglich"`
	SmallGroup            bool       `json:"kleingruppe" db:"kleingruppe"`
	NoViolenceHistory     bool       `json:"keine_gewaltproblematik" db:"keine_gewaltproblematik"`
	NoAddictionHistory    bool       `json:"keine_suchtthematik" db:"keine_suchtthematik"`
	SchoolPossible        bool       `json:"schulbesuch_moeglich" db:"schulbesuch_moeglich"`
	SchoolForms           StringList `json:"schulform_unterstuetzung" db:"schulform_unterstuetzung"`
	PetsAllowed           bool       `json:"haustiere_erlaubt" db:"haustiere_erlaubt"`
	TraumaPedagogy        bool       `json:"traumapaedagogik" db:"traumapaedagogik"`
	PsychiatricCare       bool       `json:"psychiatrienahe_betreuung" db:"psychiatrienahe_betreuung"`
	Autism                bool       `json:"autismus" db:"autismus"`
	IntellectualDisability bool      `json:"geistige_behinderung" db:"geistige_behinderung"`
	PhysicalDisability    bool       `json:"koerperliche_einschraenkungen" db:"koerperliche_einschraenkungen"`
	GermanRequired        bool       `json:"deutschkenntnisse_erforderlich" db:"deutschkenntnisse_erforderlich"`
	LanguageSupport       bool       `json:"sprachunterstuetzung" db:"sprachunterstuetzung"`
	OneToOne              bool       `json:"eins_zu_eins_moeglich" db:"eins_zu_eins_moeglich"`
	NightStandby          bool       `json:"nachtbereitschaft" db:"nachtbereitschaft"`
	NightShift            bool       `json:"nachtdienst" db:"nachtdienst"`
	DeEscalation          bool       `json:"deeskalationserfahrung" db:"deeskalationserfahrung"`

	// Placement-confirmation SLAs
	Confirm24h bool `json:"platz_bestaetigt_24h" db:"platz_bestaetigt_24h"`
	Confirm3d  bool `json:"platz_bestaetigt_3d" db:"platz_bestaetigt_3d"`
	Confirm7d  bool `json:"platz_bestaetigt_7d" db:"platz_bestaetigt_7d"`

	// Contact
	ContactWindow *string `json:"kontaktzeitfenster,omitempty" db:"kontaktzeitfenster"`
	ContactEmail  string  `json:"kontakt_email" db:"kontakt_email"`
	ContactPhone  string  `json:"kontakt_telefon" db:"kontakt_telefon"`

	ImageURL    string `json:"bild_url" db:"bild_url"`
	Description string `json:"beschreibung" db:"beschreibung"`
}

// Validate enforces the load-time invariants of a catalog record. The
// catalog cannot be served with a record failing any of these.
func (f *Facility) Validate() error {
	if f.ID <= 0 {
		return fmt.Errorf("facility id must be positive, got %d", f.ID)
	}
	if f.Name == "" {
		return fmt.Errorf("facility %d: name is required", f.ID)
	}
	if f.City == "" {
		return fmt.Errorf("facility %d: stadt is required", f.ID)
	}
	if f.Region == "" {
		return fmt.Errorf("facility %d: bundesland is required", f.ID)
	}
	if !utils.ValidateCoordinates(f.Latitude, f.Longitude) {
		return fmt.Errorf("facility %d: coordinates out of range (%f, %f)", f.ID, f.Latitude, f.Longitude)
	}
	if f.FreePlaces < 0 {
		return fmt.Errorf("facility %d: freie_plaetze must be non-negative, got %d", f.ID, f.FreePlaces)
	}
	if f.AgeMin > f.AgeMax {
		return fmt.Errorf("facility %d: alter_min %d exceeds alter_max %d", f.ID, f.AgeMin, f.AgeMax)
	}
	if f.AvailableMonths < 1 {
		return fmt.Errorf("facility %d: verfuegbar_monate must be at least 1, got %d", f.ID, f.AvailableMonths)
	}
	if f.AvailableFrom.IsZero() {
		return fmt.Errorf("facility %d: verfuegbar_ab is required", f.ID)
	}
	if f.ContactEmail == "" {
		return fmt.Errorf("facility %d: kontakt_email is required", f.ID)
	}
	return nil
}

// SubRegionName returns the landkreis or "" when the record has none.
func (f *Facility) SubRegionName() string {
	if f.SubRegion == nil {
		return ""
	}
	return *f.SubRegion
}

// ContactWindowName returns the contact time window or "" when unset.
func (f *Facility) ContactWindowName() string {
	if f.ContactWindow == nil {
		return ""
	}
	return *f.ContactWindow
}
