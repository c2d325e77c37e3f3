package dto

import (
	"github.com/google/uuid"

	"github.com/placement-microservice/internal/domain"
)

// FacilitySummary carries the card/map/table fields of one search result.
type FacilitySummary struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	City           string      `json:"stadt"`
	Region         string      `json:"bundesland"`
	SubRegion      *string     `json:"landkreis,omitempty"`
	Latitude       float64     `json:"latitude"`
	Longitude      float64     `json:"longitude"`
	CareType       string      `json:"betreuungsart"`
	FreePlaces     int         `json:"freie_plaetze"`
	FreeNow        bool        `json:"freie_plaetze_jetzt"`
	CrisisSuitable bool        `json:"inobhutnahme_geeignet"`
	AgeMin         int         `json:"alter_min"`
	AgeMax         int         `json:"alter_max"`
	AvailableFrom  domain.Date `json:"verfuegbar_ab"`
	AvailableMonths int        `json:"verfuegbar_monate"`
	DistanceKm     *float64    `json:"distance_km,omitempty"`
}

// SearchResponse is the filtered, optionally distance-sorted result set.
type SearchResponse struct {
	Results []FacilitySummary `json:"results"`
	Total   int               `json:"total"`
}

// ConvertFacilitySummary maps one pipeline result to its summary DTO.
func ConvertFacilitySummary(r domain.FilterResult) FacilitySummary {
	return FacilitySummary{
		ID:              r.ID,
		Name:            r.Name,
		City:            r.City,
		Region:          r.Region,
		SubRegion:       r.SubRegion,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		CareType:        r.CareType,
		FreePlaces:      r.FreePlaces,
		FreeNow:         r.FreeNow,
		CrisisSuitable:  r.CrisisSuitable,
		AgeMin:          r.AgeMin,
		AgeMax:          r.AgeMax,
		AvailableFrom:   r.AvailableFrom,
		AvailableMonths: r.AvailableMonths,
		DistanceKm:      r.DistanceKm,
	}
}

// FacilityDetailResponse is the full record shown on the detail page.
type FacilityDetailResponse struct {
	Facility domain.Facility `json:"facility"`
}

// NavigationResponse reports the session's view state after a transition.
// Found is false when a detail selection did not resolve and the session
// fell back to the overview.
type NavigationResponse struct {
	State domain.NavigationState `json:"state"`
	Found bool                   `json:"found"`
}

// InquiryAckResponse acknowledges an accepted inquiry. No message is
// actually dispatched.
type InquiryAckResponse struct {
	InquiryID    uuid.UUID `json:"inquiry_id"`
	FacilityID   int       `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	Status       string    `json:"status"`
	Message      string    `json:"message"`
}
