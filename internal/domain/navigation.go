package domain

// NavigationPage names the two views of the directory.
const (
	PageOverview = "overview"
	PageDetail   = "detail"
)

// NavigationState is the current view of one session: either the overview
// list or the detail page of a single facility.
type NavigationState struct {
	Page       string `json:"page"`
	FacilityID int    `json:"facility_id,omitempty"`
}

// Overview returns the initial navigation state.
func Overview() NavigationState {
	return NavigationState{Page: PageOverview}
}

// Detail returns the state showing facility id.
func Detail(id int) NavigationState {
	return NavigationState{Page: PageDetail, FacilityID: id}
}

// IsDetail reports whether the state shows a facility detail page.
func (s NavigationState) IsDetail() bool {
	return s.Page == PageDetail
}
