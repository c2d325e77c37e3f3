package dto

// InquiryRequest is a contact inquiry addressed to one facility. Name,
// email and message are the required fields of the form.
type InquiryRequest struct {
	FacilityID   int     `json:"facility_id" validate:"required,min=1"`
	Name         string  `json:"name" validate:"required"`
	Organisation *string `json:"organisation,omitempty"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        *string `json:"telefon,omitempty"`
	Message      string  `json:"nachricht" validate:"required"`
	RequesterAge *int    `json:"alter_jugendlicher,omitempty" validate:"omitempty,min=6,max=25"`
}

// SelectFacilityRequest names the facility whose detail page to open.
type SelectFacilityRequest struct {
	FacilityID int `json:"facility_id" validate:"required,min=1"`
}
