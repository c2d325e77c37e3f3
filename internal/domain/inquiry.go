package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names for the inquiry notification pipeline.
const (
	StreamInquirySubmitted = "stream:inquiry:submitted"
	StreamInquiryNotified  = "stream:inquiry:notified"
)

// Inquiry is a contact request addressed to one facility. Submission is an
// acknowledgment only; no message leaves the system.
type Inquiry struct {
	FacilityID   int     `json:"facility_id"`
	Name         string  `json:"name"`
	Organisation *string `json:"organisation,omitempty"`
	Email        string  `json:"email"`
	Phone        *string `json:"telefon,omitempty"`
	Message      string  `json:"nachricht"`
	RequesterAge *int    `json:"alter_jugendlicher,omitempty"`
}

// InquiryEvent is the stream payload handed to the notification worker.
type InquiryEvent struct {
	InquiryID    uuid.UUID `json:"inquiry_id"`
	FacilityID   int       `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	ContactEmail string    `json:"contact_email"`
	Inquiry      Inquiry   `json:"inquiry"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// InquiryNotifiedEvent reports the outcome of a notification attempt.
type InquiryNotifiedEvent struct {
	InquiryID  uuid.UUID `json:"inquiry_id"`
	FacilityID int       `json:"facility_id"`
	Error      string    `json:"error,omitempty"`
}

// StreamMessage is one raw message read from a Redis stream.
type StreamMessage struct {
	ID   string
	Data string
}
