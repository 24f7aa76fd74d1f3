package domain

import "time"

// Booking holds a court for one fixed slot. At most one booking may exist
// per (CourtID, Date, Time); the bookings table enforces this with a
// composite unique index.
type Booking struct {
	ID        string    `json:"id"`
	CourtID   string    `json:"court_id"`
	CourtName string    `json:"court_name"`
	CourtType CourtType `json:"court_type"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"` // HH:MM, from the fixed slot enumeration
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	// OnBehalfOf names the person the booking is for when an admin books
	// for someone else.
	OnBehalfOf string    `json:"on_behalf_of,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateBookingInput struct {
	CourtID    string
	Date       string
	Time       string
	OnBehalfOf string
}

type UpdateBookingInput struct {
	Date string
	Time string
	// OnBehalfOf: nil leaves the field untouched, empty string clears it.
	OnBehalfOf *string
}
