package domain

import "time"

// ClassSlot is a weekly recurring window reserved for instructor-led
// sessions instead of ordinary booking. Static configuration.
type ClassSlot struct {
	Key       string       `json:"key"`
	Label     string       `json:"label"`
	DayOfWeek time.Weekday `json:"day_of_week"`
	StartTime string       `json:"start_time"` // HH:MM
	EndTime   string       `json:"end_time"`   // HH:MM, exclusive
}

// SessionInstance is one concrete calendar-date occurrence of a ClassSlot.
// Derived, never stored.
type SessionInstance struct {
	Slot       ClassSlot `json:"slot"`
	Date       string    `json:"date"` // YYYY-MM-DD
	HasStarted bool      `json:"has_started"`
}

// SignUp enrolls one actor in one session instance.
type SignUp struct {
	ID           string    `json:"id"`
	ActorID      string    `json:"actor_id"`
	ActorName    string    `json:"actor_name"`
	ActorEmail   string    `json:"actor_email"`
	SlotKey      string    `json:"slot_key"`
	Date         string    `json:"date"` // YYYY-MM-DD
	Experimental bool      `json:"experimental"`
	SignedUpAt   time.Time `json:"signed_up_at"`
}
