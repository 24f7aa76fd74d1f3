package domain

// Actor is the authenticated identity performing an action, resolved from
// the verified session token. The admin flag is not part of the token: it
// lives in the admins side table and is re-resolved per mutation.
type Actor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Event is a change notification pushed to live subscribers after a
// successful mutation. Consumers re-read state; the event carries no
// authoritative payload.
type Event struct {
	Entity string `json:"entity"` // "booking" | "signup"
	Action string `json:"action"` // "created" | "updated" | "cancelled"
	ID     string `json:"id"`
}

const (
	EntityBooking = "booking"
	EntitySignUp  = "signup"

	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionCancelled = "cancelled"
)
