package domain

type CourtType string

const (
	CourtTypeCovered   CourtType = "covered"
	CourtTypeUncovered CourtType = "uncovered"
)

func (t CourtType) Valid() bool {
	return t == CourtTypeCovered || t == CourtTypeUncovered
}

// Court is static facility configuration, not user-mutable.
type Court struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        CourtType `json:"type"`
	Description string    `json:"description"`

	// FullyBooked blocks the whole court regardless of individual slots,
	// with an operator-provided note shown to clients.
	FullyBooked     bool   `json:"fully_booked"`
	FullyBookedNote string `json:"fully_booked_note,omitempty"`
}
