package dto

type CreateBookingRequest struct {
	CourtID    string `json:"court_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	OnBehalfOf string `json:"on_behalf_of"`
}

type UpdateBookingRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
	// Absent leaves the stored value untouched, empty string clears it.
	OnBehalfOf *string `json:"on_behalf_of"`
}

type SignUpRequest struct {
	Date         string `json:"date" binding:"required"`
	Experimental bool   `json:"experimental"`
}
