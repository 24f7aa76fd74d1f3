package domain

import "errors"

var (
	ErrCourtNotFound     = errors.New("court not found")
	ErrClassSlotNotFound = errors.New("class slot not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSignUpNotFound    = errors.New("sign-up not found")
)

var (
	ErrSlotTaken       = errors.New("slot already taken")
	ErrAlreadySignedUp = errors.New("already signed up for this session")
	ErrClassFull       = errors.New("class session is full")
)

var (
	ErrForbidden  = errors.New("not allowed")
	ErrValidation = errors.New("validation error")
)
