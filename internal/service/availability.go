package service

import (
	"context"
	"fmt"
	"time"

	"github.com/arena-klein/courtbooker/internal/domain"
	"github.com/arena-klein/courtbooker/internal/schedule"
	"github.com/arena-klein/courtbooker/internal/service/ports"
)

// AvailabilityService derives per-slot court availability from the full
// current booking set; all classification is done by the pure schedule
// package.
type AvailabilityService struct {
	bookingRepo ports.BookingRepo
	facility    domain.Facility
	loc         *time.Location
}

func NewAvailabilityService(bookingRepo ports.BookingRepo, facility domain.Facility, loc *time.Location) *AvailabilityService {
	return &AvailabilityService{
		bookingRepo: bookingRepo,
		facility:    facility,
		loc:         loc,
	}
}

func (s *AvailabilityService) Courts() []domain.Court {
	return s.facility.Courts
}

// DaySlots returns the court and its ordered slot states for one date.
func (s *AvailabilityService) DaySlots(ctx context.Context, courtID, date string, now time.Time) (domain.Court, []schedule.SlotStatus, error) {
	court, err := s.facility.CourtByID(courtID)
	if err != nil {
		return domain.Court{}, nil, fmt.Errorf("check court: %w", err)
	}

	if !dateRe.MatchString(date) {
		return domain.Court{}, nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return domain.Court{}, nil, fmt.Errorf("list bookings: %w", err)
	}

	slots, err := schedule.DaySlots(court, date, s.facility.SlotTimes, s.facility.ClassSlots, bookings, now, s.loc)
	if err != nil {
		return domain.Court{}, nil, err
	}

	return court, slots, nil
}
