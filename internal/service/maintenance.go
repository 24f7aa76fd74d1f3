package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/arena-klein/courtbooker/internal/schedule"
	"github.com/arena-klein/courtbooker/internal/service/ports"
)

// MaintenanceService removes bookings and sign-ups whose dates fell out of
// the retention window. Driven by the scheduler.
type MaintenanceService struct {
	bookingRepo   ports.BookingRepo
	signUpRepo    ports.SignUpRepo
	retentionDays int
	loc           *time.Location
	logger        logger.Logger
}

func NewMaintenanceService(
	bookingRepo ports.BookingRepo,
	signUpRepo ports.SignUpRepo,
	retentionDays int,
	loc *time.Location,
	logger logger.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		bookingRepo:   bookingRepo,
		signUpRepo:    signUpRepo,
		retentionDays: retentionDays,
		loc:           loc,
		logger:        logger,
	}
}

func (s *MaintenanceService) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := time.Now().In(s.loc).AddDate(0, 0, -s.retentionDays).Format(schedule.DateLayout)

	bookings, err := s.bookingRepo.PurgeBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge bookings: %w", err)
	}

	signUps, err := s.signUpRepo.PurgeBefore(ctx, cutoff)
	if err != nil {
		return bookings, fmt.Errorf("purge sign-ups: %w", err)
	}

	if bookings+signUps > 0 {
		s.logger.Info("expired records purged",
			logger.String("cutoff", cutoff),
			logger.Int64("bookings", bookings),
			logger.Int64("sign_ups", signUps),
		)
	}

	return bookings + signUps, nil
}
