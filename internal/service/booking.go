package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/arena-klein/courtbooker/internal/domain"
	"github.com/arena-klein/courtbooker/internal/schedule"
	"github.com/arena-klein/courtbooker/internal/service/ports"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	adminRepo   ports.AdminRepo
	notifier    ports.BookingNotifier
	publisher   ports.EventPublisher
	facility    domain.Facility
	loc         *time.Location
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	adminRepo ports.AdminRepo,
	notifier ports.BookingNotifier,
	publisher ports.EventPublisher,
	facility domain.Facility,
	loc *time.Location,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		adminRepo:   adminRepo,
		notifier:    notifier,
		publisher:   publisher,
		facility:    facility,
		loc:         loc,
		logger:      logger,
	}
}

// Create reserves one slot for the actor. Conflicts are decided by the
// storage uniqueness constraint, not by a pre-check, so two concurrent
// callers cannot both succeed. Booking on behalf of someone else requires
// admin rights.
func (s *BookingService) Create(ctx context.Context, actor domain.Actor, in domain.CreateBookingInput) (*domain.Booking, error) {
	court, err := s.facility.CourtByID(strings.TrimSpace(in.CourtID))
	if err != nil {
		return nil, fmt.Errorf("check court: %w", err)
	}

	day, slotTime, err := s.validateSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	if court.FullyBooked {
		note := court.FullyBookedNote
		if note == "" {
			note = "court is fully booked"
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotTaken, note)
	}

	if schedule.IsClassTime(s.facility.ClassSlots, day.Weekday(), slotTime) {
		return nil, fmt.Errorf("%w: slot %s is reserved for class sessions", domain.ErrValidation, slotTime)
	}

	onBehalfOf := strings.TrimSpace(in.OnBehalfOf)
	if onBehalfOf != "" {
		isAdmin, err := s.adminRepo.IsAdmin(ctx, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("check admin: %w", err)
		}
		if !isAdmin {
			return nil, fmt.Errorf("%w: only admins may book on behalf of someone else", domain.ErrForbidden)
		}
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		CourtID:    court.ID,
		CourtName:  court.Name,
		CourtType:  court.Type,
		Date:       in.Date,
		Time:       slotTime,
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		OnBehalfOf: onBehalfOf,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("court_id", booking.CourtID),
		logger.String("date", booking.Date),
		logger.String("time", booking.Time),
		logger.String("actor_id", actor.ID),
	)

	bg := context.WithoutCancel(ctx)
	go s.publisher.Publish(bg, domain.Event{Entity: domain.EntityBooking, Action: domain.ActionCreated, ID: booking.ID})
	go s.notifier.NotifyBookingCreated(bg, booking)

	return booking, nil
}

// Cancel deletes the booking. Permitted for its owner and for admins.
func (s *BookingService) Cancel(ctx context.Context, actor domain.Actor, bookingID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if err = s.authorizeMutation(ctx, actor, booking.ActorID); err != nil {
		return err
	}

	if err = s.bookingRepo.Delete(ctx, bookingID); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("actor_id", actor.ID),
	)

	go s.publisher.Publish(context.WithoutCancel(ctx),
		domain.Event{Entity: domain.EntityBooking, Action: domain.ActionCancelled, ID: bookingID})

	return nil
}

// Update moves a booking to a new date/slot and optionally rewrites the
// on-behalf-of name. Admin only. The target slot is re-conflict-checked by
// the same unique index that guards Create; the edited row never conflicts
// with itself.
func (s *BookingService) Update(ctx context.Context, actor domain.Actor, bookingID string, in domain.UpdateBookingInput) (*domain.Booking, error) {
	isAdmin, err := s.adminRepo.IsAdmin(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("check admin: %w", err)
	}
	if !isAdmin {
		return nil, fmt.Errorf("%w: only admins may edit bookings", domain.ErrForbidden)
	}

	day, slotTime, err := s.validateSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if schedule.IsClassTime(s.facility.ClassSlots, day.Weekday(), slotTime) {
		return nil, fmt.Errorf("%w: slot %s is reserved for class sessions", domain.ErrValidation, slotTime)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	booking.Date = in.Date
	booking.Time = slotTime
	if in.OnBehalfOf != nil {
		booking.OnBehalfOf = strings.TrimSpace(*in.OnBehalfOf)
	}
	booking.UpdatedAt = time.Now().UTC()

	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("booking updated",
		logger.String("booking_id", booking.ID),
		logger.String("date", booking.Date),
		logger.String("time", booking.Time),
		logger.String("actor_id", actor.ID),
	)

	go s.publisher.Publish(context.WithoutCancel(ctx),
		domain.Event{Entity: domain.EntityBooking, Action: domain.ActionUpdated, ID: booking.ID})

	return booking, nil
}

// List exposes the full current booking set; views filter it themselves.
func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *BookingService) ListByActor(ctx context.Context, actorID string) ([]*domain.Booking, error) {
	all, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if b.ActorID == actorID {
			res = append(res, b)
		}
	}
	return res, nil
}

// validateSlot rejects malformed dates/times and times outside the fixed
// slot enumeration before any store access.
func (s *BookingService) validateSlot(date, slotTime string) (time.Time, string, error) {
	if !dateRe.MatchString(date) {
		return time.Time{}, "", fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	day, err := time.ParseInLocation(schedule.DateLayout, date, s.loc)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: invalid date %q", domain.ErrValidation, date)
	}

	slotTime = strings.TrimSpace(slotTime)
	if !timeRe.MatchString(slotTime) {
		return time.Time{}, "", fmt.Errorf("%w: time must be HH:MM", domain.ErrValidation)
	}
	if !s.facility.HasSlotTime(slotTime) {
		return time.Time{}, "", fmt.Errorf("%w: %s is not a bookable slot", domain.ErrValidation, slotTime)
	}

	return day, slotTime, nil
}

func (s *BookingService) authorizeMutation(ctx context.Context, actor domain.Actor, ownerID string) error {
	if actor.ID == ownerID {
		return nil
	}

	isAdmin, err := s.adminRepo.IsAdmin(ctx, actor.ID)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if !isAdmin {
		return fmt.Errorf("%w: not the owner", domain.ErrForbidden)
	}
	return nil
}
