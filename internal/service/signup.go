package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/arena-klein/courtbooker/internal/domain"
	"github.com/arena-klein/courtbooker/internal/schedule"
	"github.com/arena-klein/courtbooker/internal/service/ports"
)

type SignUpService struct {
	signUpRepo ports.SignUpRepo
	adminRepo  ports.AdminRepo
	publisher  ports.EventPublisher
	facility   domain.Facility
	loc        *time.Location
	logger     logger.Logger
}

func NewSignUpService(
	signUpRepo ports.SignUpRepo,
	adminRepo ports.AdminRepo,
	publisher ports.EventPublisher,
	facility domain.Facility,
	loc *time.Location,
	logger logger.Logger,
) *SignUpService {
	return &SignUpService{
		signUpRepo: signUpRepo,
		adminRepo:  adminRepo,
		publisher:  publisher,
		facility:   facility,
		loc:        loc,
		logger:     logger,
	}
}

// SessionView is one upcoming class occurrence with its enrollment state,
// projected for the calling actor.
type SessionView struct {
	Slot        domain.ClassSlot `json:"slot"`
	Date        string           `json:"date"`
	HasStarted  bool             `json:"has_started"`
	SignUpCount int              `json:"sign_up_count"`
	Capacity    int              `json:"capacity"`
	MySignUpID  string           `json:"my_sign_up_id,omitempty"`
}

// SignUp enrolls the actor in one session instance. A duplicate sign-up is
// an idempotent no-op: the existing record comes back with created=false.
// The capacity ceiling is enforced by the store inside the insert
// transaction, identically on every path that reaches it.
func (s *SignUpService) SignUp(ctx context.Context, actor domain.Actor, slotKey, date string, experimental bool) (*domain.SignUp, bool, error) {
	cs, err := s.facility.ClassSlotByKey(slotKey)
	if err != nil {
		return nil, false, fmt.Errorf("check class slot: %w", err)
	}

	if !dateRe.MatchString(date) {
		return nil, false, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	day, err := time.ParseInLocation(schedule.DateLayout, date, s.loc)
	if err != nil {
		return nil, false, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, date)
	}
	if day.Weekday() != cs.DayOfWeek {
		return nil, false, fmt.Errorf("%w: %s does not fall on a %s session day", domain.ErrValidation, date, cs.Label)
	}

	existing, err := s.signUpRepo.GetBySession(ctx, slotKey, date, actor.ID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrSignUpNotFound) {
		return nil, false, fmt.Errorf("check existing sign-up: %w", err)
	}

	signUp := &domain.SignUp{
		ID:           uuid.New().String(),
		ActorID:      actor.ID,
		ActorName:    actor.Name,
		ActorEmail:   actor.Email,
		SlotKey:      slotKey,
		Date:         date,
		Experimental: experimental,
		SignedUpAt:   time.Now().UTC(),
	}

	if err = s.signUpRepo.Create(ctx, signUp, s.facility.ClassCapacity); err != nil {
		// Lost insert race against ourselves: same idempotent outcome as
		// the pre-check above.
		if errors.Is(err, domain.ErrAlreadySignedUp) {
			existing, getErr := s.signUpRepo.GetBySession(ctx, slotKey, date, actor.ID)
			if getErr != nil {
				return nil, false, fmt.Errorf("get racing sign-up: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create sign-up: %w", err)
	}

	s.logger.Info("sign-up created",
		logger.String("sign_up_id", signUp.ID),
		logger.String("slot_key", slotKey),
		logger.String("date", date),
		logger.String("actor_id", actor.ID),
	)

	go s.publisher.Publish(context.WithoutCancel(ctx),
		domain.Event{Entity: domain.EntitySignUp, Action: domain.ActionCreated, ID: signUp.ID})

	return signUp, true, nil
}

// Cancel deletes the sign-up. Permitted for its owner and for admins.
func (s *SignUpService) Cancel(ctx context.Context, actor domain.Actor, signUpID string) error {
	signUp, err := s.signUpRepo.GetByID(ctx, signUpID)
	if err != nil {
		return fmt.Errorf("get sign-up: %w", err)
	}

	if signUp.ActorID != actor.ID {
		isAdmin, err := s.adminRepo.IsAdmin(ctx, actor.ID)
		if err != nil {
			return fmt.Errorf("check admin: %w", err)
		}
		if !isAdmin {
			return fmt.Errorf("%w: not the owner", domain.ErrForbidden)
		}
	}

	if err = s.signUpRepo.Delete(ctx, signUpID); err != nil {
		return fmt.Errorf("delete sign-up: %w", err)
	}

	s.logger.Info("sign-up cancelled",
		logger.String("sign_up_id", signUpID),
		logger.String("actor_id", actor.ID),
	)

	go s.publisher.Publish(context.WithoutCancel(ctx),
		domain.Event{Entity: domain.EntitySignUp, Action: domain.ActionCancelled, ID: signUpID})

	return nil
}

// Sessions projects the upcoming class occurrences with per-session counts
// and the calling actor's own enrollment, from the full sign-up set.
func (s *SignUpService) Sessions(ctx context.Context, actor domain.Actor, now time.Time) ([]SessionView, error) {
	all, err := s.signUpRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sign-ups: %w", err)
	}

	instances := schedule.SessionInstances(s.facility.ClassSlots, s.facility.WeeksAhead, now, s.loc)

	views := make([]SessionView, 0, len(instances))
	for _, inst := range instances {
		view := SessionView{
			Slot:       inst.Slot,
			Date:       inst.Date,
			HasStarted: inst.HasStarted,
			Capacity:   s.facility.ClassCapacity,
		}
		for _, su := range all {
			if su.SlotKey != inst.Slot.Key || su.Date != inst.Date {
				continue
			}
			view.SignUpCount++
			if su.ActorID == actor.ID {
				view.MySignUpID = su.ID
			}
		}
		views = append(views, view)
	}

	return views, nil
}

// Roster lists everyone signed up for one session instance.
func (s *SignUpService) Roster(ctx context.Context, slotKey, date string) ([]*domain.SignUp, error) {
	if _, err := s.facility.ClassSlotByKey(slotKey); err != nil {
		return nil, fmt.Errorf("check class slot: %w", err)
	}
	if !dateRe.MatchString(date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}

	return s.signUpRepo.ListBySession(ctx, slotKey, date)
}

func (s *SignUpService) ListByActor(ctx context.Context, actorID string) ([]*domain.SignUp, error) {
	all, err := s.signUpRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.SignUp, 0, len(all))
	for _, su := range all {
		if su.ActorID == actorID {
			res = append(res, su)
		}
	}
	return res, nil
}
