package ports

import (
	"context"

	"github.com/arena-klein/courtbooker/internal/domain"
)

type SignUpRepo interface {
	// Create inserts a sign-up, enforcing the per-session capacity ceiling
	// inside the same transaction.
	Create(ctx context.Context, s *domain.SignUp, capacity int) error
	GetByID(ctx context.Context, id string) (*domain.SignUp, error)
	GetBySession(ctx context.Context, slotKey, date, actorID string) (*domain.SignUp, error)
	List(ctx context.Context) ([]*domain.SignUp, error)
	ListBySession(ctx context.Context, slotKey, date string) ([]*domain.SignUp, error)
	Delete(ctx context.Context, id string) error
	PurgeBefore(ctx context.Context, date string) (int64, error)
}
