package ports

import (
	"context"

	"github.com/arena-klein/courtbooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
	PurgeBefore(ctx context.Context, date string) (int64, error)
}
