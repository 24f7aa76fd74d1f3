package ports

import (
	"context"

	"github.com/arena-klein/courtbooker/internal/domain"
)

// BookingNotifier is a best-effort side-channel. A failed notification must
// never roll back or block the committed booking.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
}
