package ports

import (
	"context"

	"github.com/arena-klein/courtbooker/internal/domain"
)

// EventPublisher pushes change events to live subscribers. Best-effort:
// publish failures are logged, never surfaced to the mutation.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.Event)
}
