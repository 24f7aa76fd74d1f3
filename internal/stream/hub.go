package stream

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"

	"github.com/arena-klein/courtbooker/internal/domain"
)

// Hub fans events from the Redis channel out to connected live clients.
// Slow clients are skipped rather than blocked on; consumers re-read
// state on receipt, so a dropped event costs one refresh at most.
type Hub struct {
	client  *redis.Client
	channel string
	logger  logger.Logger

	mu   sync.Mutex
	subs map[chan domain.Event]struct{}
}

func NewHub(client *redis.Client, channel string, logger logger.Logger) *Hub {
	return &Hub{
		client:  client,
		channel: channel,
		logger:  logger,
		subs:    make(map[chan domain.Event]struct{}),
	}
}

// Run consumes the Redis subscription until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	pubsub := h.client.Subscribe(ctx, h.channel)
	defer pubsub.Close()

	h.logger.Info("event hub started", logger.String("channel", h.channel))

	msgs := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("event hub stopped")
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var ev domain.Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				h.logger.Error("failed to decode event",
					logger.String("error", err.Error()),
				)
				continue
			}
			h.broadcast(ev)
		}
	}
}

// Subscribe registers a live client. The returned function must be called
// when the client disconnects.
func (h *Hub) Subscribe() (<-chan domain.Event, func()) {
	ch := make(chan domain.Event, 8)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}
	return ch, unsubscribe
}

func (h *Hub) broadcast(ev domain.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
