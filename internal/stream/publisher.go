package stream

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"

	"github.com/arena-klein/courtbooker/internal/domain"
)

// Publisher pushes change events onto the Redis channel the hub listens
// on. Best-effort: a failed publish is logged and the mutation it follows
// stays committed.
type Publisher struct {
	client  *redis.Client
	channel string
	logger  logger.Logger
}

func NewPublisher(client *redis.Client, channel string, logger logger.Logger) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

func (p *Publisher) Publish(ctx context.Context, ev domain.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("failed to marshal event",
			logger.String("entity", ev.Entity),
			logger.String("error", err.Error()),
		)
		return
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.logger.Error("failed to publish event",
			logger.String("entity", ev.Entity),
			logger.String("action", ev.Action),
			logger.String("error", err.Error()),
		)
	}
}
