package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultChannel = "test_response_submitted"

// ResponseSubmitted is published after a response has been stored.
type ResponseSubmitted struct {
	ResponseID  string    `json:"response_id"`
	TestID      string    `json:"test_id"`
	TestType    string    `json:"test_type"`
	CompletedAt time.Time `json:"completed_at"`
}

// Publisher fans response events out over Redis pub/sub.
type Publisher struct {
	rdb     *redis.Client
	channel string
}

func NewPublisher(addr, channel string) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{
		rdb:     redis.NewClient(&redis.Options{Addr: addr}),
		channel: channel,
	}
}

func (p *Publisher) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

func (p *Publisher) PublishResponseSubmitted(ctx context.Context, event ResponseSubmitted) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal response event: %w", err)
	}
	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.channel, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.rdb.Close()
}
