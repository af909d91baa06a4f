package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPublisher(t *testing.T, channel string) (*Publisher, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	p := NewPublisher(mr.Addr(), channel)
	t.Cleanup(func() { _ = p.Close() })
	return p, mr
}

func TestPublishResponseSubmitted(t *testing.T) {
	p, mr := setupPublisher(t, "")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	sub := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = sub.Close() })
	ps := sub.Subscribe(ctx, DefaultChannel)
	t.Cleanup(func() { _ = ps.Close() })
	_, err := ps.Receive(ctx)
	require.NoError(t, err)

	completed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, p.PublishResponseSubmitted(ctx, ResponseSubmitted{
		ResponseID:  "r1",
		TestID:      "t1",
		TestType:    "custom",
		CompletedAt: completed,
	}))

	msg, err := ps.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultChannel, msg.Channel)

	var got ResponseSubmitted
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.Equal(t, "r1", got.ResponseID)
	assert.Equal(t, "t1", got.TestID)
	assert.Equal(t, "custom", got.TestType)
	assert.True(t, got.CompletedAt.Equal(completed))
}

func TestPublishCustomChannel(t *testing.T) {
	p, _ := setupPublisher(t, "responses")
	assert.Equal(t, "responses", p.channel)
	assert.NoError(t, p.Ping(context.Background()))
}

func TestPublishFailsWhenRedisIsDown(t *testing.T) {
	p, mr := setupPublisher(t, "")
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Error(t, p.PublishResponseSubmitted(ctx, ResponseSubmitted{ResponseID: "r1"}))
}
