package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"safezone/internal/domain"
	"safezone/pkg/e"
)

const (
	DefaultEventQueueKey    = "events:critical_zone"
	DefaultEventQueueMaxLen = 10_000
)

// EventQueue is a capped Redis list of critical-zone events: LPUSH+LTRIM on
// produce, BRPOP on consume. Once maxLen events are waiting the oldest ones
// are dropped.
type EventQueue struct {
	client *redis.Client
	key    string
	maxLen int64
}

func NewEventQueue(client *redis.Client, key string, maxLen int64) *EventQueue {
	if key == "" {
		key = DefaultEventQueueKey
	}
	if maxLen <= 0 {
		maxLen = DefaultEventQueueMaxLen
	}
	return &EventQueue{client: client, key: key, maxLen: maxLen}
}

func (q *EventQueue) Enqueue(ctx context.Context, ev domain.CriticalZoneEvent) error {
	const op = "redis.EventQueue.Enqueue"

	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", op, err)
	}

	// consumers BRPOP from the tail, so trimming the tail drops the oldest
	_, err = q.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.LPush(ctx, q.key, b)
		p.LTrim(ctx, q.key, 0, q.maxLen-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// BRPop waits up to timeout for one event and returns e.ErrQueueEmpty when
// none arrived.
func (q *EventQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.CriticalZoneEvent, error) {
	var ev domain.CriticalZoneEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}
