package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "contacts_used:"

// Counters track how many owner contacts each renter has consumed this
// billing month. Keys expire so the allowance resets without a sweeper.
type Counters struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCounters wires a Redis backed counter store.
func NewCounters(client redis.Cmdable) *Counters {
	return &Counters{client: client, ttl: 31 * 24 * time.Hour}
}

// Used returns the number of contacts consumed by the given renter.
func (c *Counters) Used(ctx context.Context, userID string) (int, error) {
	val, err := c.client.Get(ctx, keyPrefix+userID).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("read contact counter: %w", err)
	}
	return val, nil
}

// Increment bumps the renter's counter and returns the new value.
func (c *Counters) Increment(ctx context.Context, userID string) (int, error) {
	key := keyPrefix + userID
	val, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("increment contact counter: %w", err)
	}
	if val == 1 {
		if err := c.client.Expire(ctx, key, c.ttl).Err(); err != nil {
			return 0, fmt.Errorf("set counter expiry: %w", err)
		}
	}
	return int(val), nil
}
