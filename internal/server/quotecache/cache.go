// Package quotecache keeps recently fetched stock quotes in redis so the
// upstream provider's rate limits are not burned on repeat lookups.
package quotecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/omccomas/terminal/internal/server/integrations/stocks"
)

const keyPrefix = "quote:"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Connect dials redis and verifies the connection with a ping.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return client, nil
}

func key(symbol string) string {
	return keyPrefix + strings.ToUpper(symbol)
}

// Get returns the cached quote for a symbol, or nil on a miss.
func (c *Cache) Get(ctx context.Context, symbol string) (*stocks.Quote, error) {
	raw, err := c.client.Get(ctx, key(symbol)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cached quote: %w", err)
	}

	var q stocks.Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("decoding cached quote: %w", err)
	}
	return &q, nil
}

func (c *Cache) Set(ctx context.Context, q *stocks.Quote) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key(q.Symbol), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching quote: %w", err)
	}
	return nil
}
