package cache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

const cardKeyPrefix = "loancard:"

type cardEntry struct {
	HTML       string    `json:"html"`
	RenderedAt time.Time `json:"rendered_at"`
}

// CardCache keeps rendered loan cards in Redis. Entries are short lived since
// the countdown text goes stale.
type CardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCardCache(rdb *redis.Client, ttl time.Duration) *CardCache {
	return &CardCache{rdb: rdb, ttl: ttl}
}

func cardKey(loanID string) string { return cardKeyPrefix + loanID }

// Get reports ok=false on a miss.
func (c *CardCache) Get(ctx context.Context, loanID string) (string, bool, error) {
	v, err := c.rdb.Get(ctx, cardKey(loanID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	var e cardEntry
	if err := jsoniter.ConfigFastest.Unmarshal(v, &e); err != nil {
		// corrupt entry, treat as a miss
		return "", false, nil
	}
	return e.HTML, true, nil
}

func (c *CardCache) Set(ctx context.Context, loanID, html string) error {
	payload, err := jsoniter.ConfigFastest.Marshal(cardEntry{HTML: html, RenderedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cardKey(loanID), payload, c.ttl).Err()
}

func (c *CardCache) Invalidate(ctx context.Context, loanID string) error {
	return c.rdb.Del(ctx, cardKey(loanID)).Err()
}
