package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"staycal/internal/infra"
	"staycal/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// QuoteCache keys quotes by a per-scope version counter instead of tracking
// which date ranges each mutation touches. Invalidate bumps the counter, so
// every quote cached under the old version simply stops matching and ages
// out via TTL.
type QuoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQuoteCache(client *redis.Client, ttl time.Duration) *QuoteCache {
	return &QuoteCache{client: client, ttl: ttl}
}

func (c *QuoteCache) Get(ctx context.Context, listingID uuid.UUID, checkIn, checkOut string) (*shared.QuoteSnapshot, bool, error) {
	key, err := c.quoteKey(ctx, listingID, checkIn, checkOut)
	if err != nil {
		return nil, false, err
	}

	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to get cached quote", err, infra.KindCacheFailure)
	}

	var snap shared.QuoteSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, false, infra.WrapRepoErr("failed to decode cached quote", err, infra.KindCacheFailure)
	}
	return &snap, true, nil
}

func (c *QuoteCache) Set(ctx context.Context, snap *shared.QuoteSnapshot) error {
	key, err := c.quoteKey(ctx, snap.ListingID, snap.CheckIn, snap.CheckOut)
	if err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return infra.WrapRepoErr("failed to encode quote", err, infra.KindCacheFailure)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to set cached quote", err, infra.KindCacheFailure)
	}
	return nil
}

func (c *QuoteCache) Invalidate(ctx context.Context, scopeID uuid.UUID) error {
	if err := c.client.Incr(ctx, versionKey(scopeID)).Err(); err != nil {
		return infra.WrapRepoErr("failed to bump quote cache version", err, infra.KindCacheFailure)
	}
	return nil
}

// quoteKey embeds both the listing's and the global scope's versions, so
// a change in either scope invalidates the quote.
func (c *QuoteCache) quoteKey(ctx context.Context, listingID uuid.UUID, checkIn, checkOut string) (string, error) {
	listingVer, err := c.version(ctx, listingID)
	if err != nil {
		return "", err
	}
	globalVer, err := c.version(ctx, uuid.Nil)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("staycal:quote:%s:%s:%s:v%d:g%d", listingID, checkIn, checkOut, listingVer, globalVer), nil
}

func (c *QuoteCache) version(ctx context.Context, scopeID uuid.UUID) (int64, error) {
	val, err := c.client.Get(ctx, versionKey(scopeID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, infra.WrapRepoErr("failed to get quote cache version", err, infra.KindCacheFailure)
	}
	return val, nil
}

func versionKey(scopeID uuid.UUID) string {
	return "staycal:quote_ver:" + scopeID.String()
}
