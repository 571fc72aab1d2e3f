package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iho/savingsgl/internal/domain"
	"github.com/iho/savingsgl/internal/usecase"
)

// AccountMappingCache implements usecase.AccountMappingRepository by caching
// another repository's answers in Redis. Redis failures fall through to the
// wrapped repository.
type AccountMappingCache struct {
	client *redis.Client
	next   usecase.AccountMappingRepository
	logger zerolog.Logger
	prefix string
	ttl    time.Duration
}

// NewAccountMappingCache creates a new AccountMappingCache.
func NewAccountMappingCache(client *redis.Client, next usecase.AccountMappingRepository, ttl time.Duration, logger zerolog.Logger) *AccountMappingCache {
	return &AccountMappingCache{
		client: client,
		next:   next,
		logger: logger.With().Str("component", "mapping_cache").Logger(),
		prefix: "savingsgl:mapping:",
		ttl:    ttl,
	}
}

func (c *AccountMappingCache) key(productID string, parts ...string) string {
	k := c.prefix + productID
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

// GetChart returns the cached chart, loading it on a miss.
func (c *AccountMappingCache) GetChart(ctx context.Context, productID string, basis domain.AccountingBasis) (*domain.Chart, error) {
	key := c.key(productID, "chart", string(basis))

	if raw, ok := c.get(ctx, key); ok {
		var chart domain.Chart
		if err := json.Unmarshal(raw, &chart); err == nil {
			return &chart, nil
		}
	}

	chart, err := c.next.GetChart(ctx, productID, basis)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(chart); err == nil {
		c.set(ctx, key, raw)
	}

	return chart, nil
}

// ChargeIncomeAccount returns the cached charge-specific income account.
func (c *AccountMappingCache) ChargeIncomeAccount(ctx context.Context, productID, chargeID string) (string, error) {
	return c.account(ctx, c.key(productID, "charge", chargeID), func() (string, error) {
		return c.next.ChargeIncomeAccount(ctx, productID, chargeID)
	})
}

// FeeIncomeAccount returns the cached default fee income account.
func (c *AccountMappingCache) FeeIncomeAccount(ctx context.Context, productID string) (string, error) {
	return c.account(ctx, c.key(productID, "fees"), func() (string, error) {
		return c.next.FeeIncomeAccount(ctx, productID)
	})
}

// Invalidate drops every cached mapping of a product.
func (c *AccountMappingCache) Invalidate(ctx context.Context, productID string) error {
	iter := c.client.Scan(ctx, 0, c.key(productID)+":*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	return c.client.Del(ctx, keys...).Err()
}

// account caches an optional account id; "" is cached too.
func (c *AccountMappingCache) account(ctx context.Context, key string, load func() (string, error)) (string, error) {
	if raw, ok := c.get(ctx, key); ok {
		return string(raw), nil
	}

	account, err := load()
	if err != nil {
		return "", err
	}

	c.set(ctx, key, []byte(account))

	return account, nil
}

func (c *AccountMappingCache) get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("key", key).Msg("mapping cache read failed")
		}
		return nil, false
	}
	return raw, true
}

func (c *AccountMappingCache) set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("mapping cache write failed")
	}
}
