package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const currencyListKey = "payments:currencies"

// CurrencyCacheRepository caches the payment provider's supported currency
// list in redis, so the deposit keyboard does not hit the provider on every
// tap.
type CurrencyCacheRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCurrencyCacheRepository creates a cache with the given TTL.
func NewCurrencyCacheRepository(rdb *redis.Client, ttl time.Duration) *CurrencyCacheRepository {
	return &CurrencyCacheRepository{rdb: rdb, ttl: ttl}
}

// GetCurrencies returns the cached list, or nil on a miss.
func (r *CurrencyCacheRepository) GetCurrencies(ctx context.Context) ([]string, error) {
	data, err := r.rdb.Get(ctx, currencyListKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var currencies []string
	if err := json.Unmarshal(data, &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// SetCurrencies stores the list with the cache TTL.
func (r *CurrencyCacheRepository) SetCurrencies(ctx context.Context, currencies []string) error {
	data, err := json.Marshal(currencies)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, currencyListKey, data, r.ttl).Err()
}
