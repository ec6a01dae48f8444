package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/config"
	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/Phecobaba/Skybooker-sub001/internal/pricing"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
	ratesTTL   time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL, ratesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
		ratesTTL:   ratesTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

// GetRates returns the cached rate config, or (nil, nil) on a miss. Rates are
// cached with a short TTL, so a settings change becomes visible within one
// TTL window at worst.
func (c *RedisCache) GetRates(ctx context.Context) (*pricing.RateConfig, error) {
	data, err := c.client.Get(ctx, ratesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var rates pricing.RateConfig
	if err := json.Unmarshal(data, &rates); err != nil {
		return nil, err
	}
	return &rates, nil
}

func (c *RedisCache) SetRates(ctx context.Context, rates pricing.RateConfig) error {
	payload, err := json.Marshal(rates)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ratesKey(), payload, c.ratesTTL).Err()
}

func (c *RedisCache) InvalidateRates(ctx context.Context) error {
	return c.client.Del(ctx, ratesKey()).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func ratesKey() string {
	return "cache:settings:rates"
}
