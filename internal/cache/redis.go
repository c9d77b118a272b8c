package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const averageAttemptsKey = "stats:average_attempts"

// Redis is a Store backed by a Redis string key, the durable option for
// multi-instance deployments.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to Redis at addr and verifies the connection with a ping.
func NewRedis(addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info().Str("addr", addr).Msg("connected to Redis")
	return &Redis{client: client}, nil
}

func (r *Redis) Set(ctx context.Context, message string) error {
	return r.client.Set(ctx, averageAttemptsKey, message, 0).Err()
}

func (r *Redis) Get(ctx context.Context) (string, error) {
	message, err := r.client.Get(ctx, averageAttemptsKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return message, nil
}
