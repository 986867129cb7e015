package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis keeps blobs in a redis instance, for deployments where several
// cafe counters share one catalog.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: connecting to redis: %v", ErrStorage, err)
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Get(key string) ([]byte, bool, error) {
	value, err := r.client.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: reading %s: %v", ErrStorage, key, err)
	}
	return value, true, nil
}

func (r *Redis) Put(key string, value []byte) error {
	if err := r.client.Set(context.Background(), key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrStorage, key, err)
	}
	return nil
}
