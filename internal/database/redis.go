package database

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the Redis client used for trending caches. Returns an error
// when the server is unreachable; callers may run without it.
func NewRedis(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
