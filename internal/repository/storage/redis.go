package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// New - opens a Redis client and checks it answers.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, ErrAddrNotFound
	}

	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return conn, nil
}
