package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"yumi/domain"

	"github.com/redis/go-redis/v9"
)

type redisLoginLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewRedisLoginLimiter counts failed logins per email in a fixed window.
func NewRedisLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) domain.LoginLimiter {
	return &redisLoginLimiter{
		client:      client,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

func (l *redisLoginLimiter) key(email string) string {
	return fmt.Sprintf("yumi:login_fail:%s", strings.ToLower(strings.TrimSpace(email)))
}

func (l *redisLoginLimiter) Blocked(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read login attempts: %w", err)
	}
	return n >= l.maxAttempts, nil
}

// RegisterFailure bumps the counter and starts the window in one MULTI/EXEC,
// so a counter never outlives its window. EXPIRE NX keeps the window fixed.
func (l *redisLoginLimiter) RegisterFailure(ctx context.Context, email string) error {
	key := l.key(email)
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to count login attempt: %w", err)
	}
	return nil
}

func (l *redisLoginLimiter) Reset(ctx context.Context, email string) error {
	if err := l.client.Del(ctx, l.key(email)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}
