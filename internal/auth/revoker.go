package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrRevocationDisabled = errors.New("token revocation disabled")

// Revoker remembers revoked token ids until they expire.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const revokedPrefix = "auth:revoked:"

type RedisRevoker struct {
	client *redis.Client
}

func NewRedisRevoker(client *redis.Client) *RedisRevoker {
	return &RedisRevoker{client: client}
}

func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, revokedPrefix+tokenID, 1, ttl).Err()
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Ping is used by the readiness endpoint.
func (r *RedisRevoker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// NoopRevoker is used when Redis is not configured: nothing is ever
// revoked and revoking reports ErrRevocationDisabled.
type NoopRevoker struct{}

func (NoopRevoker) Revoke(context.Context, string, time.Duration) error {
	return ErrRevocationDisabled
}

func (NoopRevoker) IsRevoked(context.Context, string) (bool, error) {
	return false, nil
}
