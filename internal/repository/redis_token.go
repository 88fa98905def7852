package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "revoked_token:"

// RedisTokenRepository keeps a denylist of logged-out token ids. Entries
// expire together with the token they refer to.
type RedisTokenRepository struct {
	client redis.UniversalClient
}

func NewRedisTokenRepository(client redis.UniversalClient) *RedisTokenRepository {
	return &RedisTokenRepository{
		client: client,
	}
}

func revokedTokenKey(tokenID string) string {
	return revokedTokenPrefix + tokenID
}

func (r *RedisTokenRepository) Revoke(ctx context.Context, tokenID string, expiry time.Time) error {
	ttl := time.Until(expiry)
	if ttl <= 0 {
		return nil
	}

	return r.client.Set(ctx, revokedTokenKey(tokenID), 1, ttl.Round(time.Second)+time.Second).Err()
}

func (r *RedisTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedTokenKey(tokenID)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
