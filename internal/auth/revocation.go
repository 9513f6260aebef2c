package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

// TokenRevoker invalidates token sessions server-side. A revoked session ID
// makes every token carrying it unusable, which is how forced logout works
// for otherwise stateless JWTs.
type TokenRevoker interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) bool
}

// RedisRevoker stores revoked session IDs in Redis with a TTL matching the
// token lifetime, after which the entry is moot anyway.
type RedisRevoker struct {
	client *redis.Client
}

// NewRedisRevoker builds a Redis-backed revoker.
func NewRedisRevoker(client *redis.Client) *RedisRevoker {
	return &RedisRevoker{client: client}
}

// Revoke marks the session ID revoked.
func (r *RedisRevoker) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if sessionID == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return r.client.Set(ctx, revokedKeyPrefix+sessionID, "1", ttl).Err()
}

// IsRevoked reports whether the session ID was revoked. Fails closed: a
// storage error reads as revoked.
func (r *RedisRevoker) IsRevoked(ctx context.Context, sessionID string) bool {
	if sessionID == "" {
		return true
	}
	n, err := r.client.Exists(ctx, revokedKeyPrefix+sessionID).Result()
	if err != nil {
		return true
	}
	return n > 0
}

// MemoryRevoker is an in-process TokenRevoker for tests and redis-less runs.
type MemoryRevoker struct {
	mu      sync.Mutex
	revoked map[string]struct{}
	// Revocations counts Revoke calls, exposed for tests.
	Revocations int
}

// NewMemoryRevoker builds an empty in-memory revoker.
func NewMemoryRevoker() *MemoryRevoker {
	return &MemoryRevoker{revoked: make(map[string]struct{})}
}

// Revoke marks the session ID revoked.
func (r *MemoryRevoker) Revoke(_ context.Context, sessionID string, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[sessionID] = struct{}{}
	r.Revocations++
	return nil
}

// IsRevoked reports whether the session ID was revoked.
func (r *MemoryRevoker) IsRevoked(_ context.Context, sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revoked[sessionID]
	return ok
}
