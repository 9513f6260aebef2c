package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultFlagPrefix = "sessionflags:"

// RedisFlagStore keeps session flags in Redis with a TTL standing in for the
// browser tab-session lifetime. Each session ID maps to its own record, so one
// session's public-page visit never expires another.
type RedisFlagStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisFlagStore builds a store writing under the default key prefix.
func NewRedisFlagStore(client *redis.Client, ttl time.Duration) *RedisFlagStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisFlagStore{client: client, prefix: defaultFlagPrefix, ttl: ttl}
}

func (s *RedisFlagStore) key(sessionID string) string {
	return s.prefix + sessionID
}

// Init creates a fresh active record for the session.
func (s *RedisFlagStore) Init(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.New("session id required")
	}
	flags := Flags{Active: true, LastProtectedAccessAt: time.Now()}
	return s.save(ctx, sessionID, flags)
}

// RecordProtectedAccess marks the session active and refreshes the timestamp.
func (s *RedisFlagStore) RecordProtectedAccess(ctx context.Context, sessionID string) error {
	flags, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	flags.Active = true
	flags.LastProtectedAccessAt = time.Now()
	return s.save(ctx, sessionID, flags)
}

// RecordPublicAccess raises the expiry flag only for an already-active session.
func (s *RedisFlagStore) RecordPublicAccess(ctx context.Context, sessionID string) error {
	flags, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !flags.Active {
		return nil
	}
	flags.PublicAccessAfterPrivileged = true
	return s.save(ctx, sessionID, flags)
}

// Clear destroys the record.
func (s *RedisFlagStore) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

// IsValid reports session validity, failing closed on storage errors.
func (s *RedisFlagStore) IsValid(ctx context.Context, sessionID string) bool {
	flags, err := s.Get(ctx, sessionID)
	if err != nil {
		return false
	}
	return flags.Valid()
}

// Get loads the record; a missing key yields a zero record, not an error.
func (s *RedisFlagStore) Get(ctx context.Context, sessionID string) (Flags, error) {
	if sessionID == "" {
		return Flags{}, nil
	}
	data, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Flags{}, nil
		}
		return Flags{}, fmt.Errorf("redis get session flags: %w", err)
	}
	var flags Flags
	if err := json.Unmarshal([]byte(data), &flags); err != nil {
		return Flags{}, fmt.Errorf("unmarshal session flags: %w", err)
	}
	return flags, nil
}

func (s *RedisFlagStore) save(ctx context.Context, sessionID string, flags Flags) error {
	data, err := json.Marshal(flags)
	if err != nil {
		return fmt.Errorf("marshal session flags: %w", err)
	}
	return s.client.Set(ctx, s.key(sessionID), data, s.ttl).Err()
}
