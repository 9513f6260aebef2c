package session

import (
	"context"
	"sync"
	"time"
)

// MemoryFlagStore is an in-process FlagStore used in tests and when Redis is
// not configured.
type MemoryFlagStore struct {
	mu      sync.Mutex
	records map[string]Flags
}

// NewMemoryFlagStore builds an empty in-memory store.
func NewMemoryFlagStore() *MemoryFlagStore {
	return &MemoryFlagStore{records: make(map[string]Flags)}
}

// Init creates a fresh active record for the session.
func (s *MemoryFlagStore) Init(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionID] = Flags{Active: true, LastProtectedAccessAt: time.Now()}
	return nil
}

// RecordProtectedAccess marks the session active and refreshes the timestamp.
func (s *MemoryFlagStore) RecordProtectedAccess(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	flags := s.records[sessionID]
	flags.Active = true
	flags.LastProtectedAccessAt = time.Now()
	s.records[sessionID] = flags
	return nil
}

// RecordPublicAccess raises the expiry flag only for an already-active session.
func (s *MemoryFlagStore) RecordPublicAccess(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	flags, ok := s.records[sessionID]
	if !ok || !flags.Active {
		return nil
	}
	flags.PublicAccessAfterPrivileged = true
	s.records[sessionID] = flags
	return nil
}

// Clear destroys the record.
func (s *MemoryFlagStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sessionID)
	return nil
}

// IsValid reports session validity.
func (s *MemoryFlagStore) IsValid(_ context.Context, sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[sessionID].Valid()
}

// Get returns the current record, or a zero record when none exists.
func (s *MemoryFlagStore) Get(_ context.Context, sessionID string) (Flags, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[sessionID], nil
}
