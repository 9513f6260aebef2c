package session

import (
	"context"
	"time"
)

// Flags is the per-session record backing navigation-based expiry. It lives
// for the duration of one authenticated session and is destroyed on logout.
type Flags struct {
	Active                      bool      `json:"active"`
	LastProtectedAccessAt       time.Time `json:"last_protected_access_at"`
	PublicAccessAfterPrivileged bool      `json:"public_access_after_privileged"`
}

// Valid reports whether the session is still usable: it must be active and
// the holder must not have visited a public page since privileged access.
func (f Flags) Valid() bool {
	return f.Active && !f.PublicAccessAfterPrivileged
}

// FlagStore persists Flags keyed by session ID. Implementations fail closed:
// when the backing store is unreachable, reads behave as "no valid session"
// rather than erroring into the caller.
type FlagStore interface {
	// Init creates a fresh active record for the session. Called once on login.
	Init(ctx context.Context, sessionID string) error
	// RecordProtectedAccess marks the session active and refreshes the last
	// protected access timestamp. Safe to call on every protected observation.
	RecordProtectedAccess(ctx context.Context, sessionID string) error
	// RecordPublicAccess raises the expiry flag, but only when the session is
	// already active; otherwise it is a no-op.
	RecordPublicAccess(ctx context.Context, sessionID string) error
	// Clear destroys the record. Called on logout, explicit or forced.
	Clear(ctx context.Context, sessionID string) error
	// IsValid reports whether the session is active and unexpired.
	IsValid(ctx context.Context, sessionID string) bool
	// Get returns the current record, or a zero record when none exists.
	Get(ctx context.Context, sessionID string) (Flags, error)
}
