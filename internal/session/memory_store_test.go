package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMakesSessionValid(t *testing.T) {
	store := NewMemoryFlagStore()
	ctx := context.Background()

	require.NoError(t, store.Init(ctx, "sid-1"))
	assert.True(t, store.IsValid(ctx, "sid-1"))

	flags, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.True(t, flags.Active)
	assert.False(t, flags.PublicAccessAfterPrivileged)
	assert.WithinDuration(t, time.Now(), flags.LastProtectedAccessAt, time.Second)
}

func TestPublicAccessNoopWhenInactive(t *testing.T) {
	store := NewMemoryFlagStore()
	ctx := context.Background()

	require.NoError(t, store.RecordPublicAccess(ctx, "sid-1"))

	flags, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, flags.Active)
	assert.False(t, flags.PublicAccessAfterPrivileged)
	assert.False(t, store.IsValid(ctx, "sid-1"))
}

func TestPublicAccessAfterInitInvalidatesSession(t *testing.T) {
	store := NewMemoryFlagStore()
	ctx := context.Background()

	require.NoError(t, store.Init(ctx, "sid-1"))
	require.NoError(t, store.RecordPublicAccess(ctx, "sid-1"))

	assert.False(t, store.IsValid(ctx, "sid-1"))

	flags, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.True(t, flags.Active)
	assert.True(t, flags.PublicAccessAfterPrivileged)
}

func TestProtectedAccessRefreshesTimestamp(t *testing.T) {
	store := NewMemoryFlagStore()
	ctx := context.Background()

	require.NoError(t, store.Init(ctx, "sid-1"))
	before, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, store.RecordProtectedAccess(ctx, "sid-1"))

	after, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.True(t, after.LastProtectedAccessAt.After(before.LastProtectedAccessAt))
	assert.True(t, store.IsValid(ctx, "sid-1"))
}

func TestClearAlwaysInvalidates(t *testing.T) {
	store := NewMemoryFlagStore()
	ctx := context.Background()

	require.NoError(t, store.Init(ctx, "sid-1"))
	require.NoError(t, store.Clear(ctx, "sid-1"))
	assert.False(t, store.IsValid(ctx, "sid-1"))
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewMemoryFlagStore()
	ctx := context.Background()

	require.NoError(t, store.Init(ctx, "sid-1"))
	require.NoError(t, store.Init(ctx, "sid-2"))
	require.NoError(t, store.RecordPublicAccess(ctx, "sid-1"))

	assert.False(t, store.IsValid(ctx, "sid-1"))
	assert.True(t, store.IsValid(ctx, "sid-2"))
}
