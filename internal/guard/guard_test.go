package guard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxeride/rental-service/internal/auth"
	"github.com/luxeride/rental-service/internal/domain"
	"github.com/luxeride/rental-service/internal/events"
	"github.com/luxeride/rental-service/internal/observability"
	"github.com/luxeride/rental-service/internal/session"
)

func newTestGuard(t *testing.T) (*Guard, *session.MemoryFlagStore, *auth.MemoryRevoker) {
	t.Helper()
	flags := session.NewMemoryFlagStore()
	revoker := auth.NewMemoryRevoker()
	g := New(flags, revoker, events.NewInMemoryDispatcher(), nil, observability.NewMetrics(), time.Hour)
	return g, flags, revoker
}

func customer(sessionID string) *auth.Principal {
	return &auth.Principal{
		User:      &domain.User{ID: "user-1", Email: "c@example.com", Role: domain.RoleCustomer},
		SessionID: sessionID,
	}
}

func admin(sessionID string) *auth.Principal {
	return &auth.Principal{
		User:      &domain.User{ID: "admin-1", Email: "a@example.com", Role: domain.RoleAdmin},
		SessionID: sessionID,
	}
}

func TestUnauthenticatedOnProtectedRedirectsToLanding(t *testing.T) {
	g, _, _ := newTestGuard(t)

	decision := g.Evaluate(context.Background(), nil, "/dashboard", TriggerMount)

	assert.Equal(t, ActionRedirect, decision.Action)
	assert.Equal(t, "/", decision.Target)
	assert.True(t, decision.Replace)
}

func TestCustomerOnAdminRouteRedirectsToDashboard(t *testing.T) {
	g, flags, _ := newTestGuard(t)
	ctx := context.Background()
	require.NoError(t, flags.Init(ctx, "sid-1"))

	decision := g.Evaluate(ctx, customer("sid-1"), "/admin/newsletter", TriggerNavigate)

	assert.Equal(t, ActionRedirect, decision.Action)
	assert.Equal(t, "/dashboard", decision.Target)
	assert.True(t, decision.Replace)
}

func TestRoleCheckPrecedesExpiryCheck(t *testing.T) {
	g, flags, revoker := newTestGuard(t)
	ctx := context.Background()
	require.NoError(t, flags.Init(ctx, "sid-1"))
	require.NoError(t, flags.RecordPublicAccess(ctx, "sid-1"))

	// Session is expired, but the role mismatch must short-circuit first.
	decision := g.Evaluate(ctx, customer("sid-1"), "/admin", TriggerNavigate)

	assert.Equal(t, ActionRedirect, decision.Action)
	assert.Equal(t, "/dashboard", decision.Target)
	assert.Equal(t, 0, revoker.Revocations)
}

func TestPublicVisitThenProtectedForcesLogout(t *testing.T) {
	g, flags, revoker := newTestGuard(t)
	ctx := context.Background()
	p := customer("sid-1")
	require.NoError(t, flags.Init(ctx, "sid-1"))

	decision := g.Evaluate(ctx, p, "/dashboard", TriggerNavigate)
	assert.Equal(t, ActionAllow, decision.Action)

	decision = g.Evaluate(ctx, p, "/login", TriggerNavigate)
	assert.Equal(t, ActionAllow, decision.Action)

	decision = g.Evaluate(ctx, p, "/dashboard", TriggerPopstate)
	assert.Equal(t, ActionLogout, decision.Action)
	assert.Equal(t, "/login", decision.Target)
	assert.True(t, decision.Replace)
	assert.Equal(t, "Your session has expired. Please log in again to continue.", decision.Message)

	assert.Equal(t, 1, revoker.Revocations)
	assert.True(t, revoker.IsRevoked(ctx, "sid-1"))
	assert.False(t, flags.IsValid(ctx, "sid-1"))
}

func TestValidSessionIsIdempotent(t *testing.T) {
	g, flags, revoker := newTestGuard(t)
	ctx := context.Background()
	p := customer("sid-1")
	require.NoError(t, flags.Init(ctx, "sid-1"))

	for _, trigger := range []Trigger{TriggerMount, TriggerNavigate, TriggerPopstate, TriggerNavigate} {
		decision := g.Evaluate(ctx, p, "/dashboard", trigger)
		assert.Equal(t, ActionAllow, decision.Action, "trigger %s", trigger)
	}
	assert.Equal(t, 0, revoker.Revocations)
	assert.True(t, flags.IsValid(ctx, "sid-1"))
}

func TestAdminAllowedOnAdminRoute(t *testing.T) {
	g, flags, _ := newTestGuard(t)
	ctx := context.Background()
	require.NoError(t, flags.Init(ctx, "sid-9"))

	decision := g.Evaluate(ctx, admin("sid-9"), "/admin/vehicles", TriggerMount)
	assert.Equal(t, ActionAllow, decision.Action)

	flags2, err := flags.Get(ctx, "sid-9")
	require.NoError(t, err)
	assert.True(t, flags2.Active)
}

func TestPublicVisitWithoutSessionIsHarmless(t *testing.T) {
	g, flags, _ := newTestGuard(t)
	ctx := context.Background()

	// Never logged in: a public visit must not raise the expiry flag.
	decision := g.Evaluate(ctx, nil, "/login", TriggerMount)
	assert.Equal(t, ActionAllow, decision.Action)

	// Fresh login afterwards stays valid.
	require.NoError(t, flags.Init(ctx, "sid-2"))
	decision = g.Evaluate(ctx, customer("sid-2"), "/dashboard", TriggerNavigate)
	assert.Equal(t, ActionAllow, decision.Action)
}

func TestUnclassifiedPathNoAction(t *testing.T) {
	g, flags, _ := newTestGuard(t)
	ctx := context.Background()
	require.NoError(t, flags.Init(ctx, "sid-1"))

	decision := g.Evaluate(ctx, customer("sid-1"), "/some-unknown-page", TriggerNavigate)
	assert.Equal(t, ActionAllow, decision.Action)

	// No flag movement either way.
	assert.True(t, flags.IsValid(ctx, "sid-1"))
}

func TestForcedLogoutPublishesSessionExpiredEvent(t *testing.T) {
	flags := session.NewMemoryFlagStore()
	revoker := auth.NewMemoryRevoker()
	dispatcher := events.NewInMemoryDispatcher()

	var received []events.Event
	dispatcher.Subscribe(events.EventSessionExpired, func(_ context.Context, e events.Event) error {
		received = append(received, e)
		return nil
	})

	g := New(flags, revoker, dispatcher, nil, observability.NewMetrics(), time.Hour)
	ctx := context.Background()
	p := customer("sid-1")
	require.NoError(t, flags.Init(ctx, "sid-1"))
	require.NoError(t, flags.RecordPublicAccess(ctx, "sid-1"))

	g.Evaluate(ctx, p, "/dashboard", TriggerPopstate)

	require.Len(t, received, 1)
	assert.Equal(t, "user-1", received[0].UserID)
	payload, ok := received[0].Payload.(events.SessionExpiredPayload)
	require.True(t, ok)
	assert.Equal(t, "sid-1", payload.SessionID)
	assert.Equal(t, "/dashboard", payload.Path)
}

func TestGuardRecordsMetrics(t *testing.T) {
	flags := session.NewMemoryFlagStore()
	metrics := observability.NewMetrics()
	g := New(flags, auth.NewMemoryRevoker(), nil, nil, metrics, time.Hour)

	g.Evaluate(context.Background(), nil, "/dashboard", TriggerMount)

	assert.Equal(t, int64(1), metrics.GuardDecisionCount("PROTECTED", "redirect"))
}
