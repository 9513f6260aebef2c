package guard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/luxeride/rental-service/internal/auth"
	"github.com/luxeride/rental-service/internal/events"
	"github.com/luxeride/rental-service/internal/observability"
	"github.com/luxeride/rental-service/internal/routes"
	"github.com/luxeride/rental-service/internal/session"
)

// SessionExpiredMessage is shown to the user after a forced logout.
const SessionExpiredMessage = "Your session has expired. Please log in again to continue."

// Trigger identifies which navigation event caused an evaluation. All
// triggers run the same decision procedure; the trigger is carried for
// logging and metrics only.
type Trigger string

const (
	TriggerMount    Trigger = "mount"
	TriggerNavigate Trigger = "navigate"
	TriggerPopstate Trigger = "popstate"
)

// Action is the outcome kind of a guard evaluation.
type Action string

const (
	// ActionAllow lets the client stay on the current path.
	ActionAllow Action = "allow"
	// ActionRedirect sends the client elsewhere without touching the session.
	ActionRedirect Action = "redirect"
	// ActionLogout forces logout and redirects to the login page.
	ActionLogout Action = "logout"
)

// Landing, dashboard and login targets for redirect decisions.
const (
	landingPath   = "/"
	dashboardPath = "/dashboard"
	loginPath     = "/login"
)

// Decision is the result of evaluating one navigation event.
type Decision struct {
	Action  Action
	Target  string
	Replace bool
	Message string
}

func allow() Decision {
	return Decision{Action: ActionAllow}
}

// Guard decides, per navigation event, whether the caller may remain on a
// path. It holds no state of its own between evaluations; everything lives
// in the flag store and the caller-owned principal.
type Guard struct {
	flags      session.FlagStore
	revoker    auth.TokenRevoker
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
	revokeTTL  time.Duration
}

// New builds a guard. Dispatcher and metrics may be nil.
func New(flags session.FlagStore, revoker auth.TokenRevoker, dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics, revokeTTL time.Duration) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{
		flags:      flags,
		revoker:    revoker,
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
		revokeTTL:  revokeTTL,
	}
}

// Evaluate runs the decision procedure for one navigation event. The same
// procedure serves mount, navigate and popstate triggers.
//
// Order matters: the role check runs strictly before the session-validity
// check, so an admin-route mismatch never reaches the expiry branch.
func (g *Guard) Evaluate(ctx context.Context, principal *auth.Principal, path string, trigger Trigger) Decision {
	class := routes.Classify(path)
	decision := g.decide(ctx, principal, class, path, trigger)

	g.metrics.RecordGuardDecision(string(class), string(decision.Action))
	g.logger.Debug("guard decision",
		zap.String("path", path),
		zap.String("trigger", string(trigger)),
		zap.String("class", string(class)),
		zap.String("action", string(decision.Action)),
	)
	return decision
}

func (g *Guard) decide(ctx context.Context, principal *auth.Principal, class routes.RouteClass, path string, trigger Trigger) Decision {
	switch class {
	case routes.RouteClassNone:
		// Unclassified paths receive no guard action.
		return allow()
	case routes.RouteClassPublic:
		if principal != nil {
			if err := g.flags.RecordPublicAccess(ctx, principal.SessionID); err != nil {
				g.logger.Warn("record public access", zap.Error(err))
			}
		}
		return allow()
	}

	// Protected or admin route from here on.
	if principal == nil || principal.User == nil {
		return Decision{Action: ActionRedirect, Target: landingPath, Replace: true}
	}

	if class == routes.RouteClassAdmin && !principal.User.Role.IsAdmin() {
		return Decision{Action: ActionRedirect, Target: dashboardPath, Replace: true}
	}

	if !g.flags.IsValid(ctx, principal.SessionID) {
		g.forceLogout(ctx, principal, path, trigger)
		return Decision{
			Action:  ActionLogout,
			Target:  loginPath,
			Replace: true,
			Message: SessionExpiredMessage,
		}
	}

	if err := g.flags.RecordProtectedAccess(ctx, principal.SessionID); err != nil {
		g.logger.Warn("record protected access", zap.Error(err))
	}
	return allow()
}

// forceLogout revokes the token session and destroys the flag record. Runs
// once per expiry transition; both operations are idempotent.
func (g *Guard) forceLogout(ctx context.Context, principal *auth.Principal, path string, trigger Trigger) {
	if g.revoker != nil {
		if err := g.revoker.Revoke(ctx, principal.SessionID, g.revokeTTL); err != nil {
			g.logger.Warn("revoke session", zap.Error(err))
		}
	}
	if err := g.flags.Clear(ctx, principal.SessionID); err != nil {
		g.logger.Warn("clear session flags", zap.Error(err))
	}

	g.logger.Info("forced logout",
		zap.String("user_id", principal.User.ID),
		zap.String("path", path),
		zap.String("trigger", string(trigger)),
	)

	if g.dispatcher != nil {
		_ = g.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSessionExpired,
			UserID:    principal.User.ID,
			Timestamp: time.Now(),
			Payload: events.SessionExpiredPayload{
				SessionID: principal.SessionID,
				Path:      path,
				Trigger:   string(trigger),
			},
		})
	}
}
