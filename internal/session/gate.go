package session

import (
	"time"

	"github.com/lakeside/hotel-client/internal/domain"
)

// PendingIntent records that a protected action was attempted while logged
// out. Only the timestamp is kept: the action itself is deliberately not
// captured, so nothing auto-resumes after login — the caller re-triggers.
type PendingIntent struct {
	RequestedAt time.Time
}

// Gate decides per protected action whether to run it or force an
// authentication prompt.
type Gate struct {
	session *Store
	ttl     time.Duration
	now     func() time.Time

	intent *PendingIntent
}

// NewGate wraps the session store. ttl bounds how long a pending intent stays
// live before it is discarded; zero means no expiry.
func NewGate(session *Store, ttl time.Duration) *Gate {
	return &Gate{session: session, ttl: ttl, now: time.Now}
}

// Attempt runs action immediately when a session is present. Otherwise it
// records a pending intent, flips the session's prompt flag and returns
// domain.ErrLoginRequired; the action is discarded, not queued.
func (g *Gate) Attempt(action func() error) error {
	if g.session.IsAuthenticated() {
		return action()
	}

	g.intent = &PendingIntent{RequestedAt: g.now()}
	g.session.pendingPrompt = true
	return domain.ErrLoginRequired
}

// RequireRole behaves like Attempt for unauthenticated callers. An
// authenticated caller lacking the role gets domain.ErrRoleDenied with no
// prompt: the denial is silent by policy, there is nothing logging in again
// would fix.
func (g *Gate) RequireRole(role domain.Role, action func() error) error {
	if !g.session.IsAuthenticated() {
		return g.Attempt(action)
	}
	if !g.session.HasRole(role) {
		return domain.ErrRoleDenied
	}
	return action()
}

// CancelPrompt discards the pending intent, e.g. when the user closes the
// login prompt without signing in.
func (g *Gate) CancelPrompt() {
	g.intent = nil
	g.session.pendingPrompt = false
}

// PendingSince reports when the live pending intent was recorded. An intent
// older than the configured ttl is discarded on the way out.
func (g *Gate) PendingSince() (time.Time, bool) {
	if g.intent == nil {
		return time.Time{}, false
	}
	if g.ttl > 0 && g.now().Sub(g.intent.RequestedAt) > g.ttl {
		g.CancelPrompt()
		return time.Time{}, false
	}
	return g.intent.RequestedAt, true
}
