// Package session holds the decoded identity for the running client and
// gates protected actions on it. One Store exists per client; it is the
// single writer of session state and is meant to be driven from the UI
// event goroutine, so it carries no locks.
package session

import (
	"github.com/lakeside/hotel-client/internal/domain"
	"github.com/lakeside/hotel-client/internal/store"
	"github.com/lakeside/hotel-client/pkg/auth"
	"github.com/lakeside/hotel-client/pkg/logger"
)

type Store struct {
	creds store.CredentialStore

	identity      *auth.Claims
	token         string
	pendingPrompt bool
}

// NewStore builds the session store and restores any persisted session.
// A persisted token that no longer decodes is wiped and the client starts
// logged out; startup never fails on stale credentials.
func NewStore(creds store.CredentialStore) *Store {
	s := &Store{creds: creds}
	s.restoreFromPersisted()
	return s
}

// Login decodes the token, replaces any existing identity, clears a pending
// auth prompt and persists the credentials. A token that does not decode
// returns domain.ErrDecodeToken and invalidates the session, memory and
// disk both: whoever handed us that token cannot be trusted to have left
// the stored one intact.
func (s *Store) Login(token string) error {
	claims, err := auth.Decode(token)
	if err != nil {
		s.identity = nil
		s.token = ""
		if clearErr := s.creds.Clear(); clearErr != nil {
			logger.Warn("failed to clear credentials", "error", clearErr)
		}
		return err
	}

	s.identity = claims
	s.token = token
	s.pendingPrompt = false

	creds := store.Credentials{
		Token:  token,
		UserID: claims.SubjectID(),
		Email:  claims.Email,
		Roles:  roleStrings(claims.RoleSet()),
	}
	if err := s.creds.Save(creds); err != nil {
		// The in-memory session is still good; only persistence failed.
		logger.Warn("failed to persist credentials", "error", err)
	}
	return nil
}

// Logout clears the identity and wipes persisted credentials. Idempotent.
func (s *Store) Logout() {
	s.identity = nil
	s.token = ""
	s.pendingPrompt = false

	if err := s.creds.Clear(); err != nil {
		logger.Warn("failed to clear credentials", "error", err)
	}
}

func (s *Store) restoreFromPersisted() {
	saved, err := s.creds.Load()
	if err != nil {
		logger.Warn("failed to load persisted credentials", "error", err)
		return
	}
	if saved == nil {
		return
	}

	claims, err := auth.Decode(saved.Token)
	if err != nil {
		logger.Warn("discarding undecodable persisted token")
		if err := s.creds.Clear(); err != nil {
			logger.Warn("failed to clear credentials", "error", err)
		}
		return
	}

	s.identity = claims
	s.token = saved.Token
}

func (s *Store) IsAuthenticated() bool {
	return s.identity != nil
}

func (s *Store) HasRole(role domain.Role) bool {
	return s.identity != nil && s.identity.HasRole(role)
}

// Identity returns the decoded claims, or nil when logged out.
func (s *Store) Identity() *auth.Claims {
	return s.identity
}

// Token returns the raw bearer token for outbound requests, "" when
// logged out.
func (s *Store) Token() string {
	return s.token
}

// Email returns the signed-in user's email, "" when logged out. Used to
// prefill the checkout form.
func (s *Store) Email() string {
	if s.identity == nil {
		return ""
	}
	return s.identity.Email
}

// PendingPrompt reports whether a protected action is waiting on a login.
func (s *Store) PendingPrompt() bool {
	return s.pendingPrompt
}

func roleStrings(roles []domain.Role) []string {
	if len(roles) == 0 {
		return nil
	}
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
