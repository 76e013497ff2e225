package session_test

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lakeside/hotel-client/internal/domain"
	"github.com/lakeside/hotel-client/internal/session"
	"github.com/lakeside/hotel-client/internal/store"
)

func mintToken(t *testing.T, sub, email string, roles []string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   sub,
		"email": email,
	}
	if roles != nil {
		claims["roles"] = roles
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}
	return token
}

func TestLoginStoresIdentityAndPersists(t *testing.T) {
	creds := store.NewMemory()
	s := session.NewStore(creds)

	token := mintToken(t, "42", "guest@example.com", []string{"USER"})
	if err := s.Login(token); err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	if !s.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after login")
	}
	if !s.HasRole(domain.RoleUser) {
		t.Error("HasRole(USER) = false")
	}
	if s.HasRole(domain.RoleAdmin) {
		t.Error("HasRole(ADMIN) = true, want false")
	}
	if s.Email() != "guest@example.com" {
		t.Errorf("Email() = %q", s.Email())
	}
	if s.Token() != token {
		t.Error("Token() does not return the raw bearer token")
	}

	saved, err := creds.Load()
	if err != nil || saved == nil {
		t.Fatalf("credentials not persisted: %v", err)
	}
	if saved.Token != token || saved.UserID != "42" || saved.Email != "guest@example.com" {
		t.Errorf("persisted credentials = %+v", saved)
	}
}

func TestLoginMalformedTokenClearsSession(t *testing.T) {
	creds := store.NewMemory()
	s := session.NewStore(creds)

	// An earlier valid login should not survive a garbage token.
	if err := s.Login(mintToken(t, "1", "a@example.com", []string{"USER"})); err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	err := s.Login("not-a-jwt")
	if !errors.Is(err, domain.ErrDecodeToken) {
		t.Fatalf("Login() error = %v, want ErrDecodeToken", err)
	}
	if s.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after failed login")
	}

	saved, _ := creds.Load()
	if saved != nil {
		t.Errorf("persisted credentials not cleared: %+v", saved)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	creds := store.NewMemory()
	s := session.NewStore(creds)

	if err := s.Login(mintToken(t, "1", "a@example.com", nil)); err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	s.Logout()
	s.Logout()

	if s.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after logout")
	}
	if s.Token() != "" {
		t.Error("Token() not empty after logout")
	}
	if saved, _ := creds.Load(); saved != nil {
		t.Errorf("credentials survived logout: %+v", saved)
	}
}

func TestRestoreFromPersisted(t *testing.T) {
	creds := store.NewMemory()
	token := mintToken(t, "7", "back@example.com", []string{"ADMIN"})
	if err := creds.Save(store.Credentials{Token: token, UserID: "7", Email: "back@example.com"}); err != nil {
		t.Fatal(err)
	}

	s := session.NewStore(creds)
	if !s.IsAuthenticated() {
		t.Fatal("IsAuthenticated() = false after restore")
	}
	if !s.HasRole(domain.RoleAdmin) {
		t.Error("HasRole(ADMIN) = false after restore")
	}
}

func TestRestoreDiscardsUndecodableToken(t *testing.T) {
	creds := store.NewMemory()
	if err := creds.Save(store.Credentials{Token: "garbage"}); err != nil {
		t.Fatal(err)
	}

	s := session.NewStore(creds)
	if s.IsAuthenticated() {
		t.Error("IsAuthenticated() = true with garbage persisted token")
	}
	if saved, _ := creds.Load(); saved != nil {
		t.Errorf("garbage credentials not cleared: %+v", saved)
	}
}

func TestSingleRoleClaimIsAccepted(t *testing.T) {
	// Older backends issue "role": "ADMIN" instead of a roles array.
	claims := jwt.MapClaims{"sub": "9", "email": "x@example.com", "role": "ADMIN"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}

	s := session.NewStore(store.NewMemory())
	if err := s.Login(token); err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if !s.HasRole(domain.RoleAdmin) {
		t.Error("HasRole(ADMIN) = false for single role claim")
	}
}
