package hotelclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lakeside/hotel-client/internal/booking"
	"github.com/lakeside/hotel-client/internal/domain"
	"github.com/lakeside/hotel-client/pkg/config"
)

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "42",
		"email": "pat@example.com",
		"roles": []string{"USER"},
	}).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatal(err)
	}

	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok","user":{"id":42,"email":"pat@example.com","token":"` + token + `"}}`))
	})
	r.Get("/rooms/room/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":12,"roomType":"Deluxe","roomPrice":1000}`))
	})
	r.Post("/bookings/room/{id}/booking", func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte("CONF-E2E"))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	return &config.Config{
		API:         config.APIConfig{BaseURL: baseURL, Timeout: 5 * time.Second},
		Credentials: config.CredentialsConfig{Path: filepath.Join(t.TempDir(), "credentials.json")},
		Auth:        config.AuthConfig{PendingIntentTTL: 5 * time.Minute},
	}
}

func TestSignInBookSignOut(t *testing.T) {
	srv := fakeBackend(t)
	c := New(testConfig(t, srv.URL))
	ctx := context.Background()

	if c.Session.IsAuthenticated() {
		t.Fatal("fresh client is authenticated")
	}

	if err := c.SignIn(ctx, "pat@example.com", "pw"); err != nil {
		t.Fatalf("SignIn() error: %v", err)
	}
	if !c.Session.HasRole(domain.RoleUser) {
		t.Error("HasRole(USER) = false after sign-in")
	}

	room, err := c.API.Room(ctx, 12)
	if err != nil {
		t.Fatalf("Room() error: %v", err)
	}

	w := c.NewCheckout(*room)
	if got := w.Draft().GuestEmail; got != "pat@example.com" {
		t.Errorf("draft email = %q, want the session's", got)
	}
	if err := w.SetDates("2024-03-01", "2024-03-04"); err != nil {
		t.Fatal(err)
	}
	if err := w.SetGuests(2, 0); err != nil {
		t.Fatal(err)
	}
	if err := w.SetGuestName("Pat Guest"); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	code, err := w.Confirm(ctx)
	if err != nil {
		t.Fatalf("Confirm() error: %v", err)
	}
	if code != "CONF-E2E" {
		t.Errorf("Confirm() = %q", code)
	}
	if w.State() != booking.StateCompleted {
		t.Errorf("State() = %s", w.State())
	}

	c.SignOut()
	if c.Session.IsAuthenticated() {
		t.Error("still authenticated after sign-out")
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	srv := fakeBackend(t)
	cfg := testConfig(t, srv.URL)

	first := New(cfg)
	if err := first.SignIn(context.Background(), "pat@example.com", "pw"); err != nil {
		t.Fatal(err)
	}

	// Same credentials file, new process.
	second := New(cfg)
	if !second.Session.IsAuthenticated() {
		t.Error("restored client is not authenticated")
	}
	if second.Session.Email() != "pat@example.com" {
		t.Errorf("restored email = %q", second.Session.Email())
	}
}

func TestProtectedActionPromptsWhenSignedOut(t *testing.T) {
	srv := fakeBackend(t)
	c := New(testConfig(t, srv.URL))

	err := c.Gate.Attempt(func() error {
		t.Error("protected action ran without a session")
		return nil
	})
	if !errors.Is(err, domain.ErrLoginRequired) {
		t.Fatalf("Attempt() error = %v, want ErrLoginRequired", err)
	}
	if !c.Session.PendingPrompt() {
		t.Error("PendingPrompt() = false")
	}
}
