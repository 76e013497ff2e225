package store_test

import (
	"path/filepath"
	"testing"

	"github.com/lakeside/hotel-client/internal/store"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	s := store.NewFileStore(path)

	if saved, err := s.Load(); err != nil || saved != nil {
		t.Fatalf("Load() on fresh store = (%+v, %v), want (nil, nil)", saved, err)
	}

	creds := store.Credentials{
		Token:  "jwt-abc",
		UserID: "42",
		Email:  "pat@example.com",
		Roles:  []string{"USER"},
	}
	if err := s.Save(creds); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	saved, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if saved == nil || saved.Token != "jwt-abc" || saved.UserID != "42" || saved.Email != "pat@example.com" {
		t.Errorf("Load() = %+v", saved)
	}
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := store.NewFileStore(path)

	if err := s.Save(store.Credentials{Token: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if saved, err := s.Load(); err != nil || saved != nil {
		t.Errorf("Load() after clear = (%+v, %v), want (nil, nil)", saved, err)
	}

	// Clearing an already-empty store is fine.
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear() error: %v", err)
	}
}

func TestFileStoreIgnoresEmptyToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := store.NewFileStore(path)

	if err := s.Save(store.Credentials{Token: ""}); err != nil {
		t.Fatal(err)
	}
	if saved, err := s.Load(); err != nil || saved != nil {
		t.Errorf("Load() = (%+v, %v), want empty token treated as no session", saved, err)
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	m := store.NewMemory()
	creds := store.Credentials{Token: "t", Email: "a@example.com"}
	if err := m.Save(creds); err != nil {
		t.Fatal(err)
	}

	loaded, err := m.Load()
	if err != nil || loaded == nil {
		t.Fatalf("Load() = (%+v, %v)", loaded, err)
	}
	loaded.Token = "mutated"

	again, _ := m.Load()
	if again.Token != "t" {
		t.Error("Load() exposes internal state")
	}
}
