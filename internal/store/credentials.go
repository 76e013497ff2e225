package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Credentials is the persisted slice of a session: the raw bearer token plus
// the identity fields the UI needs without re-decoding it. Cleared in full
// on logout.
type Credentials struct {
	Token  string   `json:"token"`
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles,omitempty"`
}

// CredentialStore persists credentials across process restarts.
// Load returns (nil, nil) when nothing is stored.
type CredentialStore interface {
	Save(creds Credentials) error
	Load() (*Credentials, error)
	Clear() error
}

// FileStore keeps credentials in a mode-0600 JSON file, written atomically so
// a crash mid-save never leaves a half-written token behind.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials dir: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}

func (s *FileStore) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to decode credentials: %w", err)
	}
	if creds.Token == "" {
		return nil, nil
	}
	return &creds, nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

var _ CredentialStore = (*FileStore)(nil)

// Memory is an in-process CredentialStore for tests and ephemeral sessions.
type Memory struct {
	creds *Credentials
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(creds Credentials) error {
	c := creds
	m.creds = &c
	return nil
}

func (m *Memory) Load() (*Credentials, error) {
	if m.creds == nil {
		return nil, nil
	}
	c := *m.creds
	return &c, nil
}

func (m *Memory) Clear() error {
	m.creds = nil
	return nil
}

var _ CredentialStore = (*Memory)(nil)
