package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName   = "cruisebase"
	sessionFileName = "session.json"
)

// FileBackend persists the session as a JSON file under
// ~/.config/cruisebase/session.json. Used on hosts without a usable keyring
// (headless CI, containers).
type FileBackend struct {
	path string
}

// NewFileBackend creates a file backend rooted in the user's config
// directory. An explicit path overrides the default location (used in tests).
func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".config", configDirName, sessionFileName)
	}
	return &FileBackend{path: path}, nil
}

func (b *FileBackend) Save(s Session) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// The file holds bearer credentials, keep it owner-only.
	if err := os.WriteFile(b.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (b *FileBackend) Load() (Session, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNotFound
		}
		return Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("failed to parse session file: %w", err)
	}
	return s, nil
}

func (b *FileBackend) Delete() error {
	if err := os.Remove(b.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session file: %w", err)
	}
	return nil
}

// DefaultBackend returns the keyring backend when the OS keyring is usable and
// falls back to the file backend otherwise.
func DefaultBackend() Backend {
	probe := &KeyringBackend{}
	if _, err := probe.Load(); err == nil || errors.Is(err, ErrNotFound) {
		return probe
	}
	fileBackend, err := NewFileBackend("")
	if err != nil {
		return nil
	}
	return fileBackend
}
