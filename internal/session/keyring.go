package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "cruisebase-cli"
	keyringKey     = "session"
)

// KeyringBackend persists the session as a JSON blob in the OS
// keychain/credential manager under a single entry.
type KeyringBackend struct{}

func NewKeyringBackend() *KeyringBackend {
	return &KeyringBackend{}
}

func (b *KeyringBackend) Save(s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := keyring.Set(keyringService, keyringKey, string(data)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (b *KeyringBackend) Load() (Session, error) {
	raw, err := keyring.Get(keyringService, keyringKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return Session{}, ErrNotFound
		}
		return Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Session{}, fmt.Errorf("failed to parse stored session: %w", err)
	}
	return s, nil
}

func (b *KeyringBackend) Delete() error {
	if err := keyring.Delete(keyringService, keyringKey); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already cleared
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
