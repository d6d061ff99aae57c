package session

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dnlklmn/wpr-presence/internal/kvstore"
	"github.com/dnlklmn/wpr-presence/internal/models"

	"go.uber.org/zap"
)

// Storage keys shared with the original web client.
const (
	keyToken   = "token"
	keyExpires = "tokenExpires" // Unix seconds, decimal string
	keyUser    = "user"         // JSON-encoded User
)

// Manager persists the session token, its expiry and the cached user in
// the local key-value store.
type Manager struct {
	store  kvstore.Store
	now    func() time.Time
	logger *zap.Logger
}

// NewManager creates a session manager on top of the given store.
func NewManager(store kvstore.Store, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		now:    time.Now,
		logger: logger,
	}
}

// WithClock overrides the time source, for tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Save stores the token, its expiry instant and the authenticated user.
func (m *Manager) Save(token string, expires int64, user models.User) error {
	if err := m.store.Set(keyToken, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	if err := m.store.Set(keyExpires, strconv.FormatInt(expires, 10)); err != nil {
		return fmt.Errorf("save token expiry: %w", err)
	}
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := m.store.Set(keyUser, string(userData)); err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	m.logger.Debug("Session saved",
		zap.String("username", user.Username),
		zap.Int64("expires", expires),
	)
	return nil
}

// Token returns the stored session token, or "" when none is stored.
func (m *Manager) Token() (string, error) {
	token, _, err := m.store.Get(keyToken)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return token, nil
}

// User returns the cached authenticated user, if any.
func (m *Manager) User() (*models.User, error) {
	data, ok, err := m.store.Get(keyUser)
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("parse cached user: %w", err)
	}
	return &user, nil
}

// IsLoggedIn reports whether a token and an expiry are stored and the
// current instant is strictly before the expiry.
func (m *Manager) IsLoggedIn() bool {
	token, ok, err := m.store.Get(keyToken)
	if err != nil || !ok || token == "" {
		return false
	}
	expiresStr, ok, err := m.store.Get(keyExpires)
	if err != nil || !ok {
		return false
	}
	expires, err := strconv.ParseInt(expiresStr, 10, 64)
	if err != nil {
		return false
	}
	return m.now().Unix() < expires
}

// Clear removes token, expiry and cached user.
func (m *Manager) Clear() error {
	for _, key := range []string{keyToken, keyExpires, keyUser} {
		if err := m.store.Delete(key); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	m.logger.Debug("Session cleared")
	return nil
}
