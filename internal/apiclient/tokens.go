package apiclient

import (
	"context"
	"sync"

	"github.com/gracewaylabs/graceway-admin/pkg/logger"
)

// TokenPair is the access/refresh tuple representing an authenticated admin
// session. Both halves are always set or cleared together.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenManager owns the in-memory pair and keeps the persistent storage and
// the admin cookie in sync with it. Its operations never surface errors:
// persistence failures are logged and skipped, matching the contract that
// token bookkeeping cannot fail a request.
type TokenManager struct {
	mu      sync.RWMutex
	access  string
	refresh string

	storage TokenStorage
	cookies CookieSink
	logg    *logger.Logger
}

// NewTokenManager wires the storage and cookie capabilities and eagerly
// restores a persisted session when a storage adapter is present. A nil
// storage leaves the manager unauthenticated, which is the headless case.
func NewTokenManager(ctx context.Context, storage TokenStorage, cookies CookieSink, logg *logger.Logger) *TokenManager {
	if cookies == nil {
		cookies = NoopCookieSink{}
	}
	m := &TokenManager{
		storage: storage,
		cookies: cookies,
		logg:    logg,
	}
	if storage != nil {
		m.restore(ctx)
	}
	return m
}

// SetTokens stores both halves in memory, persists them, and mirrors the
// access token into the admin cookie.
func (m *TokenManager) SetTokens(ctx context.Context, access, refresh string) {
	m.mu.Lock()
	m.access = access
	m.refresh = refresh
	m.mu.Unlock()

	m.persist(ctx, StorageKeyAccessToken, access)
	m.persist(ctx, StorageKeyRefreshToken, refresh)
	m.cookies.SetAccessToken(access)
}

// ClearTokens wipes memory, storage, and the cookie. Safe to call when no
// tokens are held.
func (m *TokenManager) ClearTokens(ctx context.Context) {
	m.mu.Lock()
	m.access = ""
	m.refresh = ""
	m.mu.Unlock()

	if m.storage != nil {
		if err := m.storage.Delete(ctx, StorageKeyAccessToken, StorageKeyRefreshToken); err != nil && m.logg != nil {
			m.logg.Warn(m.logg.WithField(ctx, "error", err.Error()), "token storage delete failed")
		}
	}
	m.cookies.Clear()
}

// EnsureAdminCookie repairs a missing cookie from the persisted pair without
// forcing a new login. No-op when either half is absent.
func (m *TokenManager) EnsureAdminCookie(ctx context.Context) {
	if m.storage == nil {
		return
	}
	access, err := m.storage.Get(ctx, StorageKeyAccessToken)
	if err != nil || access == "" {
		return
	}
	refresh, err := m.storage.Get(ctx, StorageKeyRefreshToken)
	if err != nil || refresh == "" {
		return
	}
	m.SetTokens(ctx, access, refresh)
}

// AccessToken returns the current access token, empty when signed out.
func (m *TokenManager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.access
}

// RefreshToken returns the current refresh token, empty when signed out.
func (m *TokenManager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refresh
}

// Pair returns a snapshot of both halves.
func (m *TokenManager) Pair() TokenPair {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return TokenPair{AccessToken: m.access, RefreshToken: m.refresh}
}

func (m *TokenManager) restore(ctx context.Context) {
	access, err := m.storage.Get(ctx, StorageKeyAccessToken)
	if err != nil {
		m.warn(ctx, "token storage read failed", err)
		return
	}
	refresh, err := m.storage.Get(ctx, StorageKeyRefreshToken)
	if err != nil {
		m.warn(ctx, "token storage read failed", err)
		return
	}
	if access == "" || refresh == "" {
		return
	}
	m.mu.Lock()
	m.access = access
	m.refresh = refresh
	m.mu.Unlock()
}

func (m *TokenManager) persist(ctx context.Context, key, value string) {
	if m.storage == nil {
		return
	}
	if err := m.storage.Set(ctx, key, value); err != nil {
		m.warn(ctx, "token storage write failed", err)
	}
}

func (m *TokenManager) warn(ctx context.Context, msg string, err error) {
	if m.logg == nil {
		return
	}
	m.logg.Warn(m.logg.WithField(ctx, "error", err.Error()), msg)
}
