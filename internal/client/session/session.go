// Package session holds the single authoritative answer to "who is using
// the app right now": the bearer credential and the lazily fetched profile.
// A Session is constructed once at application start and handed to whoever
// needs identity; there is no package-level instance.
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/asemenova/toolshare/internal/client/api"
	"github.com/asemenova/toolshare/internal/client/models"
	"github.com/asemenova/toolshare/internal/client/repositories/localdata"
	"github.com/asemenova/toolshare/internal/logging"
)

// tokenKey is the fixed local-storage key the credential lives under.
const tokenKey = "token"

// API is the slice of the transport the session needs.
type API interface {
	Login(ctx context.Context, creds api.Credentials) (string, error)
	Register(ctx context.Context, reg api.Registration) (*models.User, error)
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd api.ProfileUpdate) error
}

// Session keeps the in-memory credential and profile consistent with the
// backend and with persisted storage. All methods are safe for concurrent
// use.
type Session struct {
	mu      sync.Mutex
	token   string
	profile *models.User

	// fetchSeq tags profile-fetch attempts so a slow response cannot
	// overwrite the result of a newer one.
	fetchSeq atomic.Int64

	api   API
	store localdata.Repository
	log   logging.Logger
}

// New builds a Session seeded with the credential persisted in store, if
// any. The profile always starts unresolved.
func New(ctx context.Context, client API, store localdata.Repository, log logging.Logger) (*Session, error) {
	s := &Session{
		api:   client,
		store: store,
		log:   log.With("component", "session"),
	}
	saved, err := store.Get(ctx, tokenKey)
	if err != nil {
		return nil, err
	}
	s.token = string(saved)
	return s, nil
}

// Token returns the current credential, empty when anonymous. Session
// satisfies api.TokenSource so the transport reads the credential through
// here on every call.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsLoggedIn reports whether a credential is held.
func (s *Session) IsLoggedIn() bool { return s.Token() != "" }

// HasProfile reports whether the profile has been resolved.
func (s *Session) HasProfile() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile != nil
}

// IsAdmin reports whether the resolved profile carries the admin role.
// False whenever the profile is unresolved.
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.IsAdmin()
}

// Points returns the resolved profile's points balance, 0 when unresolved.
func (s *Session) Points() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return 0
	}
	return s.profile.Points
}

// Profile returns the resolved profile, or nil.
func (s *Session) Profile() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Login authenticates and, on success, adopts the returned token (memory
// and storage) and synchronously resolves the profile. A login rejected by
// the server leaves the previous credential untouched and surfaces the
// server's answer as *api.Error. A profile-fetch failure after a successful
// login leaves the session fully logged out; Login still reports the login
// call's own outcome.
func (s *Session) Login(ctx context.Context, creds api.Credentials) error {
	token, err := s.api.Login(ctx, creds)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.profile = nil
	s.mu.Unlock()

	if err := s.store.Set(ctx, tokenKey, []byte(token)); err != nil {
		s.log.Warn(ctx, "failed to persist credential", "error", err)
	}

	if err := s.FetchProfile(ctx); err != nil {
		s.log.Warn(ctx, "profile fetch after login failed", "error", err)
	}
	return nil
}

// Register creates an account. Session state is not touched; the caller
// logs in separately.
func (s *Session) Register(ctx context.Context, reg api.Registration) (*models.User, error) {
	return s.api.Register(ctx, reg)
}

// FetchProfile resolves the profile from the server. Without a credential
// it returns immediately and issues no call. Any failure is fatal to the
// session: the credential and profile are dropped and storage is purged.
//
// A result, success or failure, is committed only when the attempt is still
// the latest one issued; a superseded attempt changes nothing.
func (s *Session) FetchProfile(ctx context.Context) error {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	seq := s.fetchSeq.Add(1)

	profile, err := s.api.GetProfile(ctx)

	if seq != s.fetchSeq.Load() {
		s.log.Debug(ctx, "profile fetch superseded", "seq", seq)
		return nil
	}

	if err != nil {
		s.log.Warn(ctx, "profile fetch failed, dropping session", "error", err)
		s.Logout(ctx)
		return err
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	return nil
}

// UpdateProfile submits changes and, only when the server accepts them,
// re-resolves the profile from scratch. The update response body is never
// adopted directly.
func (s *Session) UpdateProfile(ctx context.Context, upd api.ProfileUpdate) error {
	if err := s.api.UpdateProfile(ctx, upd); err != nil {
		return err
	}
	return s.FetchProfile(ctx)
}

// Logout clears memory and persisted storage. It involves no network call
// and always succeeds; a storage failure is logged and the in-memory state
// is still cleared.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.profile = nil
	s.mu.Unlock()

	if err := s.store.Delete(ctx, tokenKey); err != nil {
		s.log.Warn(ctx, "failed to purge credential", "error", err)
	}
}

// TokenExpired reports whether the held credential carries an exp claim in
// the past. The claim is read without verifying the signature; the client
// has no key and the server remains the authority. Tokens without a
// readable exp claim are assumed live.
func (s *Session) TokenExpired(now time.Time) bool {
	token := s.Token()
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
