// Package session owns the authentication state machine: LoggedOut, then
// LoggedIn after a successful login, then LoggedOut again on logout. The
// manager is constructed explicitly and handed to every component that
// needs the token; there is no ambient global.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"triptales/internal/models"
)

// State is the authentication state visible to observers.
type State int

const (
	LoggedOut State = iota
	LoggedIn
)

// String returns the state name for logs.
func (s State) String() string {
	if s == LoggedIn {
		return "logged_in"
	}
	return "logged_out"
}

// CredentialStore is the persistence contract the manager writes through.
type CredentialStore interface {
	SaveSession(models.Session) error
	LoadSession() (models.Session, bool, error)
	Clear() error
}

// Manager is the single source of truth for authentication state.
// A mutex guards the session because callers may touch it from any
// goroutine; the original client relied on UI-thread confinement instead.
type Manager struct {
	mu      sync.Mutex
	store   CredentialStore
	current models.Session

	subMu   sync.Mutex
	subs    map[int]func(State)
	nextSub int
}

// NewManager builds a manager on top of store, restoring any persisted
// session so a restart resumes logged in.
func NewManager(store CredentialStore) (*Manager, error) {
	m := &Manager{
		store: store,
		subs:  make(map[int]func(State)),
	}
	sess, ok, err := store.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("while restoring session: %w", err)
	}
	if ok {
		m.current = sess
	}
	return m, nil
}

// Login persists the token plus identity and transitions to LoggedIn.
// Observers are notified synchronously before Login returns. If expiry is
// absent from the identity it is recovered from the token's exp claim.
func (m *Manager) Login(token string, id models.Identity) error {
	if token == "" {
		return fmt.Errorf("login requires a non-empty token")
	}

	expiresAt := id.ExpiresAt
	if expiresAt.IsZero() {
		if exp, ok := TokenExpiry(token); ok {
			expiresAt = exp
		}
	}

	sess := models.Session{
		Token:           token,
		UserID:          id.UserID,
		Username:        id.Username,
		Email:           id.Email,
		ExpiresAt:       expiresAt,
		ProfileImageURL: id.ProfileImageURL,
	}

	m.mu.Lock()
	if err := m.store.SaveSession(sess); err != nil {
		m.mu.Unlock()
		return err
	}
	m.current = sess
	m.mu.Unlock()

	m.notify(LoggedIn)
	return nil
}

// Logout clears the token and every identity-derived field, transitions to
// LoggedOut, and notifies observers. It never contacts the backend; there
// is no server-side session to invalidate.
func (m *Manager) Logout() error {
	m.mu.Lock()
	if err := m.store.Clear(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.current = models.Session{}
	m.mu.Unlock()

	m.notify(LoggedOut)
	return nil
}

// CurrentToken returns the bearer token; ok is false when logged out.
func (m *Manager) CurrentToken() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Token, m.current.LoggedIn()
}

// Current returns a copy of the session; ok is false when logged out.
func (m *Manager) Current() (models.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.current.LoggedIn()
}

// State reports the current authentication state.
func (m *Manager) State() State {
	if _, ok := m.CurrentToken(); ok {
		return LoggedIn
	}
	return LoggedOut
}

// Subscribe registers fn for synchronous state-change notification and
// returns the matching unsubscribe function.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

func (m *Manager) notify(s State) {
	m.subMu.Lock()
	fns := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// TokenExpiry extracts the exp claim from a bearer token without verifying
// the signature. The client has no signing key; expiry here is
// informational only and never enforced; an expired token simply fails
// server-side with a 401.
func TokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
