package session_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triptales/internal/models"
	"triptales/internal/session"
)

// memStore is an in-memory test double for session.CredentialStore.
type memStore struct {
	sess    models.Session
	saveErr error
}

func (m *memStore) SaveSession(sess models.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sess = sess
	return nil
}

func (m *memStore) LoadSession() (models.Session, bool, error) {
	return m.sess, m.sess.LoggedIn(), nil
}

func (m *memStore) Clear() error {
	m.sess = models.Session{}
	return nil
}

var _ session.CredentialStore = (*memStore)(nil)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestLoginThenCurrentToken(t *testing.T) {
	m, err := session.NewManager(&memStore{})
	require.NoError(t, err)

	require.NoError(t, m.Login("tok-1", models.Identity{UserID: "u1", Username: "breeze"}))

	token, ok := m.CurrentToken()
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, session.LoggedIn, m.State())
}

func TestLogoutClearsEverything(t *testing.T) {
	store := &memStore{}
	m, err := session.NewManager(store)
	require.NoError(t, err)
	require.NoError(t, m.Login("tok-1", models.Identity{
		UserID:          "u1",
		Email:           "breeze@example.com",
		ProfileImageURL: "https://cdn.example.com/p.jpg",
	}))

	require.NoError(t, m.Logout())

	_, ok := m.CurrentToken()
	assert.False(t, ok)
	assert.Equal(t, session.LoggedOut, m.State())
	assert.Empty(t, store.sess.Token)
	assert.Empty(t, store.sess.Email)
	assert.Empty(t, store.sess.ProfileImageURL)
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	m, err := session.NewManager(&memStore{})
	require.NoError(t, err)

	assert.Error(t, m.Login("", models.Identity{}))
}

func TestLoginSaveFailureLeavesLoggedOut(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	m, err := session.NewManager(store)
	require.NoError(t, err)

	require.Error(t, m.Login("tok-1", models.Identity{}))

	_, ok := m.CurrentToken()
	assert.False(t, ok)
}

func TestManagerRestoresPersistedSession(t *testing.T) {
	store := &memStore{sess: models.Session{Token: "tok-1", Username: "breeze"}}

	m, err := session.NewManager(store)
	require.NoError(t, err)

	sess, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "breeze", sess.Username)
}

func TestSubscribersNotifiedSynchronously(t *testing.T) {
	m, err := session.NewManager(&memStore{})
	require.NoError(t, err)

	var seen []session.State
	unsubscribe := m.Subscribe(func(s session.State) { seen = append(seen, s) })

	require.NoError(t, m.Login("tok-1", models.Identity{}))
	// Synchronous delivery: the notification happened before Login returned.
	require.Equal(t, []session.State{session.LoggedIn}, seen)

	require.NoError(t, m.Logout())
	require.Equal(t, []session.State{session.LoggedIn, session.LoggedOut}, seen)

	unsubscribe()
	require.NoError(t, m.Login("tok-2", models.Identity{}))
	assert.Len(t, seen, 2)
}

func TestLoginRecoversExpiryFromJWT(t *testing.T) {
	store := &memStore{}
	m, err := session.NewManager(store)
	require.NoError(t, err)

	expiresAt := time.Now().Add(7 * 24 * time.Hour).Truncate(time.Second)
	require.NoError(t, m.Login(signedToken(t, expiresAt), models.Identity{UserID: "u1"}))

	sess, ok := m.Current()
	require.True(t, ok)
	assert.WithinDuration(t, expiresAt, sess.ExpiresAt, time.Second)
}

func TestTokenExpiry(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	got, ok := session.TokenExpiry(signedToken(t, expiresAt))
	require.True(t, ok)
	assert.WithinDuration(t, expiresAt, got, time.Second)

	_, ok = session.TokenExpiry("not-a-jwt")
	assert.False(t, ok)
}
