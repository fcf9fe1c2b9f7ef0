package credstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triptales/internal/credstore"
	"triptales/internal/models"
)

func testSession() models.Session {
	return models.Session{
		Token:           "tok-1",
		UserID:          "u1",
		Username:        "breeze",
		Email:           "breeze@example.com",
		ExpiresAt:       time.Now().Add(24 * time.Hour).Truncate(time.Second),
		ProfileImageURL: "https://cdn.example.com/p.jpg",
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store, err := credstore.Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	want := testSession()
	require.NoError(t, store.SaveSession(want))

	got, ok, err := store.LoadSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want.Token, got.Token)
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.Username, got.Username)
	assert.Equal(t, want.Email, got.Email)
	assert.Equal(t, want.ProfileImageURL, got.ProfileImageURL)
	assert.WithinDuration(t, want.ExpiresAt, got.ExpiresAt, time.Second)
}

func TestLoadFromEmptyStoreIsLoggedOut(t *testing.T) {
	store, err := credstore.Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	sess, ok, err := store.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, sess.LoggedIn())
}

func TestClearRemovesAllFields(t *testing.T) {
	store, err := credstore.Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveSession(testSession()))
	require.NoError(t, store.Clear())

	sess, ok, err := store.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, sess.Token)
	assert.Empty(t, sess.Email)
	assert.Empty(t, sess.ProfileImageURL)
}

func TestSessionSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := credstore.Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.SaveSession(testSession()))
	require.NoError(t, store.Close())

	reopened, err := credstore.Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := reopened.LoadSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-1", got.Token)
	assert.Equal(t, "breeze", got.Username)
}
