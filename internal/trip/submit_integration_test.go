package trip_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triptales/internal/api"
	"triptales/internal/apitest"
	"triptales/internal/credstore"
	"triptales/internal/models"
	"triptales/internal/session"
	"triptales/internal/trip"
	"triptales/internal/upload"
)

// Full-stack pass: persisted session, bearer-authenticated API client,
// image upload, and the submission workflow against the fake backend.
func TestSubmit_EndToEnd(t *testing.T) {
	backend := apitest.New()
	backend.SeedCountry("jp-1", "Japan", "")
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	imageHost := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://res.cloudinary.com/triptales/img.jpg",
		})
	}))
	t.Cleanup(imageHost.Close)

	_, err := backend.SeedUser("breeze", "breeze@example.com", "pw123456")
	require.NoError(t, err)
	friendID, err := backend.SeedUser("mj", "mj@example.com", "pw123456")
	require.NoError(t, err)

	store, err := credstore.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	sessions, err := session.NewManager(store)
	require.NoError(t, err)

	client := api.NewClient(srv.URL, 5*time.Second, sessions, nil)

	token, id, err := client.Login(context.Background(), "breeze", "pw123456")
	require.NoError(t, err)
	require.NoError(t, sessions.Login(token, id))

	uploader := upload.New(imageHost.URL, "triptales", "triptales", 5*time.Second)
	submitter := trip.NewSubmitter(client, uploader, nil)

	lat, lon := 43.06, 141.35
	result, err := submitter.Submit(context.Background(), models.TripDraft{
		Title:        "Hokkaido Trip",
		Description:  "Snow!",
		LocationName: "Sapporo, Japan",
		ImageBytes:   []byte{0xFF, 0xD8},
		Latitude:     &lat,
		Longitude:    &lon,
		CompanionIDs: []string{friendID},
	})

	require.NoError(t, err)
	require.NotEmpty(t, result.TripID)
	assert.Equal(t, 1, result.Attached())
	assert.Nil(t, result.AttachErr)
	assert.Equal(t, []string{friendID}, backend.TripCompanions(result.TripID))

	detail, err := client.TripByID(context.Background(), result.TripID)
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/triptales/img.jpg", detail.ImageURL)
	assert.Equal(t, "jp-1", detail.CountryID)
}

// Resubmitting after a failure creates a second trip: there is no
// idempotency key and no dedup check.
func TestSubmit_ResubmissionCreatesDuplicate(t *testing.T) {
	backend := apitest.New()
	backend.SeedCountry("jp-1", "Japan", "")
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	_, err := backend.SeedUser("breeze", "breeze@example.com", "pw123456")
	require.NoError(t, err)

	anon := api.NewClient(srv.URL, 5*time.Second, nil, nil)
	token, _, err := anon.Login(context.Background(), "breeze", "pw123456")
	require.NoError(t, err)
	client := api.NewClient(srv.URL, 5*time.Second, staticToken(token), nil)

	submitter := trip.NewSubmitter(client, nil, nil)
	draft := models.TripDraft{
		Title:        "Hokkaido Trip",
		Description:  "Snow!",
		LocationName: "Sapporo, Japan",
	}

	_, err = submitter.Submit(context.Background(), draft)
	require.NoError(t, err)
	_, err = submitter.Submit(context.Background(), draft)
	require.NoError(t, err)

	assert.Equal(t, 2, backend.TripCount())
}

// staticToken is a fixed-token TokenSource for tests that skip the
// session manager.
type staticToken string

func (s staticToken) CurrentToken() (string, bool) {
	return string(s), s != ""
}
