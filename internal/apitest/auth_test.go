package apitest_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"triptales/internal/api"
	"triptales/internal/apitest"
	"triptales/internal/dto"
)

type staticToken string

func (s staticToken) CurrentToken() (string, bool) {
	return string(s), s != ""
}

// Login reads account fields after releasing the state lock, so it must
// operate on a copy; run it against a storm of profile updates for the
// same account and require every call to succeed. The race detector turns
// any shared read into a hard failure here.
func TestLogin_ConcurrentWithProfileUpdate(t *testing.T) {
	backend := apitest.New()
	_, err := backend.SeedUser("breeze", "breeze@example.com", "pw123456")
	require.NoError(t, err)

	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	anon := api.NewClient(srv.URL, 5*time.Second, nil, nil)
	token, _, err := anon.Login(context.Background(), "breeze", "pw123456")
	require.NoError(t, err)
	authed := api.NewClient(srv.URL, 5*time.Second, staticToken(token), nil)

	const rounds = 20
	errs := make(chan error, rounds*2)
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _, err := anon.Login(context.Background(), "breeze", "pw123456")
			errs <- err
		}()
		go func() {
			defer wg.Done()
			image := "https://img.example.com/breeze.png"
			_, err := authed.UpdateUser(context.Background(), dto.UpdateUserRequest{
				ProfileImage: &image,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
