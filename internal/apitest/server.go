// Package apitest is an in-memory stand-in for the TripTales backend. It
// implements every endpoint the client consumes with the same envelopes
// the production API answers with, so the SDK can be exercised end to end
// without network access. The test suite mounts it in httptest servers;
// cmd/devserver runs it standalone for local development.
package apitest

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

// User is one account held by the fake backend.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash []byte
	ProfileImage string
}

type countryRecord struct {
	ID    string
	Name  string
	Image string
}

type tripRecord struct {
	ID          string
	Title       string
	Description string
	Image       string
	Latitude    *float64
	Longitude   *float64
	CountryID   string
	OwnerID     string
	CreatedAt   time.Time
}

type friendRecord struct {
	FriendID string
	UserID   string
}

type bookmarkRecord struct {
	BookmarkID string
	TripID     string
}

// Server holds the fake backend's state. All maps are guarded by one
// mutex; the workload is test traffic, not production load.
type Server struct {
	jwtSecret string
	tokenTTL  time.Duration

	mu         sync.Mutex
	users      map[string]*User // by id
	countries  []countryRecord
	trips      map[string]*tripRecord
	companions map[string][]string         // trip id -> user ids
	friends    map[string][]friendRecord   // owner id -> relationships
	bookmarks  map[string][]bookmarkRecord // owner id -> bookmarks

	// forced maps "METHOD /path" to a status code; matching requests
	// answer that status with an error envelope instead of running the
	// handler. Tests use it to inject failures per route.
	forced map[string]int

	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithJWTSecret overrides the token signing secret.
func WithJWTSecret(secret string) Option {
	return func(s *Server) { s.jwtSecret = secret }
}

// WithTokenTTL overrides the issued-token lifetime.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) { s.tokenTTL = ttl }
}

// New builds a fake backend with an empty state.
func New(opts ...Option) *Server {
	s := &Server{
		jwtSecret:  "apitest-secret",
		tokenTTL:   24 * time.Hour,
		users:      make(map[string]*User),
		trips:      make(map[string]*tripRecord),
		companions: make(map[string][]string),
		friends:    make(map[string][]friendRecord),
		bookmarks:  make(map[string][]bookmarkRecord),
		forced:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.buildRouter()
	return s
}

// Handler returns the HTTP handler for mounting in httptest or a real
// listener.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(s.forcedStatusMiddleware)

	r.Post("/api/auth/register", s.handleRegister)
	r.Post("/api/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Put("/api/users/update", s.handleUpdateUser)

		r.Get("/api/countries", s.handleListCountries)
		r.Get("/api/countries/by-name", s.handleCountryByName)

		r.Post("/api/trips", s.handleCreateTrip)
		r.Get("/api/trips/bookmark", s.handleTripsByCountry)
		r.Get("/api/trips/{tripID}", s.handleTripDetail)
		r.Post("/api/trip-companions", s.handleAttachCompanion)

		r.Get("/api/friends", s.handleListFriends)
		r.Post("/api/friends", s.handleAddFriend)
		r.Delete("/api/friends/{userID}", s.handleRemoveFriend)

		r.Get("/api/bookmarks", s.handleListBookmarks)
		r.Post("/api/bookmarks", s.handleAddBookmark)
		r.Delete("/api/bookmarks/{bookmarkID}", s.handleRemoveBookmark)
	})

	return r
}

// ForceStatus makes every subsequent "METHOD path" request answer status
// with an error envelope. Pass status 0 to clear the override.
func (s *Server) ForceStatus(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	if status == 0 {
		delete(s.forced, key)
		return
	}
	s.forced[key] = status
}

func (s *Server) forcedStatusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status, ok := s.forced[r.Method+" "+r.URL.Path]
		s.mu.Unlock()
		if ok {
			http.Error(w, `{"error":"forced failure"}`, status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SeedCountry adds a country to the reference data.
func (s *Server) SeedCountry(id, name, image string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countries = append(s.countries, countryRecord{ID: id, Name: name, Image: image})
}

// UserByUsername looks up a seeded or registered user.
func (s *Server) UserByUsername(username string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return *u, true
		}
	}
	return User{}, false
}

// TripCompanions returns the user ids attached to a trip.
func (s *Server) TripCompanions(tripID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.companions[tripID]))
	copy(out, s.companions[tripID])
	return out
}

// TripCount reports how many trips exist, for duplicate-submission checks.
func (s *Server) TripCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.trips)
}
