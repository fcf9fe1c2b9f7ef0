package models

import "time"

// Session is the locally persisted authentication state for the signed-in
// user. It is created on successful login or registration and destroyed on
// logout. A session counts as logged in iff Token is non-empty.
type Session struct {
	Token           string
	UserID          string
	Username        string
	Email           string
	ExpiresAt       time.Time
	ProfileImageURL string
}

// LoggedIn reports whether the session carries a usable bearer token.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// Identity is the subset of Session captured from an auth response. The
// token travels separately because login/logout own its lifecycle.
type Identity struct {
	UserID          string
	Username        string
	Email           string
	ExpiresAt       time.Time
	ProfileImageURL string
}
