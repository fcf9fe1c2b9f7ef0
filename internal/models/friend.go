package models

// Friend is a relationship between the signed-in user and another user.
// Friends populate the companion picker; they are independent of any trip
// until a submission attaches them.
type Friend struct {
	FriendID        string
	UserID          string
	Username        string
	ProfileImageURL string
}

// Bookmark marks a trip the user saved for later.
type Bookmark struct {
	BookmarkID string
	TripID     string
}
