package dto

// BookmarkResponse represents one saved trip
type BookmarkResponse struct {
	BookmarkID string `json:"bookmark_id"`
	TripID     string `json:"trip_id"`
}

// AddBookmarkRequest represents the payload to bookmark a trip
type AddBookmarkRequest struct {
	TripID string `json:"trip_id"`
}
