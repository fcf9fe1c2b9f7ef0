package models

// TripDraft is the transient form state for a single submission attempt.
// It lives only for the duration of the submit workflow and is never
// persisted, whether the submission succeeds or fails.
type TripDraft struct {
	Title        string
	Description  string
	ImageBytes   []byte
	Latitude     *float64
	Longitude    *float64
	CompanionIDs []string
	LocationName string
}

// HasImage reports whether the user attached a photo to the draft.
func (d TripDraft) HasImage() bool {
	return len(d.ImageBytes) > 0
}

// Trip is the server-owned journaling entry. It is created through the
// submission workflow and never cached locally beyond the current screen.
type Trip struct {
	TripID      string
	Title       string
	Description string
	ImageURL    string
	Latitude    *float64
	Longitude   *float64
	CountryID   string
	OwnerUserID string
	Companions  []string
}
