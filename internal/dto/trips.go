package dto

// CreateTripRequest represents the payload to create a trip.
// Image and coordinates are optional; omitted fields are absent from the
// JSON body rather than sent as empty values.
type CreateTripRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       *string  `json:"image,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	CountryID   string   `json:"country_id"`
}

// TripResponse represents a trip object in responses
type TripResponse struct {
	TripID      string   `json:"trip_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	CountryID   string   `json:"country_id"`
	OwnerID     string   `json:"owner_id"`
	Companions  []string `json:"companions,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// AttachCompanionRequest represents the payload to attach a friend to a trip
type AttachCompanionRequest struct {
	TripID string `json:"trip_id"`
	UserID string `json:"user_id"`
}

// AttachCompanionResponse represents the created trip-companion relationship
type AttachCompanionResponse struct {
	TripCompanionID string `json:"trip_companion_id"`
	TripID          string `json:"trip_id"`
	UserID          string `json:"user_id"`
}
