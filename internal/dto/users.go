package dto

// UpdateUserRequest represents fields allowed to update on the profile.
// All fields are optional; only provided ones will be updated.
type UpdateUserRequest struct {
	Username     *string `json:"username,omitempty"`
	Email        *string `json:"email,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// UserResponse represents user data in API responses
type UserResponse struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image,omitempty"`
}
