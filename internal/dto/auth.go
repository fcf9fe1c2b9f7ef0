package dto

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser represents the user object nested in an auth response
type AuthUser struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image"`
}

// AuthResponse represents the response after successful authentication.
// ExpireAt is RFC 3339. On failure the backend answers with ErrorResponse
// instead, so callers must probe for the error envelope before decoding.
type AuthResponse struct {
	Token    string   `json:"token"`
	ExpireAt string   `json:"expire_at"`
	User     AuthUser `json:"user"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
