package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"triptales/internal/dto"
	"triptales/internal/models"
)

// authEnvelope covers both shapes the auth endpoints answer with: the
// token payload on success, or {"error": "..."} with any status on
// failure. The legacy backend does not reserve error bodies for non-2xx
// statuses, so the error field is probed first.
type authEnvelope struct {
	Token    string       `json:"token"`
	ExpireAt string       `json:"expire_at"`
	User     dto.AuthUser `json:"user"`
	Error    string       `json:"error"`
}

// Login exchanges credentials for a bearer token and identity.
func (c *Client) Login(ctx context.Context, username, password string) (string, models.Identity, error) {
	return c.authenticate(ctx, "/api/auth/login", dto.LoginRequest{
		Username: username,
		Password: password,
	})
}

// Register creates an account and returns the issued token and identity.
func (c *Client) Register(ctx context.Context, username, email, password string) (string, models.Identity, error) {
	return c.authenticate(ctx, "/api/auth/register", dto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (string, models.Identity, error) {
	resp, err := c.Post(ctx, path, body)
	if err != nil {
		return "", models.Identity{}, err
	}

	var envelope authEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return "", models.Identity{}, &DecodeError{Err: err}
	}
	if envelope.Error != "" {
		return "", models.Identity{}, fmt.Errorf("authentication failed: %s", envelope.Error)
	}
	if envelope.Token == "" {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return "", models.Identity{}, &ServerError{Status: resp.StatusCode, Body: resp.Body}
		}
		return "", models.Identity{}, &DecodeError{Err: fmt.Errorf("auth response missing token")}
	}

	id := models.Identity{
		UserID:          envelope.User.UserID,
		Username:        envelope.User.Username,
		Email:           envelope.User.Email,
		ProfileImageURL: envelope.User.ProfileImage,
	}
	if envelope.ExpireAt != "" {
		if t, perr := time.Parse(time.RFC3339, envelope.ExpireAt); perr == nil {
			id.ExpiresAt = t
		}
	}
	return envelope.Token, id, nil
}

// UpdateUser updates profile fields on the backend and returns the
// refreshed user record.
func (c *Client) UpdateUser(ctx context.Context, req dto.UpdateUserRequest) (dto.UserResponse, error) {
	resp, err := c.Put(ctx, "/api/users/update", req)
	if err != nil {
		return dto.UserResponse{}, err
	}
	var user dto.UserResponse
	if err := decode(resp, &user); err != nil {
		return dto.UserResponse{}, err
	}
	return user, nil
}
