package apitest

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"triptales/internal/dto"
	"triptales/internal/utils"
)

// authSuccess is the envelope the production backend answers auth calls
// with; failures use {"error": ...} regardless of status code.
type authSuccess struct {
	Token    string       `json:"token"`
	ExpireAt string       `json:"expire_at"`
	User     dto.AuthUser `json:"user"`
}

// SeedUser registers an account directly, bypassing the HTTP surface.
func (s *Server) SeedUser(username, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	s.mu.Lock()
	s.users[id] = &User{ID: id, Username: username, Email: email, PasswordHash: hash}
	s.mu.Unlock()
	return id, nil
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, map[string]string{
			"error": "username, email, and password are required",
		})
		return
	}

	s.mu.Lock()
	for _, u := range s.users {
		if u.Username == req.Username || u.Email == req.Email {
			s.mu.Unlock()
			utils.WriteJSONResponse(w, http.StatusConflict, map[string]string{
				"error": "email or username already registered",
			})
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		s.mu.Unlock()
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to hash password", err.Error())
		return
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	s.users[user.ID] = user
	// Copy while still holding the lock; a concurrent profile update may
	// mutate the stored struct as soon as it is released.
	snapshot := *user
	s.mu.Unlock()

	s.writeAuthSuccess(w, http.StatusCreated, snapshot)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	s.mu.Lock()
	var user User
	var found bool
	for _, u := range s.users {
		if u.Username == req.Username {
			// Copy under the lock so the password check and the response
			// never read a struct a concurrent update is mutating.
			user = *u
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found || bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)) != nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, map[string]string{
			"error": "invalid username or password",
		})
		return
	}

	s.writeAuthSuccess(w, http.StatusOK, user)
}

func (s *Server) writeAuthSuccess(w http.ResponseWriter, status int, user User) {
	token, expiresAt, err := s.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	utils.WriteJSONResponse(w, status, authSuccess{
		Token:    token,
		ExpireAt: expiresAt.Format(time.RFC3339),
		User: dto.AuthUser{
			UserID:       user.ID,
			Username:     user.Username,
			Email:        user.Email,
			ProfileImage: user.ProfileImage,
		},
	})
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.UpdateUserRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	s.mu.Lock()
	user, ok := s.users[userID]
	if !ok {
		s.mu.Unlock()
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "User not found")
		return
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}
	resp := dto.UserResponse{
		UserID:       user.ID,
		Username:     user.Username,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
	}
	s.mu.Unlock()

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}
