package apitest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"triptales/internal/dto"
	"triptales/internal/utils"
)

func (s *Server) handleListFriends(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	s.mu.Lock()
	rows := make([]dto.FriendResponse, 0, len(s.friends[userID]))
	for _, rel := range s.friends[userID] {
		friend := dto.FriendUser{UserID: rel.UserID}
		if u, ok := s.users[rel.UserID]; ok {
			friend.Username = u.Username
			friend.ProfileImage = u.ProfileImage
		}
		rows = append(rows, dto.FriendResponse{FriendID: rel.FriendID, Friend: friend})
	}
	s.mu.Unlock()

	utils.WriteJSONResponse(w, http.StatusOK, rows)
}

func (s *Server) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.AddFriendRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.FriendID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "friend_id is required")
		return
	}

	s.mu.Lock()
	if _, ok := s.users[req.FriendID]; !ok {
		s.mu.Unlock()
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "No user with id "+req.FriendID)
		return
	}
	for _, rel := range s.friends[userID] {
		if rel.UserID == req.FriendID {
			s.mu.Unlock()
			utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", "Already friends")
			return
		}
	}
	rel := friendRecord{FriendID: uuid.NewString(), UserID: req.FriendID}
	s.friends[userID] = append(s.friends[userID], rel)
	s.mu.Unlock()

	utils.WriteJSONResponse(w, http.StatusCreated, dto.FriendResponse{
		FriendID: rel.FriendID,
		Friend:   dto.FriendUser{UserID: rel.UserID},
	})
}

func (s *Server) handleRemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}
	targetID := chi.URLParam(r, "userID")

	s.mu.Lock()
	rels := s.friends[userID]
	for i, rel := range rels {
		if rel.UserID == targetID {
			s.friends[userID] = append(rels[:i], rels[i+1:]...)
			s.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	s.mu.Unlock()
	utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Not friends with "+targetID)
}

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	s.mu.Lock()
	rows := make([]dto.BookmarkResponse, 0, len(s.bookmarks[userID]))
	for _, b := range s.bookmarks[userID] {
		rows = append(rows, dto.BookmarkResponse{BookmarkID: b.BookmarkID, TripID: b.TripID})
	}
	s.mu.Unlock()

	utils.WriteJSONResponse(w, http.StatusOK, rows)
}

func (s *Server) handleAddBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.AddBookmarkRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	s.mu.Lock()
	if _, ok := s.trips[req.TripID]; !ok {
		s.mu.Unlock()
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "No trip with id "+req.TripID)
		return
	}
	bookmark := bookmarkRecord{BookmarkID: uuid.NewString(), TripID: req.TripID}
	s.bookmarks[userID] = append(s.bookmarks[userID], bookmark)
	s.mu.Unlock()

	utils.WriteJSONResponse(w, http.StatusCreated, dto.BookmarkResponse{
		BookmarkID: bookmark.BookmarkID,
		TripID:     bookmark.TripID,
	})
}

func (s *Server) handleRemoveBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}
	bookmarkID := chi.URLParam(r, "bookmarkID")

	s.mu.Lock()
	rows := s.bookmarks[userID]
	for i, b := range rows {
		if b.BookmarkID == bookmarkID {
			s.bookmarks[userID] = append(rows[:i], rows[i+1:]...)
			s.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	s.mu.Unlock()
	utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "No bookmark with id "+bookmarkID)
}
