package apitest

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"triptales/internal/dto"
	"triptales/internal/utils"
)

func (s *Server) handleListCountries(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rows := make([]dto.CountryResponse, 0, len(s.countries))
	for _, c := range s.countries {
		rows = append(rows, dto.CountryResponse{CountryID: c.ID, Name: c.Name, CountryImage: c.Image})
	}
	s.mu.Unlock()
	utils.WriteJSONResponse(w, http.StatusOK, rows)
}

func (s *Server) handleCountryByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "name query parameter is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.countries {
		if strings.EqualFold(c.Name, name) {
			utils.WriteJSONResponse(w, http.StatusOK, dto.CountryResponse{
				CountryID:    c.ID,
				Name:         c.Name,
				CountryImage: c.Image,
			})
			return
		}
	}
	utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "No country named "+name)
}

func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" || req.CountryID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "title, description, country_id are required")
		return
	}

	s.mu.Lock()
	countryKnown := false
	for _, c := range s.countries {
		if c.ID == req.CountryID {
			countryKnown = true
			break
		}
	}
	if !countryKnown {
		s.mu.Unlock()
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "unknown country_id")
		return
	}

	trip := &tripRecord{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CountryID:   req.CountryID,
		OwnerID:     userID,
		CreatedAt:   time.Now(),
	}
	if req.Image != nil {
		trip.Image = *req.Image
	}
	s.trips[trip.ID] = trip
	resp := tripResponse(trip, nil)
	s.mu.Unlock()

	utils.WriteJSONResponse(w, http.StatusCreated, resp)
}

func (s *Server) handleTripDetail(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")

	s.mu.Lock()
	trip, ok := s.trips[tripID]
	if !ok {
		s.mu.Unlock()
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "No trip with id "+tripID)
		return
	}
	resp := tripResponse(trip, s.companions[tripID])
	s.mu.Unlock()

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

func (s *Server) handleTripsByCountry(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")

	s.mu.Lock()
	var countryID string
	for _, c := range s.countries {
		if strings.EqualFold(c.Name, country) {
			countryID = c.ID
			break
		}
	}
	rows := make([]dto.TripResponse, 0)
	for _, trip := range s.trips {
		// No country filter lists everything; an unknown country
		// matches nothing.
		if country == "" || trip.CountryID == countryID {
			rows = append(rows, tripResponse(trip, s.companions[trip.ID]))
		}
	}
	s.mu.Unlock()

	utils.WriteJSONResponse(w, http.StatusOK, rows)
}

func (s *Server) handleAttachCompanion(w http.ResponseWriter, r *http.Request) {
	var req dto.AttachCompanionRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.TripID == "" || req.UserID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and user_id are required")
		return
	}

	s.mu.Lock()
	if _, ok := s.trips[req.TripID]; !ok {
		s.mu.Unlock()
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "No trip with id "+req.TripID)
		return
	}
	s.companions[req.TripID] = append(s.companions[req.TripID], req.UserID)
	s.mu.Unlock()

	utils.WriteJSONResponse(w, http.StatusCreated, dto.AttachCompanionResponse{
		TripCompanionID: uuid.NewString(),
		TripID:          req.TripID,
		UserID:          req.UserID,
	})
}

func tripResponse(trip *tripRecord, companions []string) dto.TripResponse {
	return dto.TripResponse{
		TripID:      trip.ID,
		Title:       trip.Title,
		Description: trip.Description,
		Image:       trip.Image,
		Latitude:    trip.Latitude,
		Longitude:   trip.Longitude,
		CountryID:   trip.CountryID,
		OwnerID:     trip.OwnerID,
		Companions:  companions,
		CreatedAt:   trip.CreatedAt.Format(time.RFC3339),
	}
}
