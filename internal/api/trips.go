package api

import (
	"context"
	"net/url"

	"triptales/internal/dto"
	"triptales/internal/models"
)

// CreateTrip posts a new trip. A non-2xx status comes back as
// *ServerError (401 as ErrUnauthorized); a 201 whose body cannot be
// decoded comes back as *DecodeError, which the submission workflow
// treats as non-fatal because the trip row may already exist server-side.
func (c *Client) CreateTrip(ctx context.Context, req dto.CreateTripRequest) (dto.TripResponse, error) {
	resp, err := c.Post(ctx, "/api/trips", req)
	if err != nil {
		return dto.TripResponse{}, err
	}
	var trip dto.TripResponse
	if err := decode(resp, &trip); err != nil {
		return dto.TripResponse{}, err
	}
	return trip, nil
}

// TripByID fetches one trip.
func (c *Client) TripByID(ctx context.Context, tripID string) (models.Trip, error) {
	resp, err := c.Get(ctx, "/api/trips/"+url.PathEscape(tripID))
	if err != nil {
		return models.Trip{}, err
	}
	var row dto.TripResponse
	if err := decode(resp, &row); err != nil {
		return models.Trip{}, err
	}
	return tripFromDTO(row), nil
}

// TripsByCountry lists trips for the bookmark screen's country filter.
func (c *Client) TripsByCountry(ctx context.Context, country string) ([]models.Trip, error) {
	resp, err := c.Get(ctx, "/api/trips/bookmark?country="+url.QueryEscape(country))
	if err != nil {
		return nil, err
	}
	var rows []dto.TripResponse
	if err := decode(resp, &rows); err != nil {
		return nil, err
	}
	trips := make([]models.Trip, 0, len(rows))
	for _, row := range rows {
		trips = append(trips, tripFromDTO(row))
	}
	return trips, nil
}

// AttachCompanion records one friend on a trip. Each attach call is an
// independent operation with no rollback semantics.
func (c *Client) AttachCompanion(ctx context.Context, tripID, userID string) error {
	resp, err := c.Post(ctx, "/api/trip-companions", dto.AttachCompanionRequest{
		TripID: tripID,
		UserID: userID,
	})
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

func tripFromDTO(row dto.TripResponse) models.Trip {
	return models.Trip{
		TripID:      row.TripID,
		Title:       row.Title,
		Description: row.Description,
		ImageURL:    row.Image,
		Latitude:    row.Latitude,
		Longitude:   row.Longitude,
		CountryID:   row.CountryID,
		OwnerUserID: row.OwnerID,
		Companions:  row.Companions,
	}
}
