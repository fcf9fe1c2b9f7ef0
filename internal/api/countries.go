package api

import (
	"context"
	"net/url"

	"triptales/internal/dto"
	"triptales/internal/models"
)

// Countries fetches the full country reference list.
func (c *Client) Countries(ctx context.Context) ([]models.Country, error) {
	resp, err := c.Get(ctx, "/api/countries")
	if err != nil {
		return nil, err
	}
	var rows []dto.CountryResponse
	if err := decode(resp, &rows); err != nil {
		return nil, err
	}
	countries := make([]models.Country, 0, len(rows))
	for _, row := range rows {
		countries = append(countries, models.Country{
			CountryID: row.CountryID,
			Name:      row.Name,
			ImageURL:  row.CountryImage,
		})
	}
	return countries, nil
}

// CountryByName resolves one country by its display name. A 404 surfaces
// as *ServerError; a shape mismatch as *DecodeError.
func (c *Client) CountryByName(ctx context.Context, name string) (models.Country, error) {
	resp, err := c.Get(ctx, "/api/countries/by-name?name="+url.QueryEscape(name))
	if err != nil {
		return models.Country{}, err
	}
	var row dto.CountryResponse
	if err := decode(resp, &row); err != nil {
		return models.Country{}, err
	}
	return models.Country{
		CountryID: row.CountryID,
		Name:      row.Name,
		ImageURL:  row.CountryImage,
	}, nil
}
