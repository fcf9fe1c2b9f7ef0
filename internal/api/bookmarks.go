package api

import (
	"context"
	"net/url"

	"triptales/internal/dto"
	"triptales/internal/models"
)

// Bookmarks lists the user's saved trips.
func (c *Client) Bookmarks(ctx context.Context) ([]models.Bookmark, error) {
	resp, err := c.Get(ctx, "/api/bookmarks")
	if err != nil {
		return nil, err
	}
	var rows []dto.BookmarkResponse
	if err := decode(resp, &rows); err != nil {
		return nil, err
	}
	bookmarks := make([]models.Bookmark, 0, len(rows))
	for _, row := range rows {
		bookmarks = append(bookmarks, models.Bookmark{
			BookmarkID: row.BookmarkID,
			TripID:     row.TripID,
		})
	}
	return bookmarks, nil
}

// AddBookmark saves a trip.
func (c *Client) AddBookmark(ctx context.Context, tripID string) (models.Bookmark, error) {
	resp, err := c.Post(ctx, "/api/bookmarks", dto.AddBookmarkRequest{TripID: tripID})
	if err != nil {
		return models.Bookmark{}, err
	}
	var row dto.BookmarkResponse
	if err := decode(resp, &row); err != nil {
		return models.Bookmark{}, err
	}
	return models.Bookmark{BookmarkID: row.BookmarkID, TripID: row.TripID}, nil
}

// RemoveBookmark deletes a saved trip by bookmark id.
func (c *Client) RemoveBookmark(ctx context.Context, bookmarkID string) error {
	resp, err := c.Delete(ctx, "/api/bookmarks/"+url.PathEscape(bookmarkID))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}
