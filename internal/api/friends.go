package api

import (
	"context"
	"net/url"

	"triptales/internal/dto"
	"triptales/internal/models"
)

// Friends lists the signed-in user's friends with the joined user record,
// which is what populates the companion picker.
func (c *Client) Friends(ctx context.Context) ([]models.Friend, error) {
	resp, err := c.Get(ctx, "/api/friends")
	if err != nil {
		return nil, err
	}
	var rows []dto.FriendResponse
	if err := decode(resp, &rows); err != nil {
		return nil, err
	}
	friends := make([]models.Friend, 0, len(rows))
	for _, row := range rows {
		friends = append(friends, models.Friend{
			FriendID:        row.FriendID,
			UserID:          row.Friend.UserID,
			Username:        row.Friend.Username,
			ProfileImageURL: row.Friend.ProfileImage,
		})
	}
	return friends, nil
}

// AddFriend creates a friend relationship with the given user.
func (c *Client) AddFriend(ctx context.Context, userID string) error {
	resp, err := c.Post(ctx, "/api/friends", dto.AddFriendRequest{FriendID: userID})
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// RemoveFriend deletes the friend relationship with the given user.
func (c *Client) RemoveFriend(ctx context.Context, userID string) error {
	resp, err := c.Delete(ctx, "/api/friends/"+url.PathEscape(userID))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}
