package dto

// FriendUser represents the joined user record inside a friend entry
type FriendUser struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// FriendResponse represents one friend relationship with the joined user
type FriendResponse struct {
	FriendID string     `json:"friend_id"`
	Friend   FriendUser `json:"friend"`
}

// AddFriendRequest represents the payload to add a friend
type AddFriendRequest struct {
	FriendID string `json:"friend_id"`
}
