package entity

import "time"

type Post struct {
	ID        uint      `json:"id"`
	ImageURL  string    `json:"image_url"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id"`
}

// PostView is a Post enriched at read time with the owner's name, the
// aggregated like count and whether the requesting viewer has liked it.
// Nothing of it is stored.
type PostView struct {
	ID            uint      `json:"id"`
	ImageURL      string    `json:"image"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
	UserFirstName string    `json:"userFirstName"`
	UserLastName  string    `json:"userLastName"`
	Likes         int64     `json:"likes"`
	IsLiked       bool      `json:"isLiked"`
}
