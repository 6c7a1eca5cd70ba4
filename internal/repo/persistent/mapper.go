package persistent

import (
	"time"

	"snapfeed/internal/entity"
	"snapfeed/internal/model"
)

// postViewRow is the scan target for the feed query.
type postViewRow struct {
	ID        uint
	ImageURL  string
	Title     string
	Content   string
	CreatedAt time.Time
	FirstName string
	LastName  string
	Likes     int64
	IsLiked   bool
}

func toPostView(row *postViewRow) entity.PostView {
	return entity.PostView{
		ID:            row.ID,
		ImageURL:      row.ImageURL,
		Title:         row.Title,
		Content:       row.Content,
		CreatedAt:     row.CreatedAt,
		UserFirstName: row.FirstName,
		UserLastName:  row.LastName,
		Likes:         row.Likes,
		IsLiked:       row.IsLiked,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}
	return &entity.Post{
		ID:        m.ID,
		ImageURL:  m.ImageURL,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UserID:    m.UserID,
	}
}
