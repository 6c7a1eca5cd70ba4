package persistent

import (
	"fmt"

	"snapfeed/internal/entity"
	"snapfeed/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	ListPosts(viewerID uint, limit int) ([]entity.PostView, error)
	InsertPost(imageURL, title, content string, ownerID uint) (*entity.Post, error)
	ToggleLike(postID, userID uint) (bool, error)
	PostExists(postID uint) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// ListPosts returns the feed ordered newest first, each post carrying its
// aggregated like count and whether viewerID has liked it. A limit <= 0
// returns all rows. The single query gives a consistent snapshot relative to
// concurrent toggles.
func (r *postRepository) ListPosts(viewerID uint, limit int) ([]entity.PostView, error) {
	query := r.db.Model(&model.PostModel{}).
		Select(`posts.id, posts.image_url, posts.title, posts.content, posts.created_at,
			users.first_name, users.last_name,
			COUNT(likes.post_id) AS likes,
			EXISTS (
				SELECT 1 FROM likes viewer_likes
				WHERE viewer_likes.post_id = posts.id AND viewer_likes.user_id = ?
			) AS is_liked`, viewerID).
		Joins("INNER JOIN users ON users.id = posts.user_id").
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Group("posts.id, users.first_name, users.last_name").
		Order("posts.created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []postViewRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]entity.PostView, len(rows))
	for i := range rows {
		views[i] = toPostView(&rows[i])
	}
	return views, nil
}

// InsertPost persists the row and returns it as an entity, created_at
// included, so callers can answer with what was actually stored.
func (r *postRepository) InsertPost(imageURL, title, content string, ownerID uint) (*entity.Post, error) {
	postModel := &model.PostModel{
		ImageURL: imageURL,
		Title:    title,
		Content:  content,
		UserID:   ownerID,
	}

	if err := r.db.Create(postModel).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("owner user %d does not exist: %w", ownerID, entity.ErrConstraintViolation)
		}
		return nil, err
	}
	return ToPostEntity(postModel), nil
}

// ToggleLike flips userID's like on postID inside one transaction: delete
// first, insert when nothing was deleted. The composite primary key on likes
// is the backstop for racing toggles; when the insert loses such a race the
// duplicate-key failure is treated as "already liked". Which of two racing
// toggles wins is a race outcome, but a (user, post) pair can never hold two
// rows.
func (r *postRepository) ToggleLike(postID, userID uint) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.LikeModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}

		if err := tx.Create(&model.LikeModel{UserID: userID, PostID: postID}).Error; err != nil {
			if isUniqueViolation(err) {
				liked = true
				return nil
			}
			if isForeignKeyViolation(err) {
				return entity.ErrPostNotFound
			}
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

func (r *postRepository) PostExists(postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("id = ?", postID).Count(&count).Error
	return count > 0, err
}
