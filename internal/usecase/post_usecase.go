package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"snapfeed/internal/entity"
	"snapfeed/internal/repo/persistent"
	"snapfeed/pkg/logger"
	"snapfeed/pkg/queue"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const feedCacheTTL = 5 * time.Minute

type PostUseCase interface {
	CreatePost(ownerID uint, title, content string, image *multipart.FileHeader) (*entity.Post, error)
	ListPosts(viewerID uint, limit int) ([]entity.PostView, error)
	ToggleLike(viewerID, postID uint) (bool, error)
}

// ImageStore uploads a binary payload and returns the durable URL it is
// served from.
type ImageStore interface {
	Upload(key string, body io.Reader, contentType string) (string, error)
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	imageStore  ImageStore
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	imageStore ImageStore,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		imageStore:  imageStore,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

// CreatePost validates the submission, uploads the image and persists the
// post. Validation collects every violation before giving up, so the caller
// can show all of them at once. Exactly one upload and at most one insert
// happen per call; nothing is retried.
func (uc *postUseCase) CreatePost(ownerID uint, title, content string, image *multipart.FileHeader) (*entity.Post, error) {
	var messages []string

	if strings.TrimSpace(title) == "" {
		messages = append(messages, "Title is required.")
	}
	if strings.TrimSpace(content) == "" {
		messages = append(messages, "Content is required.")
	}
	if image == nil || image.Size == 0 {
		messages = append(messages, "Image is required.")
	}
	if len(messages) > 0 {
		return nil, &entity.ValidationError{Messages: messages}
	}

	src, err := image.Open()
	if err != nil {
		uc.logger.Error("Failed to open image payload: %v", err)
		return nil, entity.ErrUploadFailed
	}
	defer src.Close()

	contentType := image.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("posts/%s%s", uuid.New().String(), filepath.Ext(image.Filename))
	imageURL, err := uc.imageStore.Upload(key, src, contentType)
	if err != nil {
		// The cause stays internal; the submitter only sees the generic
		// message.
		uc.logger.Error("Image upload failed: %v", err)
		return nil, entity.ErrUploadFailed
	}

	post, err := uc.postRepo.InsertPost(imageURL, title, content, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.invalidateFeed("post_created", post.ID)

	return post, nil
}

// ListPosts serves the feed for viewerID, read-through cached in redis when
// a client is wired in. limit <= 0 returns all posts.
func (uc *postUseCase) ListPosts(viewerID uint, limit int) ([]entity.PostView, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("feed:viewer:%d:limit:%d", viewerID, limit)

	if uc.redisClient != nil {
		if cached, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var views []entity.PostView
			if err := json.Unmarshal([]byte(cached), &views); err == nil {
				return views, nil
			}
		}
	}

	views, err := uc.postRepo.ListPosts(viewerID, limit)
	if err != nil {
		return nil, err
	}

	if uc.redisClient != nil {
		if data, err := json.Marshal(views); err == nil {
			uc.redisClient.Set(ctx, cacheKey, data, feedCacheTTL)
		}
	}

	return views, nil
}

// ToggleLike flips viewerID's like on postID and reports the resulting
// state. The existence check answers the common unknown-id case without
// touching the likes table; the repository still maps a foreign key failure
// to entity.ErrPostNotFound for toggles racing a concurrent check.
func (uc *postUseCase) ToggleLike(viewerID, postID uint) (bool, error) {
	exists, err := uc.postRepo.PostExists(postID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, entity.ErrPostNotFound
	}

	liked, err := uc.postRepo.ToggleLike(postID, viewerID)
	if err != nil {
		return false, err
	}

	uc.invalidateFeed("like_toggled", postID)
	return liked, nil
}

// invalidateFeed drops every cached feed rendering and tells any external
// rendering layer the listing is stale. Both collaborators are optional and
// failures here never fail the write that triggered them.
func (uc *postUseCase) invalidateFeed(reason string, postID uint) {
	if uc.redisClient != nil {
		ctx := context.Background()
		iter := uc.redisClient.Scan(ctx, 0, "feed:*", 0).Iterator()
		for iter.Next(ctx) {
			uc.redisClient.Del(ctx, iter.Val())
		}
		if err := iter.Err(); err != nil {
			uc.logger.Warn("Failed to invalidate feed cache: %v", err)
		}
	}

	if uc.queueClient != nil {
		if err := uc.queueClient.PublishFeedStale(reason, postID); err != nil {
			uc.logger.Warn("Failed to publish feed stale event: %v", err)
		}
	}
}
