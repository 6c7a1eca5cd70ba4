package http

import (
	"errors"
	"net/http"
	"strconv"

	"snapfeed/internal/entity"
	"snapfeed/internal/usecase"
	"snapfeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase    usecase.PostUseCase
	defaultOwnerID uint
	logger         *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, defaultOwnerID uint, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase:    postUseCase,
		defaultOwnerID: defaultOwnerID,
		logger:         logger,
	}
}

// ListPosts godoc
// @Summary      List the feed
// @Description  Returns posts newest first, each with its like count and whether the viewer has liked it
// @Tags         posts
// @Produce      json
// @Param        limit query int false "Maximum number of posts to return; omit for all"
// @Param        X-Viewer-ID header int false "Viewer identity; defaults to the configured demo viewer"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	viewerID := c.GetUint("viewer_id")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	posts, err := h.postUseCase.ListPosts(viewerID, limit)
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Creates a post from a multipart submission of title, content and an image file. All validation problems are returned together.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        title formData string false "Post title"
// @Param        content formData string false "Post content"
// @Param        image formData file false "Image file (image/png or image/jpeg)"
// @Success      201  {object}  entity.Post
// @Failure      422  {object}  map[string][]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")

	// A missing file is a validation problem, collected with the others in
	// the use case rather than rejected here.
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	post, err := h.postUseCase.CreatePost(h.defaultOwnerID, title, content, image)
	if err != nil {
		var validationErr *entity.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErr.Messages})
		case errors.Is(err, entity.ErrUploadFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": entity.ErrUploadFailed.Error()})
		default:
			h.logger.Error("Failed to create post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		}
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ToggleLike godoc
// @Summary      Toggle a like
// @Description  Flips the viewer's like on a post: likes it when unliked, unlikes it when liked
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        X-Viewer-ID header int false "Viewer identity; defaults to the configured demo viewer"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c *gin.Context) {
	viewerID := c.GetUint("viewer_id")

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || postID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	liked, err := h.postUseCase.ToggleLike(viewerID, uint(postID))
	if err != nil {
		if errors.Is(err, entity.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to toggle like: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	message := "Post unliked"
	if liked {
		message = "Post liked"
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "message": message})
}
