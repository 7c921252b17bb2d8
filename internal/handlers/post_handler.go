package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"blogvote-api/internal/middleware"
	"blogvote-api/internal/models"
	"blogvote-api/internal/repositories"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/", h.ListPosts)
	g.POST("/", h.CreatePost)
	g.GET("/:id", h.GetPost)
	g.PUT("/:id", h.UpdatePost)
	g.DELETE("/:id", h.DeletePost)
}

// ListPosts returns posts joined with vote counts and owners.
// Query params: limit (default 10), skip (default 0), search (title
// substring).
func (h *PostHandler) ListPosts(c echo.Context) error {
	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit")
		}
		limit = n
	}

	skip := 0
	if v := c.QueryParam("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid skip")
		}
		skip = n
	}

	posts, err := h.postRepository.ListPostsWithVotes(limit, skip, c.QueryParam("search"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, posts)
}

// CreatePost creates a post owned by the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post := &models.Post{
		Title:     req.Title,
		Content:   req.Content,
		Published: true,
		OwnerID:   user.ID,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post.ToResponse())
}

// GetPost retrieves a single post with its vote count and owner
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := parsePostID(c)
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostWithVotes(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post)
}

// UpdatePost replaces a post's title and content. Only the owner may
// update; existence is checked before ownership. Ownership itself
// never transfers.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	user := middleware.CurrentUser(c)

	id, err := parsePostID(c)
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.OwnerID != user.ID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not allowed to update this post")
	}

	post.Title = req.Title
	post.Content = req.Content

	if err := h.postRepository.UpdatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post.ToResponse())
}

// DeletePost deletes a post. Only the owner may delete.
func (h *PostHandler) DeletePost(c echo.Context) error {
	user := middleware.CurrentUser(c)

	id, err := parsePostID(c)
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.OwnerID != user.ID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not allowed to delete this post")
	}

	if err := h.postRepository.DeletePost(post.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func parsePostID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	return uint(id), nil
}
