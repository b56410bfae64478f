package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/micropost/micropost-server/internal/api/http/middleware"
	"github.com/micropost/micropost-server/internal/logger"
	"github.com/micropost/micropost-server/internal/model"
)

// maxPostBytes is the content limit of a single post in UTF-8 bytes.
const maxPostBytes = 1_000_000

// PostService handles post operations for an authenticated user.
type PostService interface {
	Create(ctx context.Context, userID int64, text string) (int64, error)
	List(ctx context.Context, userID int64) ([]model.Post, error)
	Delete(ctx context.Context, userID int64, postID int64) error
}

// Post handles post endpoints.
type Post struct {
	service PostService
	logger  *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(service PostService, logger *logger.Logger) *Post {
	return &Post{service: service, logger: logger}
}

type createPostRequest struct {
	Text string `json:"text"`
}

type createPostResponse struct {
	PostID int64 `json:"postID"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// Create adds a post for the authenticated user.
func (h *Post) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.Text) == 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "post text must not be empty")
	}
	if len(req.Text) > maxPostBytes {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "post text exceeds size limit")
	}

	postID, err := h.service.Create(c.Request().Context(), userID, req.Text)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusCreated, createPostResponse{PostID: postID})
}

// List returns all posts of the authenticated user.
func (h *Post) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	posts, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, posts)
}

// Delete removes a post of the authenticated user identified by the
// post_id query parameter.
func (h *Post) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	postID, err := strconv.ParseInt(c.QueryParam("post_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "post_id must be an integer")
	}

	if err := h.service.Delete(c.Request().Context(), userID, postID); err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, detailResponse{Detail: "Post deleted"})
}
