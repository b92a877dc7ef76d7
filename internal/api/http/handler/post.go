package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/odishoodeesh/textpost-server/internal/logger"
	"github.com/odishoodeesh/textpost-server/internal/model"
)

// PostService defines feed operations.
type PostService interface {
	Create(ctx context.Context, principal model.Principal, content string) (model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Update(ctx context.Context, id int64, principal model.Principal, content string) (model.Post, error)
	Delete(ctx context.Context, id int64, principal model.Principal) error
}

// Post handles HTTP endpoints for the feed.
type Post struct {
	postService    PostService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(postService PostService, contextManager model.ContextManager, logger *logger.Logger) *Post {
	return &Post{
		postService:    postService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type postRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// principal resolves the author identity for a mutation: a valid session
// token wins, otherwise the username supplied in the request body is used.
// A body username that is empty after trimming identifies nobody.
func (h *Post) principal(c *gin.Context, bodyUsername string) (model.Principal, bool) {
	if p, ok := h.contextManager.GetPrincipalFromContext(c.Request.Context()); ok {
		return p, true
	}
	if username := strings.TrimSpace(bodyUsername); username != "" {
		return model.PasswordPrincipal{Username: username}, true
	}
	return nil, false
}

// List returns the full feed, newest first.
func (h *Post) List(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Create stores a new post and returns it with the server-assigned id and
// timestamp.
func (h *Post) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and content are required"})
		return
	}

	content := strings.TrimSpace(req.Content)
	principal, ok := h.principal(c, req.Username)
	if !ok || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and content are required"})
		return
	}

	post, err := h.postService.Create(c.Request.Context(), principal, content)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Update rewrites a post's content when the ownership filter matches.
func (h *Post) Update(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and content are required"})
		return
	}

	content := strings.TrimSpace(req.Content)
	principal, ok := h.principal(c, req.Username)
	if !ok || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and content are required"})
		return
	}

	post, err := h.postService.Update(c.Request.Context(), id, principal, content)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete removes a post when the ownership filter matches.
func (h *Post) Delete(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	var req postRequest
	// A body is optional when a session token identifies the author.
	_ = c.ShouldBindJSON(&req)

	principal, ok := h.principal(c, req.Username)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id, principal); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// postID parses the :id route parameter. A non-numeric id can never match a
// stored post, so it answers the same 404 as an ownership miss.
func (h *Post) postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found or unauthorized"})
		return 0, false
	}
	return id, true
}
