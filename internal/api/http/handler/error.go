package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odishoodeesh/textpost-server/internal/model"
)

// handleError maps service errors to HTTP responses. Ownership misses on
// mutations answer 404 whether the post is missing or owned by someone
// else, so probing IDs reveals nothing about other users' posts.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
	case errors.Is(err, model.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found or unauthorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
