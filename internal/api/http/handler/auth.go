package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/odishoodeesh/textpost-server/internal/logger"
	"github.com/odishoodeesh/textpost-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, username, password string) (model.User, error)
	Login(ctx context.Context, username, password string) (model.Session, error)
}

// Auth handles HTTP endpoints for registration and login.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user from username and password. The username must
// carry something besides whitespace.
func (h *Auth) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Username) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	_, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Login verifies credentials and returns the identity with a session token.
func (h *Auth) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"username": session.User.Username,
		"token":    session.Token,
	})
}
