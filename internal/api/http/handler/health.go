package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health answers liveness checks.
type Health struct {
	mode string
}

// NewHealth creates a new Health handler reporting the given serving mode.
func NewHealth(mode string) *Health {
	return &Health{mode: mode}
}

// Handle always succeeds.
func (h *Health) Handle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"mode":   h.mode,
		"time":   time.Now().Format(time.RFC3339),
	})
}
