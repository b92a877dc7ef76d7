package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/odishoodeesh/textpost-server/internal/logger"
	"github.com/odishoodeesh/textpost-server/internal/model"
)

// Authenticate resolves session tokens into a principal on the request
// context. The token is optional: requests without one fall back to the
// author identity supplied in the body, so it never rejects a request on
// its own.
type Authenticate struct {
	tokens         model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens model.TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header and, when the bearer token is
// valid, injects a TokenPrincipal into the request context.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		userID, username, err := m.tokens.ParseAccessToken(tokenString)
		if err != nil {
			m.logger.Debug("authenticate: ignoring invalid bearer token",
				"error", err.Error())
			c.Next()
			return
		}

		principal := model.TokenPrincipal{UserID: userID, Username: username}
		ctx := m.contextManager.SetPrincipalToContext(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
