package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odishoodeesh/textpost-server/internal/api/http/httpcontext"
	"github.com/odishoodeesh/textpost-server/internal/model"
	"github.com/odishoodeesh/textpost-server/internal/testutil"
	"github.com/odishoodeesh/textpost-server/internal/token"
)

func newAuthenticateEngine(t *testing.T) (*gin.Engine, model.TokenManager, *httpcontext.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens := token.NewJWT("testsecret")
	ctxMgr := httpcontext.NewManager()
	mw := NewAuthenticate(tokens, ctxMgr, testutil.MakeNoopLogger())

	e := gin.New()
	e.GET("/probe", mw.Handle(), func(c *gin.Context) {
		if p, ok := ctxMgr.GetPrincipalFromContext(c.Request.Context()); ok {
			c.String(http.StatusOK, p.AuthorName())
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	return e, tokens, ctxMgr
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e, tokens, _ := newAuthenticateEngine(t)

	tokenString, err := tokens.GenerateAccessToken(uuid.New(), "alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func TestAuthenticate_NoHeader(t *testing.T) {
	e, _, _ := newAuthenticateEngine(t)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestAuthenticate_InvalidTokenIgnored(t *testing.T) {
	e, _, _ := newAuthenticateEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}
