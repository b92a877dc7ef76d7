package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/odishoodeesh/textpost-server/internal/api/http/handler"
	"github.com/odishoodeesh/textpost-server/internal/api/http/middleware"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	health       *handler.Health
	auth         *handler.Auth
	posts        *handler.Post
	logging      *middleware.Logging
	authenticate *middleware.Authenticate
	frontend     gin.HandlerFunc
}

// New creates a new Router. frontend handles every non-API path and may be
// nil, in which case those paths answer a plain 404.
func New(
	health *handler.Health,
	auth *handler.Auth,
	posts *handler.Post,
	logging *middleware.Logging,
	authenticate *middleware.Authenticate,
	frontend gin.HandlerFunc,
) *Router {
	return &Router{
		health:       health,
		auth:         auth,
		posts:        posts,
		logging:      logging,
		authenticate: authenticate,
		frontend:     frontend,
	}
}

// Register builds the gin engine with all routes and middleware.
func (r *Router) Register() *gin.Engine {
	e := gin.New()
	e.Use(gin.Recovery(), r.logging.Handle())

	api := e.Group("/api")
	api.GET("/health", r.health.Handle)
	api.POST("/register", r.auth.Register)
	api.POST("/login", r.auth.Login)

	posts := api.Group("/posts", r.authenticate.Handle())
	posts.GET("", r.posts.List)
	posts.POST("", r.posts.Create)
	posts.PUT("/:id", r.posts.Update)
	posts.DELETE("/:id", r.posts.Delete)

	e.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf("API route not found: %s %s", c.Request.Method, c.Request.URL.Path),
			})
			return
		}
		if r.frontend != nil {
			r.frontend(c)
			return
		}
		c.String(http.StatusNotFound, "Page not found")
	})

	return e
}
