package web

import (
	"fmt"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// SPA serves a pre-built client bundle, answering any path without a
// matching file with the client entry document so the client router can take
// over.
type SPA struct {
	staticDir string
}

// NewSPA creates a handler serving the bundle in staticDir.
func NewSPA(staticDir string) *SPA {
	return &SPA{staticDir: staticDir}
}

// Handle serves the requested file or falls back to index.html.
func (s *SPA) Handle(c *gin.Context) {
	path := filepath.Join(s.staticDir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		c.File(path)
		return
	}
	c.File(filepath.Join(s.staticDir, "index.html"))
}

// DevProxy forwards unmatched requests to the bundler's dev server so client
// source is served live during development.
type DevProxy struct {
	proxy *httputil.ReverseProxy
}

// NewDevProxy creates a proxy to the dev server at target.
func NewDevProxy(target string) (*DevProxy, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dev server url: %w", err)
	}
	return &DevProxy{proxy: httputil.NewSingleHostReverseProxy(u)}, nil
}

// Handle proxies the request.
func (d *DevProxy) Handle(c *gin.Context) {
	d.proxy.ServeHTTP(c.Writer, c.Request)
}
