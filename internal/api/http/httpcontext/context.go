package httpcontext

import (
	"context"

	"github.com/odishoodeesh/textpost-server/internal/model"
)

type contextKey int

const principalKey contextKey = iota

// Manager stores and retrieves the authenticated principal on a request
// context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetPrincipalToContext returns a context carrying the principal.
func (m *Manager) SetPrincipalToContext(ctx context.Context, principal model.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// GetPrincipalFromContext retrieves the principal set by the authentication
// middleware, if any.
func (m *Manager) GetPrincipalFromContext(ctx context.Context) (model.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(model.Principal)
	return principal, ok
}
