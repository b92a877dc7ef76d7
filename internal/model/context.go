package model

import "context"

// ContextManager stores and retrieves the authenticated principal on a
// request context.
type ContextManager interface {
	SetPrincipalToContext(ctx context.Context, principal Principal) context.Context
	GetPrincipalFromContext(ctx context.Context) (Principal, bool)
}
