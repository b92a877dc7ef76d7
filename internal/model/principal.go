package model

import "github.com/google/uuid"

// Principal is an authenticated author identity. Ownership filters on post
// mutations are written once against AuthorName regardless of how the
// identity was established.
type Principal interface {
	AuthorName() string
}

// PasswordPrincipal identifies an author by the username supplied with the
// request, backed by a password-owned user row.
type PasswordPrincipal struct {
	Username string
}

// AuthorName returns the username.
func (p PasswordPrincipal) AuthorName() string {
	return p.Username
}

// TokenPrincipal identifies an author resolved from a signed session token.
type TokenPrincipal struct {
	UserID   uuid.UUID
	Username string
}

// AuthorName returns the username carried in the token.
func (p TokenPrincipal) AuthorName() string {
	return p.Username
}
