package model

import "github.com/google/uuid"

// TokenManager generates and validates session tokens.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID, username string) (string, error)
	ParseAccessToken(token string) (userID uuid.UUID, username string, err error)
}
