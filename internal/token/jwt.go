package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/odishoodeesh/textpost-server/internal/model"
)

// Claims represents JWT claims carrying the authenticated user.
type Claims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

const accessTTL = 24 * time.Hour

// GenerateAccessToken creates a session token for the given user.
func (j *JWT) GenerateAccessToken(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
		UserID:   userID,
		Username: username,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken validates a session token and extracts the user identity.
func (j *JWT) ParseAccessToken(tokenString string) (uuid.UUID, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, "", fmt.Errorf("access token is invalid")
	}
	if claims.Username == "" {
		return uuid.Nil, "", fmt.Errorf("access token has no username")
	}
	return claims.UserID, claims.Username, nil
}
