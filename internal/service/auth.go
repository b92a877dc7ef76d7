package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/odishoodeesh/textpost-server/internal/logger"
	"github.com/odishoodeesh/textpost-server/internal/model"
)

// Auth verifies credentials and issues session tokens.
type Auth struct {
	userStore model.UserStore
	tokens    model.TokenManager
	logger    *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(userStore model.UserStore, tokens model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		tokens:    tokens,
		logger:    logger,
	}
}

// Register creates a user with a bcrypt-hashed password. The username must
// not be empty after trimming; a taken username surfaces model.ErrDuplicate.
func (a *Auth) Register(ctx context.Context, username, password string) (model.User, error) {
	a.logger.Debug("Auth service: starting user registration",
		"username", username)

	username = strings.TrimSpace(username)
	if username == "" {
		a.logger.Info("Auth service: rejected empty username")
		return model.User{}, model.ErrEmptyField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	savedUser, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			a.logger.Info("Auth service: username already taken",
				"username", username)
			return model.User{}, model.ErrDuplicate
		}
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"username", username,
		"user_id", savedUser.ID)

	return savedUser, nil
}

// Login verifies credentials and returns the user with a session token.
// An unknown username and a wrong password both surface
// model.ErrInvalidCredentials so a caller cannot tell them apart.
func (a *Auth) Login(ctx context.Context, username, password string) (model.Session, error) {
	a.logger.Debug("Auth service: starting user login",
		"username", username)

	user, err := a.userStore.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		a.logger.Info("Auth service: password mismatch",
			"username", username)
		return model.Session{}, model.ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		a.logger.Error("Auth service: failed to generate session token",
			"username", username,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"username", username,
		"user_id", user.ID)

	return model.Session{User: user, Token: token}, nil
}
