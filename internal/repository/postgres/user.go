package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/odishoodeesh/textpost-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	query := `SELECT id, username, password_hash, created_at, updated_at
			  FROM users WHERE username = $1`

	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	var user model.User
	query := `SELECT id, username, password_hash, created_at, updated_at
			  FROM users WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, username, password_hash, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, username, password_hash, created_at, updated_at`

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	).Scan(
		&savedUser.ID, &savedUser.Username, &savedUser.PasswordHash,
		&savedUser.CreatedAt, &savedUser.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.User{}, model.ErrDuplicate
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}
