package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/odishoodeesh/textpost-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `INSERT INTO posts (username, content)
			  VALUES ($1, $2)
			  RETURNING id, username, content, created_at, updated_at`

	var savedPost model.Post
	err := r.db.QueryRow(ctx, query, post.Username, post.Content).Scan(
		&savedPost.ID, &savedPost.Username, &savedPost.Content,
		&savedPost.CreatedAt, &savedPost.UpdatedAt,
	)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return savedPost, nil
}

func (r *PostRepository) List(ctx context.Context) ([]model.Post, error) {
	// id is the tiebreak so posts created in the same instant keep a stable
	// newest-first order.
	query := `SELECT id, username, content, created_at, updated_at
			  FROM posts
			  ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID, &post.Username, &post.Content, &post.CreatedAt, &post.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, nil
}

// UpdateContent updates a post's content scoped by the ownership filter:
// the row must match both the id and the author. A miss on either is
// indistinguishable from the other.
func (r *PostRepository) UpdateContent(ctx context.Context, id int64, author string, content string) (model.Post, error) {
	query := `UPDATE posts SET content = $1, updated_at = NOW()
			  WHERE id = $2 AND username = $3
			  RETURNING id, username, content, created_at, updated_at`

	var post model.Post
	err := r.db.QueryRow(ctx, query, content, id, author).Scan(
		&post.ID, &post.Username, &post.Content, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// Delete removes a post under the same ownership filter as UpdateContent.
func (r *PostRepository) Delete(ctx context.Context, id int64, author string) error {
	query := `DELETE FROM posts WHERE id = $1 AND username = $2`

	cmd, err := r.db.Exec(ctx, query, id, author)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
