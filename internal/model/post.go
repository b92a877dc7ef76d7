package model

import (
	"context"
	"time"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	List(ctx context.Context) ([]Post, error)
	UpdateContent(ctx context.Context, id int64, author string, content string) (Post, error)
	Delete(ctx context.Context, id int64, author string) error
}

// Post represents a feed entry. ID and CreatedAt are assigned by the store.
// Username is the author key that ownership filters on update/delete compare
// against.
type Post struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
