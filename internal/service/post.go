package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/odishoodeesh/textpost-server/internal/logger"
	"github.com/odishoodeesh/textpost-server/internal/model"
)

// Post implements feed operations on top of a PostStore.
type Post struct {
	postStore model.PostStore
	logger    *logger.Logger
}

// NewPost creates a new Post service.
func NewPost(postStore model.PostStore, logger *logger.Logger) *Post {
	return &Post{
		postStore: postStore,
		logger:    logger,
	}
}

// Create stores a new post authored by the principal. Content is trimmed
// before storage and must not be empty after trimming.
func (p *Post) Create(ctx context.Context, principal model.Principal, content string) (model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		p.logger.Info("Post service: rejected empty content",
			"username", principal.AuthorName())
		return model.Post{}, model.ErrEmptyField
	}

	post := model.Post{
		Username: principal.AuthorName(),
		Content:  content,
	}

	savedPost, err := p.postStore.Create(ctx, post)
	if err != nil {
		p.logger.Error("Post service: failed to create post",
			"username", post.Username,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	p.logger.Info("Post service: post created",
		"username", post.Username,
		"post_id", savedPost.ID)

	return savedPost, nil
}

// List returns the full feed, newest first. An empty store yields an empty
// list, not an error.
func (p *Post) List(ctx context.Context) ([]model.Post, error) {
	posts, err := p.postStore.List(ctx)
	if err != nil {
		p.logger.Error("Post service: failed to list posts",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	if posts == nil {
		posts = []model.Post{}
	}

	return posts, nil
}

// Update rewrites a post's content under the ownership filter. A post that
// does not exist and a post owned by someone else both surface
// model.ErrNotFound.
func (p *Post) Update(ctx context.Context, id int64, principal model.Principal, content string) (model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		p.logger.Info("Post service: rejected empty content",
			"post_id", id,
			"username", principal.AuthorName())
		return model.Post{}, model.ErrEmptyField
	}

	post, err := p.postStore.UpdateContent(ctx, id, principal.AuthorName(), content)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			p.logger.Info("Post service: update matched no post",
				"post_id", id,
				"username", principal.AuthorName())
			return model.Post{}, model.ErrNotFound
		}
		p.logger.Error("Post service: failed to update post",
			"post_id", id,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	p.logger.Info("Post service: post updated",
		"post_id", id,
		"username", principal.AuthorName())

	return post, nil
}

// Delete removes a post under the same ownership filter as Update.
func (p *Post) Delete(ctx context.Context, id int64, principal model.Principal) error {
	err := p.postStore.Delete(ctx, id, principal.AuthorName())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			p.logger.Info("Post service: delete matched no post",
				"post_id", id,
				"username", principal.AuthorName())
			return model.ErrNotFound
		}
		p.logger.Error("Post service: failed to delete post",
			"post_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete post: %w", err)
	}

	p.logger.Info("Post service: post deleted",
		"post_id", id,
		"username", principal.AuthorName())

	return nil
}
