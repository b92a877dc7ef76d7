package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/odishoodeesh/textpost-server/internal/model"
	"github.com/odishoodeesh/textpost-server/internal/testutil"
)

// MockPostStore mocks the PostStore interface
type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) Create(ctx context.Context, post model.Post) (model.Post, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostStore) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostStore) UpdateContent(ctx context.Context, id int64, author string, content string) (model.Post, error) {
	args := m.Called(ctx, id, author, content)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostStore) Delete(ctx context.Context, id int64, author string) error {
	args := m.Called(ctx, id, author)
	return args.Error(0)
}

func TestPost_Create(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		mockSetup func(*MockPostStore)
		wantErr   bool
	}{
		{
			name:    "trims content before storing",
			content: "  hello world  ",
			mockSetup: func(ps *MockPostStore) {
				ps.On("Create", mock.Anything, model.Post{Username: "alice", Content: "hello world"}).
					Return(model.Post{ID: 1, Username: "alice", Content: "hello world", CreatedAt: time.Now()}, nil)
			},
		},
		{
			name:    "store failure",
			content: "hello",
			mockSetup: func(ps *MockPostStore) {
				ps.On("Create", mock.Anything, mock.Anything).Return(model.Post{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postStore := &MockPostStore{}
			tt.mockSetup(postStore)

			svc := NewPost(postStore, testutil.MakeNoopLogger())
			post, err := svc.Create(context.Background(), model.PasswordPrincipal{Username: "alice"}, tt.content)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "hello world", post.Content)
			assert.NotZero(t, post.ID)
			postStore.AssertExpectations(t)
		})
	}
}

func TestPost_Create_RejectsWhitespaceOnlyContent(t *testing.T) {
	postStore := &MockPostStore{}

	svc := NewPost(postStore, testutil.MakeNoopLogger())
	_, err := svc.Create(context.Background(), model.PasswordPrincipal{Username: "alice"}, "   ")

	require.ErrorIs(t, err, model.ErrEmptyField)
	postStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPost_List(t *testing.T) {
	t.Run("empty store returns empty list", func(t *testing.T) {
		postStore := &MockPostStore{}
		postStore.On("List", mock.Anything).Return([]model.Post(nil), nil)

		svc := NewPost(postStore, testutil.MakeNoopLogger())
		posts, err := svc.List(context.Background())

		require.NoError(t, err)
		require.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("returns posts from store", func(t *testing.T) {
		stored := []model.Post{
			{ID: 2, Username: "bob", Content: "later"},
			{ID: 1, Username: "alice", Content: "earlier"},
		}
		postStore := &MockPostStore{}
		postStore.On("List", mock.Anything).Return(stored, nil)

		svc := NewPost(postStore, testutil.MakeNoopLogger())
		posts, err := svc.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, stored, posts)
	})

	t.Run("store failure", func(t *testing.T) {
		postStore := &MockPostStore{}
		postStore.On("List", mock.Anything).Return([]model.Post(nil), errors.New("connection refused"))

		svc := NewPost(postStore, testutil.MakeNoopLogger())
		_, err := svc.List(context.Background())

		require.Error(t, err)
	})
}

func TestPost_Update(t *testing.T) {
	tests := []struct {
		name      string
		principal model.Principal
		mockSetup func(*MockPostStore)
		wantErr   error
	}{
		{
			name:      "success",
			principal: model.PasswordPrincipal{Username: "alice"},
			mockSetup: func(ps *MockPostStore) {
				ps.On("UpdateContent", mock.Anything, int64(7), "alice", "edited").
					Return(model.Post{ID: 7, Username: "alice", Content: "edited"}, nil)
			},
		},
		{
			name:      "ownership miss",
			principal: model.PasswordPrincipal{Username: "bob"},
			mockSetup: func(ps *MockPostStore) {
				ps.On("UpdateContent", mock.Anything, int64(7), "bob", "edited").
					Return(model.Post{}, model.ErrNotFound)
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postStore := &MockPostStore{}
			tt.mockSetup(postStore)

			svc := NewPost(postStore, testutil.MakeNoopLogger())
			post, err := svc.Update(context.Background(), 7, tt.principal, " edited ")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "edited", post.Content)
			postStore.AssertExpectations(t)
		})
	}
}

func TestPost_Update_RejectsWhitespaceOnlyContent(t *testing.T) {
	postStore := &MockPostStore{}

	svc := NewPost(postStore, testutil.MakeNoopLogger())
	_, err := svc.Update(context.Background(), 7, model.PasswordPrincipal{Username: "alice"}, "   ")

	require.ErrorIs(t, err, model.ErrEmptyField)
	postStore.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPost_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		postStore := &MockPostStore{}
		postStore.On("Delete", mock.Anything, int64(7), "alice").Return(nil)

		svc := NewPost(postStore, testutil.MakeNoopLogger())
		err := svc.Delete(context.Background(), 7, model.PasswordPrincipal{Username: "alice"})

		require.NoError(t, err)
		postStore.AssertExpectations(t)
	})

	t.Run("ownership miss", func(t *testing.T) {
		postStore := &MockPostStore{}
		postStore.On("Delete", mock.Anything, int64(7), "bob").Return(model.ErrNotFound)

		svc := NewPost(postStore, testutil.MakeNoopLogger())
		err := svc.Delete(context.Background(), 7, model.PasswordPrincipal{Username: "bob"})

		require.ErrorIs(t, err, model.ErrNotFound)
	})
}
