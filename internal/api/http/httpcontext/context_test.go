package httpcontext

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odishoodeesh/textpost-server/internal/model"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager()
	principal := model.TokenPrincipal{UserID: uuid.New(), Username: "alice"}

	ctx := m.SetPrincipalToContext(context.Background(), principal)
	got, ok := m.GetPrincipalFromContext(ctx)

	require.True(t, ok)
	assert.Equal(t, "alice", got.AuthorName())
}

func TestManager_Missing(t *testing.T) {
	m := NewManager()

	_, ok := m.GetPrincipalFromContext(context.Background())
	assert.False(t, ok)
}
