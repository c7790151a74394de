package presence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemory()

	_, err := repo.Get(ctx, GetInput{PlayerID: "p1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Publish(ctx, PublishInput{})
	assert.ErrorIs(t, err, errPlayerIDEmpty)

	p := Presence{PlayerID: "p1", MapID: domain.MainWorld, X: 264, Y: 288, FacingLeft: true, Timestamp: 42}
	_, err = repo.Publish(ctx, PublishInput{Presence: p})
	require.NoError(t, err)

	out, err := repo.Get(ctx, GetInput{PlayerID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, p, out.Presence)
}
