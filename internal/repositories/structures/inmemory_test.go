package structures_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/repositories/structures"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := structures.NewInMemory()

	for i, id := range []string{"c", "a", "b"} {
		_, err := repo.Save(ctx, structures.SaveInput{
			MapID:     domain.MainWorld,
			Structure: domain.Structure{ID: id, CreatedAt: int64(i)},
		})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, structures.ListInput{MapID: domain.MainWorld})
	require.NoError(t, err)
	require.Len(t, list.Structures, 3)
	assert.Equal(t, "c", list.Structures[0].ID)
	assert.Equal(t, "b", list.Structures[2].ID)

	_, err = repo.Delete(ctx, structures.DeleteInput{MapID: domain.MainWorld, ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Delete(ctx, structures.DeleteInput{MapID: domain.MainWorld, ID: "a"})
	require.NoError(t, err)

	list, err = repo.List(ctx, structures.ListInput{MapID: domain.MainWorld})
	require.NoError(t, err)
	assert.Len(t, list.Structures, 2)
}
