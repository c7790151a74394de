package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/pkg/clock"
)

func TestDropRegistry_SpawnAndPickUp(t *testing.T) {
	clk := &clock.Fixed{T: time.UnixMilli(1_700_000_000_000)}
	r := NewDropRegistry(clk)

	first := r.Spawn("wood", domain.WorldPos{X: 100, Y: 100})
	second := r.Spawn("stone", domain.WorldPos{X: 112, Y: 100})
	assert.Equal(t, "drop_1", first.ID)
	assert.Equal(t, "drop_2", second.ID)
	assert.Equal(t, int64(1_700_000_000_000), first.CreatedAt)
	require.Len(t, r.List(), 2)

	// the nearest drop wins
	got, ok := r.PickUp(domain.WorldPos{X: 110, Y: 100})
	require.True(t, ok)
	assert.Equal(t, second.ID, got.ID)

	// outside the radius nothing is picked up
	_, ok = r.PickUp(domain.WorldPos{X: 100, Y: 100 + domain.DropPickupRadius + 1})
	assert.False(t, ok)

	got, ok = r.PickUp(domain.WorldPos{X: 100, Y: 100 + domain.DropPickupRadius})
	require.True(t, ok)
	assert.Equal(t, "wood", got.Item)
	assert.Empty(t, r.List())

	_, ok = r.PickUp(domain.WorldPos{X: 100, Y: 100})
	assert.False(t, ok)
}
