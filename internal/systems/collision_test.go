package systems

import (
	"testing"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/systems/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCollisionResolver_Resolve(t *testing.T) {
	g := parseGrid(t,
		"...",
		".#.",
		"...",
	)
	a := domain.DefaultAnchor
	current := a.GridToWorld(domain.GridPos{Col: 0, Row: 1})

	t.Run("open cell accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock.NewMockOccupancyProvider(ctrl)
		r := NewCollisionResolver(g, a, provider)

		proposed := a.GridToWorld(domain.GridPos{Col: 0, Row: 2})
		provider.EXPECT().Occupied(proposed).Return(false)

		got, ok := r.Resolve(current, proposed)
		assert.True(t, ok)
		assert.Equal(t, proposed, got)
	})

	t.Run("blocked cell rejected without asking providers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock.NewMockOccupancyProvider(ctrl)
		r := NewCollisionResolver(g, a, provider)

		got, ok := r.Resolve(current, a.GridToWorld(domain.GridPos{Col: 1, Row: 1}))
		assert.False(t, ok)
		assert.Equal(t, current, got)
	})

	t.Run("out of bounds rejected", func(t *testing.T) {
		r := NewCollisionResolver(g, a)
		got, ok := r.Resolve(current, domain.WorldPos{X: -5, Y: 60})
		assert.False(t, ok)
		assert.Equal(t, current, got)
	})

	t.Run("any occupied provider rejects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		free := mock.NewMockOccupancyProvider(ctrl)
		busy := mock.NewMockOccupancyProvider(ctrl)
		r := NewCollisionResolver(g, a)
		r.Register(free)
		r.Register(busy)

		proposed := a.GridToWorld(domain.GridPos{Col: 2, Row: 2})
		free.EXPECT().Occupied(proposed).Return(false)
		busy.EXPECT().Occupied(proposed).Return(true)

		got, ok := r.Resolve(current, proposed)
		assert.False(t, ok)
		assert.Equal(t, current, got)
	})
}

func TestCollisionResolver_UsesFeetAnchor(t *testing.T) {
	g := parseGrid(t,
		"..",
		"#.",
	)
	r := NewCollisionResolver(g, domain.DefaultAnchor)

	// feet on the bottom edge of (0,0): still standing on the open cell
	assert.True(t, r.Allowed(domain.WorldPos{X: 24, Y: 48}))
	// feet past the offset into row 1: the wall
	assert.False(t, r.Allowed(domain.WorldPos{X: 24, Y: 73}))
}
