package maps

import (
	"math/rand"
	"testing"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverworld(t *testing.T) {
	m := Overworld(rand.New(rand.NewSource(1)))

	assert.Equal(t, domain.MainWorld, m.ID)
	require.Len(t, m.Cells, OverworldSize)

	g, err := domain.NewGrid(m.Cells)
	require.NoError(t, err)
	assert.Equal(t, OverworldSize, g.Width())

	// border is walled, interior is open
	assert.False(t, g.IsWalkable(0, 7))
	assert.False(t, g.IsWalkable(19, 19))
	assert.True(t, g.IsWalkable(1, 1))
	assert.True(t, g.IsWalkable(m.Spawn.Col, m.Spawn.Row))

	assert.Len(t, m.MonsterSpawns, MonsterCount)
	for _, p := range m.MonsterSpawns {
		assert.True(t, g.IsWalkable(p.Col, p.Row), "monster on %v", p)
		assert.Greater(t, p.ManhattanTo(m.Spawn), 2, "monster %v too close to spawn", p)
	}
}

func TestOverworld_SeedIsDeterministic(t *testing.T) {
	a := Overworld(rand.New(rand.NewSource(42)))
	b := Overworld(rand.New(rand.NewSource(42)))
	assert.Equal(t, a.MonsterSpawns, b.MonsterSpawns)
}

func TestInterior(t *testing.T) {
	m := Interior("h1")

	assert.Equal(t, domain.InteriorMapID("h1"), m.ID)
	assert.Equal(t, domain.InteriorSpawn, m.Spawn)
	assert.Empty(t, m.MonsterSpawns)

	g, err := domain.NewGrid(m.Cells)
	require.NoError(t, err)

	code, ok := g.Cell(domain.InteriorExitCell.Col, domain.InteriorExitCell.Row)
	require.True(t, ok)
	assert.Equal(t, domain.TerrainPortal, code)

	require.Len(t, m.Portals, 1)
	assert.Equal(t, domain.MainWorld, m.Portals[0].TargetMap)

	// the exit is reachable from the spawn
	assert.False(t, g.IsWalkable(4, 9))
	assert.True(t, g.IsWalkable(5, 8))
}

func TestInnRoom(t *testing.T) {
	m := InnRoom("p1")

	assert.Equal(t, domain.InnRoomMapID("p1"), m.ID)
	assert.Equal(t, domain.InnRoomSpawn, m.Spawn)
	require.Len(t, m.Portals, 1)
	assert.Equal(t, domain.Portal{Cell: domain.InteriorExitCell, TargetMap: domain.MainWorld, Spawn: domain.InnDoorstep}, m.Portals[0])
}

func TestForID(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	tests := []struct {
		id      domain.MapID
		wantErr bool
	}{
		{domain.MainWorld, false},
		{domain.InteriorMapID("x"), false},
		{domain.InnRoomMapID("p1"), false},
		{"bogus", true},
		{"", true},
		{domain.InteriorMapID(""), true},
		{domain.InnRoomMapID(""), true},
	}
	for _, tt := range tests {
		m, err := ForID(tt.id, rng)
		if tt.wantErr {
			assert.ErrorIs(t, err, domain.ErrNotFound, "id %q", tt.id)
			assert.Nil(t, m)
			continue
		}
		require.NoError(t, err, "id %q", tt.id)
		assert.Equal(t, tt.id, m.ID)
	}
}

func TestBuilder_WithBlock(t *testing.T) {
	m := New("test", 5, 5).WithBlock(Rect{X: 1, Y: 1, W: 2, H: 2}, domain.TerrainBlocked).Build()

	assert.Equal(t, domain.TerrainBlocked, m.Cells[2][2])
	assert.Equal(t, domain.TerrainOpen, m.Cells[3][3])
}

func TestRect(t *testing.T) {
	r1 := Rect{0, 0, 10, 10}
	r2 := Rect{5, 5, 10, 10}
	r3 := Rect{20, 20, 5, 5}

	assert.True(t, r1.Intersects(r2))
	assert.False(t, r1.Intersects(r3))
	assert.True(t, r1.Contains(domain.GridPos{Col: 9, Row: 0}))
	assert.False(t, r1.Contains(domain.GridPos{Col: 10, Row: 0}))
}
