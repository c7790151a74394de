package systems

import (
	"testing"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPath_WalledWorld(t *testing.T) {
	g := walledGrid(t, 20, 20)
	start := domain.GridPos{Col: 1, Row: 1}
	goal := domain.GridPos{Col: 18, Row: 18}

	path, err := FindPath(g, start, goal)
	require.NoError(t, err)

	assert.Len(t, path, 34)
	last, ok := path.Last()
	require.True(t, ok)
	assert.Equal(t, goal, last)
	assert.True(t, path.IsContiguous(start))
}

func TestFindPath_SingleGapDetour(t *testing.T) {
	g := parseGrid(t,
		"...#...",
		"...#...",
		"...#...",
		"...#...",
		".......",
	)
	start := domain.GridPos{Col: 1, Row: 0}
	goal := domain.GridPos{Col: 5, Row: 0}

	path, err := FindPath(g, start, goal)
	require.NoError(t, err)

	// down to row 4, across the gap, back up
	assert.Len(t, path, 4+4+4)
	assert.Contains(t, path, domain.GridPos{Col: 3, Row: 4})
	assert.True(t, path.IsContiguous(start))
}

func TestFindPath_EdgeCases(t *testing.T) {
	g := parseGrid(t,
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	)

	tests := []struct {
		name    string
		start   domain.GridPos
		goal    domain.GridPos
		wantErr bool
		wantLen int
	}{
		{"goal blocked", domain.GridPos{Col: 0, Row: 0}, domain.GridPos{Col: 1, Row: 1}, true, 0},
		{"goal out of bounds", domain.GridPos{Col: 0, Row: 0}, domain.GridPos{Col: 5, Row: 0}, true, 0},
		{"goal negative", domain.GridPos{Col: 0, Row: 0}, domain.GridPos{Col: -1, Row: 0}, true, 0},
		{"goal walled in", domain.GridPos{Col: 0, Row: 0}, domain.GridPos{Col: 2, Row: 2}, true, 0},
		{"start out of bounds", domain.GridPos{Col: 9, Row: 9}, domain.GridPos{Col: 0, Row: 0}, true, 0},
		{"start equals goal", domain.GridPos{Col: 4, Row: 4}, domain.GridPos{Col: 4, Row: 4}, false, 0},
		{"around the box", domain.GridPos{Col: 0, Row: 0}, domain.GridPos{Col: 4, Row: 4}, false, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := FindPath(g, tt.start, tt.goal)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrNoPath)
				assert.Nil(t, path)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, path)
			assert.Len(t, path, tt.wantLen)
		})
	}
}

func TestFindPath_BlockedGoalAlwaysNoPath(t *testing.T) {
	g := walledGrid(t, 8, 8)
	g.SetCell(3, 3, domain.TerrainBlocked)

	for col := 0; col < 8; col++ {
		for row := 0; row < 8; row++ {
			if g.IsWalkable(col, row) {
				continue
			}
			_, err := FindPath(g, domain.GridPos{Col: 1, Row: 1}, domain.GridPos{Col: col, Row: row})
			assert.ErrorIs(t, err, domain.ErrNoPath, "goal (%d,%d)", col, row)
		}
	}
}

func TestFindPath_SameCellIsEmpty(t *testing.T) {
	g := parseGrid(t,
		".#D",
		"...",
	)
	for col := 0; col < 3; col++ {
		for row := 0; row < 2; row++ {
			if !g.IsWalkable(col, row) {
				continue
			}
			p := domain.GridPos{Col: col, Row: row}
			path, err := FindPath(g, p, p)
			require.NoError(t, err)
			assert.Empty(t, path)
		}
	}
}

func TestFindPath_OpenGridIsManhattan(t *testing.T) {
	g := domain.NewOpenGrid(9, 7)

	for sc := 0; sc < 9; sc += 2 {
		for sr := 0; sr < 7; sr += 3 {
			for gc := 0; gc < 9; gc += 3 {
				for gr := 0; gr < 7; gr += 2 {
					start := domain.GridPos{Col: sc, Row: sr}
					goal := domain.GridPos{Col: gc, Row: gr}

					path, err := FindPath(g, start, goal)
					require.NoError(t, err)
					assert.Equal(t, start.ManhattanTo(goal), path.Len(), "%v -> %v", start, goal)
					assert.True(t, path.IsContiguous(start), "%v -> %v", start, goal)
				}
			}
		}
	}
}

func TestFindPath_ThroughPortal(t *testing.T) {
	g := parseGrid(t,
		"#####",
		"#...#",
		"##D##",
		"#...#",
		"#####",
	)
	start := domain.GridPos{Col: 2, Row: 1}

	path, err := FindPath(g, start, domain.GridPos{Col: 2, Row: 3})
	require.NoError(t, err)
	assert.Equal(t, domain.Path{{Col: 2, Row: 2}, {Col: 2, Row: 3}}, path)

	path, err = FindPath(g, start, domain.GridPos{Col: 2, Row: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.Path{{Col: 2, Row: 2}}, path)
}

func TestFindPath_DoesNotMutateGrid(t *testing.T) {
	g := walledGrid(t, 10, 10)
	before := g.Snapshot()
	version := g.Version()

	_, err := FindPath(g, domain.GridPos{Col: 1, Row: 1}, domain.GridPos{Col: 8, Row: 8})
	require.NoError(t, err)

	assert.Equal(t, before, g.Snapshot())
	assert.Equal(t, version, g.Version())
}

func TestFindPath_Deterministic(t *testing.T) {
	g := domain.NewOpenGrid(6, 6)
	start := domain.GridPos{Col: 0, Row: 0}
	goal := domain.GridPos{Col: 4, Row: 3}

	first, err := FindPath(g, start, goal)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := FindPath(g, start, goal)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func BenchmarkFindPath(b *testing.B) {
	g := domain.NewOpenGrid(64, 64)
	for r := 0; r < 60; r++ {
		g.SetCell(32, r, domain.TerrainBlocked)
	}
	start := domain.GridPos{Col: 1, Row: 1}
	goal := domain.GridPos{Col: 62, Row: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = FindPath(g, start, goal)
	}
}
