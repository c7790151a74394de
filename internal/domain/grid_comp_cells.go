package domain

import "fmt"

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Version changes every time the whole matrix is replaced.
func (g *Grid) Version() uint64 { return g.version }

func (g *Grid) index(col, row int) int {
	return row*g.width + col
}

// InBounds reports whether (col, row) lies inside the current matrix.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// IsWalkable is the single "can an entity stand here" predicate.
// Out-of-bounds cells are never walkable; portal cells are.
func (g *Grid) IsWalkable(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	return g.cells[g.index(col, row)] != TerrainBlocked
}

// Cell returns the terrain code and whether the coordinate was in bounds.
func (g *Grid) Cell(col, row int) (TerrainCode, bool) {
	if !g.InBounds(col, row) {
		return TerrainBlocked, false
	}
	return g.cells[g.index(col, row)], true
}

// SetCell overwrites one cell. Out-of-bounds writes are ignored; callers that
// care must check InBounds first.
func (g *Grid) SetCell(col, row int, code TerrainCode) {
	if !g.InBounds(col, row) {
		return
	}
	g.cells[g.index(col, row)] = code
}

// Replace swaps the whole matrix for a new map. rows must be height rows of
// width cells each; on error the current matrix stays active.
func (g *Grid) Replace(width, height int, rows [][]TerrainCode) error {
	if len(rows) != height {
		return fmt.Errorf("%w: got %d rows, want %d", ErrNonUniformGrid, len(rows), height)
	}
	w, h, cells, err := flatten(rows)
	if err != nil {
		return err
	}
	if height > 0 && w != width {
		return fmt.Errorf("%w: got %d columns, want %d", ErrNonUniformGrid, w, width)
	}

	g.width, g.height = width, h
	if cells == nil {
		cells = make([]TerrainCode, 0)
	}
	g.cells = cells
	g.version++

	for _, sub := range g.subscribers {
		sub.fn(g.version)
	}
	return nil
}

// Subscribe registers fn to be called after every Replace. The returned func
// removes the subscription.
func (g *Grid) Subscribe(fn func(version uint64)) (cancel func()) {
	g.nextSub++
	id := g.nextSub
	g.subscribers = append(g.subscribers, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range g.subscribers {
			if sub.id == id {
				g.subscribers = append(g.subscribers[:i], g.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Subscribers is the number of live subscriptions.
func (g *Grid) Subscribers() int { return len(g.subscribers) }

// Snapshot copies the matrix into fresh rows.
func (g *Grid) Snapshot() [][]TerrainCode {
	rows := make([][]TerrainCode, g.height)
	for r := 0; r < g.height; r++ {
		row := make([]TerrainCode, g.width)
		copy(row, g.cells[r*g.width:(r+1)*g.width])
		rows[r] = row
	}
	return rows
}
