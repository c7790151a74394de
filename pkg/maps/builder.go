package maps

import (
	"math/rand"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

// Rect is an axis-aligned block of cells.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(p domain.GridPos) bool {
	return p.Col >= r.X && p.Col < r.X+r.W && p.Row >= r.Y && p.Row < r.Y+r.H
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Map is a generated map ready to be activated on the grid.
type Map struct {
	ID            domain.MapID
	Width         int
	Height        int
	Cells         [][]domain.TerrainCode
	Spawn         domain.GridPos
	Portals       []domain.Portal
	MonsterSpawns []domain.GridPos
}

// Builder provides a fluent API for laying out a map.
type Builder struct {
	id       domain.MapID
	width    int
	height   int
	cells    [][]domain.TerrainCode
	spawn    domain.GridPos
	portals  []domain.Portal
	monsters []domain.GridPos
}

// New starts an all-open map.
func New(id domain.MapID, width, height int) *Builder {
	cells := make([][]domain.TerrainCode, height)
	for r := range cells {
		cells[r] = make([]domain.TerrainCode, width)
	}
	return &Builder{id: id, width: width, height: height, cells: cells}
}

func (b *Builder) set(p domain.GridPos, code domain.TerrainCode) {
	if p.Col < 0 || p.Col >= b.width || p.Row < 0 || p.Row >= b.height {
		return
	}
	b.cells[p.Row][p.Col] = code
}

func (b *Builder) at(p domain.GridPos) domain.TerrainCode {
	if p.Col < 0 || p.Col >= b.width || p.Row < 0 || p.Row >= b.height {
		return domain.TerrainBlocked
	}
	return b.cells[p.Row][p.Col]
}

// WithBorder blocks the outermost ring.
func (b *Builder) WithBorder() *Builder {
	for c := 0; c < b.width; c++ {
		b.set(domain.GridPos{Col: c, Row: 0}, domain.TerrainBlocked)
		b.set(domain.GridPos{Col: c, Row: b.height - 1}, domain.TerrainBlocked)
	}
	for r := 0; r < b.height; r++ {
		b.set(domain.GridPos{Col: 0, Row: r}, domain.TerrainBlocked)
		b.set(domain.GridPos{Col: b.width - 1, Row: r}, domain.TerrainBlocked)
	}
	return b
}

// WithBlock fills r with code.
func (b *Builder) WithBlock(r Rect, code domain.TerrainCode) *Builder {
	for row := r.Y; row < r.Y+r.H; row++ {
		for col := r.X; col < r.X+r.W; col++ {
			b.set(domain.GridPos{Col: col, Row: row}, code)
		}
	}
	return b
}

// WithPortal marks cell as a portal leading to target.
func (b *Builder) WithPortal(cell domain.GridPos, target domain.MapID, spawn domain.GridPos) *Builder {
	b.set(cell, domain.TerrainPortal)
	b.portals = append(b.portals, domain.Portal{Cell: cell, TargetMap: target, Spawn: spawn})
	return b
}

func (b *Builder) WithSpawn(cell domain.GridPos) *Builder {
	b.spawn = cell
	return b
}

// WithMonsters picks up to n distinct open cells outside safe for monsters.
func (b *Builder) WithMonsters(n int, safe Rect, rng *rand.Rand) *Builder {
	var candidates []domain.GridPos
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			p := domain.GridPos{Col: c, Row: r}
			if b.at(p) == domain.TerrainOpen && !safe.Contains(p) {
				candidates = append(candidates, p)
			}
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	b.monsters = append(b.monsters, candidates[:n]...)
	return b
}

// Build finalises the map. The builder must not be reused afterwards.
func (b *Builder) Build() *Map {
	return &Map{
		ID:            b.id,
		Width:         b.width,
		Height:        b.height,
		Cells:         b.cells,
		Spawn:         b.spawn,
		Portals:       b.portals,
		MonsterSpawns: b.monsters,
	}
}
