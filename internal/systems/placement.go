package systems

import (
	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

// StructurePlacer validates and writes structure footprints into the grid.
// It only goes through Grid predicates and SetCell.
type StructurePlacer struct {
	grid *domain.Grid
}

func NewStructurePlacer(grid *domain.Grid) *StructurePlacer {
	return &StructurePlacer{grid: grid}
}

// IsValidFootprint reports whether every cell of fp is in bounds and not
// blocked. Callers must check this before CommitFootprint.
func (p *StructurePlacer) IsValidFootprint(fp domain.Footprint) bool {
	cells := fp.Cells()
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if !p.grid.IsWalkable(c.Col, c.Row) {
			return false
		}
	}
	return true
}

// CommitFootprint blocks every cell of fp except the portal cell, which
// becomes a portal. Applying the same footprint twice is a no-op.
func (p *StructurePlacer) CommitFootprint(fp domain.Footprint) {
	portal := fp.PortalCell()
	hasPortal := fp.HasPortal()
	for _, c := range fp.Cells() {
		code := domain.TerrainBlocked
		if hasPortal && c == portal {
			code = domain.TerrainPortal
		}
		p.grid.SetCell(c.Col, c.Row, code)
	}
}

// RemoveFootprint reverts every cell of fp to open.
func (p *StructurePlacer) RemoveFootprint(fp domain.Footprint) {
	for _, c := range fp.Cells() {
		p.grid.SetCell(c.Col, c.Row, domain.TerrainOpen)
	}
}

// Replay re-applies known footprints after the grid has been regenerated.
func (p *StructurePlacer) Replay(fps []domain.Footprint) {
	for _, fp := range fps {
		p.CommitFootprint(fp)
	}
}
