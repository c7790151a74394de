package domain

import "math"

// Anchor is the one world<->grid conversion used by every component.
//
// A grid cell maps to the point where an entity's feet rest when it stands
// on that cell: horizontally centred, vertically on the bottom edge. Going the
// other way, FeetOffset is subtracted from Y before flooring the row, so
// WorldToGrid(GridToWorld(c)) == c for every cell.
type Anchor struct {
	TileSize   float64
	FeetOffset float64
}

// DefaultAnchor matches 48px tiles with sprites drawn from their base.
var DefaultAnchor = Anchor{TileSize: TileSize, FeetOffset: TileSize / 2}

// GridToWorld returns the feet anchor of the cell.
func (a Anchor) GridToWorld(p GridPos) WorldPos {
	return WorldPos{
		X: float64(p.Col)*a.TileSize + a.TileSize/2,
		Y: float64(p.Row)*a.TileSize + a.TileSize,
	}
}

// WorldToGrid returns the cell an entity whose feet are at w stands on.
func (a Anchor) WorldToGrid(w WorldPos) GridPos {
	return GridPos{
		Col: int(math.Floor(w.X / a.TileSize)),
		Row: int(math.Floor((w.Y - a.FeetOffset) / a.TileSize)),
	}
}
