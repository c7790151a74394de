package domain

// Footprint is the rectangle of cells a placed structure occupies. The
// portal cell is given relative to the top-left anchor.
type Footprint struct {
	Anchor       GridPos `json:"anchor"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	PortalOffset GridPos `json:"portalOffset"`
}

// HouseFootprint returns the standard 3x3 house with its door in the middle
// of the bottom row.
func HouseFootprint(anchor GridPos) Footprint {
	return Footprint{
		Anchor:       anchor,
		Width:        HouseSize,
		Height:       HouseSize,
		PortalOffset: GridPos{Col: 1, Row: 2},
	}
}

// InnFootprint returns the inn on the overworld. It has no door: rooms are
// rented from outside and entered directly.
func InnFootprint() Footprint {
	return Footprint{
		Anchor:       InnAnchor,
		Width:        HouseSize,
		Height:       HouseSize,
		PortalOffset: GridPos{Col: -1, Row: -1},
	}
}

// Cells lists every cell of the rectangle, row by row.
func (f Footprint) Cells() []GridPos {
	if f.Width <= 0 || f.Height <= 0 {
		return nil
	}
	out := make([]GridPos, 0, f.Width*f.Height)
	for r := 0; r < f.Height; r++ {
		for c := 0; c < f.Width; c++ {
			out = append(out, f.Anchor.Shift(c, r))
		}
	}
	return out
}

// PortalCell is the absolute grid position of the door.
func (f Footprint) PortalCell() GridPos {
	return f.Anchor.Add(f.PortalOffset)
}

// HasPortal reports whether the portal offset falls inside the rectangle.
func (f Footprint) HasPortal() bool {
	o := f.PortalOffset
	return o.Col >= 0 && o.Col < f.Width && o.Row >= 0 && o.Row < f.Height
}

// Structure is a persisted building.
type Structure struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	OwnerID   string    `json:"ownerId"`
	Footprint Footprint `json:"footprint"`
	CreatedAt int64     `json:"createdAt"`
}
