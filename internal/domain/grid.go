package domain

import "fmt"

// TerrainCode classifies a single grid cell.
type TerrainCode uint8

const (
	TerrainOpen    TerrainCode = 0
	TerrainBlocked TerrainCode = 1
	// TerrainPortal is walkable; arriving on it triggers a map transition.
	TerrainPortal TerrainCode = 2
)

func (c TerrainCode) String() string {
	switch c {
	case TerrainOpen:
		return "open"
	case TerrainBlocked:
		return "blocked"
	case TerrainPortal:
		return "portal"
	default:
		return fmt.Sprintf("terrain(%d)", uint8(c))
	}
}

// GridPos is an integer (col, row) index into the walkability grid.
type GridPos struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Grid is the walkability matrix of the active map.
//
// Cells are stored row-major. Width and height never change for a given map
// instance; a map transition swaps the whole matrix through Replace, which
// also bumps Version so that paths computed against the previous matrix can
// be recognised as stale.
type Grid struct {
	width  int
	height int
	cells  []TerrainCode

	version     uint64
	subscribers []subscription
	nextSub     uint64
}

type subscription struct {
	id uint64
	fn func(version uint64)
}

// NewGrid builds a grid from rows of terrain codes. Every row must have the
// same length.
func NewGrid(rows [][]TerrainCode) (*Grid, error) {
	w, h, cells, err := flatten(rows)
	if err != nil {
		return nil, err
	}
	return &Grid{width: w, height: h, cells: cells, version: 1}, nil
}

// NewOpenGrid returns a width x height grid with every cell open.
func NewOpenGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:   width,
		height:  height,
		cells:   make([]TerrainCode, width*height),
		version: 1,
	}
}

func flatten(rows [][]TerrainCode) (int, int, []TerrainCode, error) {
	h := len(rows)
	if h == 0 {
		return 0, 0, nil, nil
	}
	w := len(rows[0])
	cells := make([]TerrainCode, 0, w*h)
	for r, row := range rows {
		if len(row) != w {
			return 0, 0, nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonUniformGrid, r, len(row), w)
		}
		cells = append(cells, row...)
	}
	return w, h, cells, nil
}
