package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ManhattanTo is the 4-directional step distance between two cells.
func (p GridPos) ManhattanTo(other GridPos) int {
	return abs(p.Col-other.Col) + abs(p.Row-other.Row)
}

// Shift returns a new position offset by (dc, dr).
func (p GridPos) Shift(dc, dr int) GridPos {
	return GridPos{Col: p.Col + dc, Row: p.Row + dr}
}

// Add treats other as an offset.
func (p GridPos) Add(other GridPos) GridPos {
	return p.Shift(other.Col, other.Row)
}

// IsOrthogonalStep reports whether other is exactly one unit away along one axis.
func (p GridPos) IsOrthogonalStep(other GridPos) bool {
	return p.ManhattanTo(other) == 1
}

func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// ParseGridPos reads a "col,row" pair.
func ParseGridPos(s string) (GridPos, error) {
	colStr, rowStr, ok := strings.Cut(s, ",")
	if !ok {
		return GridPos{}, fmt.Errorf("cell %q: want col,row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return GridPos{}, fmt.Errorf("cell %q: %w", s, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return GridPos{}, fmt.Errorf("cell %q: %w", s, err)
	}
	return GridPos{Col: col, Row: row}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
