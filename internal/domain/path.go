package domain

// Path is a route from (exclusive) start to (inclusive) goal. An empty path
// means the entity is already at the goal.
type Path []GridPos

func (p Path) Len() int { return len(p) }

// Last returns the goal cell. ok is false for an empty path.
func (p Path) Last() (GridPos, bool) {
	if len(p) == 0 {
		return GridPos{}, false
	}
	return p[len(p)-1], true
}

// IsContiguous reports whether every step, starting from start, moves
// exactly one cell along exactly one axis.
func (p Path) IsContiguous(start GridPos) bool {
	prev := start
	for _, step := range p {
		if !prev.IsOrthogonalStep(step) {
			return false
		}
		prev = step
	}
	return true
}

// ToWorld converts every step to its feet anchor.
func (p Path) ToWorld(a Anchor) []WorldPos {
	out := make([]WorldPos, len(p))
	for i, step := range p {
		out[i] = a.GridToWorld(step)
	}
	return out
}
