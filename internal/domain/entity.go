package domain

// StatsComponent - hit points and, for players, experience.
type StatsComponent struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	IsDead bool `json:"isDead"`

	Level int `json:"level,omitempty"`
	XP    int `json:"xp,omitempty"`
	MaxXP int `json:"maxXp,omitempty"`
}

// AIComponent - monster state kept between frames.
type AIComponent struct {
	Cooldown int `json:"cooldown"`
}

// Entity is anything with a position on the active map.
type Entity struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`

	Pos        WorldPos `json:"pos"`
	FacingLeft bool     `json:"facingLeft"`

	// nil when the entity has no such property
	Stats *StatsComponent `json:"stats,omitempty"`
	AI    *AIComponent    `json:"ai,omitempty"`
}

// FaceTowards flips facing by the sign of a horizontal delta. A zero delta
// keeps the last facing.
func (e *Entity) FaceTowards(dx float64) {
	e.FacingLeft = FacingFor(dx, e.FacingLeft)
}

// FacingFor is the facing rule: negative dx faces left, positive faces
// right, zero keeps current.
func FacingFor(dx float64, current bool) bool {
	switch {
	case dx < 0:
		return true
	case dx > 0:
		return false
	default:
		return current
	}
}
