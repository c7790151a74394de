package engine

import (
	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

// JoystickRadius is how far, in screen pixels, the virtual stick travels.
const JoystickRadius = 60.0

// JoystickVector maps the drag offset of the virtual stick to a movement
// vector: the offset is clamped to the stick radius and divided by it, so
// the result has length in [0, 1].
func JoystickVector(dx, dy float64) domain.Vector {
	v := domain.Vector{X: dx, Y: dy}.ClampLen(JoystickRadius)
	return v.Scale(1 / JoystickRadius)
}

// TapCell is the tile under a tapped world point. Taps hit the tile itself,
// so no feet offset applies.
func TapCell(p domain.WorldPos, tileSize float64) domain.GridPos {
	return domain.Anchor{TileSize: tileSize}.WorldToGrid(p)
}
