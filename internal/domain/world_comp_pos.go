package domain

import (
	"fmt"
	"math"
)

// WorldPos is a continuous pixel-space position.
type WorldPos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the euclidean distance to other.
func (p WorldPos) DistanceTo(other WorldPos) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Sub returns the vector from other to p.
func (p WorldPos) Sub(other WorldPos) Vector {
	return Vector{X: p.X - other.X, Y: p.Y - other.Y}
}

// Add moves p by v.
func (p WorldPos) Add(v Vector) WorldPos {
	return WorldPos{X: p.X + v.X, Y: p.Y + v.Y}
}

// Rounded returns p with both coordinates rounded to whole pixels.
func (p WorldPos) Rounded() WorldPos {
	return WorldPos{X: math.Round(p.X), Y: math.Round(p.Y)}
}

func (p WorldPos) String() string {
	return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y)
}

// Vector is a direction or displacement in world space.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// ClampLen shortens v to at most max, keeping its direction.
func (v Vector) ClampLen(max float64) Vector {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}
