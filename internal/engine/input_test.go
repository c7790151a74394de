package engine

import (
	"math"
	"testing"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

func TestJoystickVector(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   domain.Vector
	}{
		{"centre", 0, 0, domain.Vector{}},
		{"half right", 30, 0, domain.Vector{X: 0.5}},
		{"full down", 0, 60, domain.Vector{Y: 1}},
		{"clamped", -120, 0, domain.Vector{X: -1}},
		{"clamped diagonal", 600, 800, domain.Vector{X: 0.6, Y: 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JoystickVector(tt.dx, tt.dy)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("JoystickVector(%v, %v) = %+v, want %+v", tt.dx, tt.dy, got, tt.want)
			}
			if got.Len() > 1+1e-9 {
				t.Errorf("length %v exceeds 1", got.Len())
			}
		})
	}
}

func TestTapCell(t *testing.T) {
	tests := []struct {
		p    domain.WorldPos
		want domain.GridPos
	}{
		{domain.WorldPos{X: 0, Y: 0}, domain.GridPos{}},
		{domain.WorldPos{X: 47.9, Y: 47.9}, domain.GridPos{}},
		{domain.WorldPos{X: 48, Y: 96}, domain.GridPos{Col: 1, Row: 2}},
		{domain.WorldPos{X: 400, Y: 250}, domain.GridPos{Col: 8, Row: 5}},
	}

	for _, tt := range tests {
		if got := TapCell(tt.p, 48); got != tt.want {
			t.Errorf("TapCell(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
