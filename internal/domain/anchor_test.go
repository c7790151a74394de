package domain

import "testing"

func TestAnchor_RoundTrip(t *testing.T) {
	a := DefaultAnchor
	for col := 0; col < 20; col++ {
		for row := 0; row < 20; row++ {
			p := GridPos{Col: col, Row: row}
			if got := a.WorldToGrid(a.GridToWorld(p)); got != p {
				t.Fatalf("round trip of %v gave %v", p, got)
			}
		}
	}
}

func TestAnchor_GridToWorld(t *testing.T) {
	got := DefaultAnchor.GridToWorld(GridPos{Col: 5, Row: 5})
	want := WorldPos{X: 5*48 + 24, Y: 5*48 + 48}
	if got != want {
		t.Errorf("GridToWorld = %v, want %v", got, want)
	}
}

func TestAnchor_WorldToGrid(t *testing.T) {
	tests := []struct {
		name string
		in   WorldPos
		want GridPos
	}{
		{"feet on bottom edge", WorldPos{X: 24, Y: 48}, GridPos{0, 0}},
		{"feet just above next row", WorldPos{X: 47.9, Y: 71.9}, GridPos{0, 0}},
		{"feet cross into next row", WorldPos{X: 48, Y: 72}, GridPos{1, 1}},
		{"negative x", WorldPos{X: -1, Y: 48}, GridPos{-1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultAnchor.WorldToGrid(tt.in); got != tt.want {
				t.Errorf("WorldToGrid(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVector_ClampLen(t *testing.T) {
	v := Vector{X: 3, Y: 4}.ClampLen(1)
	if l := v.Len(); l < 0.999 || l > 1.001 {
		t.Errorf("clamped length = %f", l)
	}
	small := Vector{X: 0.3, Y: 0}
	if small.ClampLen(1) != small {
		t.Error("short vectors must be left alone")
	}
}

func TestFacingFor(t *testing.T) {
	if !FacingFor(-1, false) {
		t.Error("negative dx should face left")
	}
	if FacingFor(1, true) {
		t.Error("positive dx should face right")
	}
	if !FacingFor(0, true) || FacingFor(0, false) {
		t.Error("zero dx must keep facing")
	}
}
