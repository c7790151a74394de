package domain

import "testing"

func TestHouseFootprint(t *testing.T) {
	fp := HouseFootprint(GridPos{Col: 5, Row: 5})

	if got := fp.PortalCell(); got != (GridPos{Col: 6, Row: 7}) {
		t.Errorf("PortalCell = %v, want (6,7)", got)
	}
	if !fp.HasPortal() {
		t.Error("house door should sit inside the footprint")
	}

	cells := fp.Cells()
	if len(cells) != 9 {
		t.Fatalf("got %d cells, want 9", len(cells))
	}
	if cells[0] != fp.Anchor || cells[8] != (GridPos{Col: 7, Row: 7}) {
		t.Errorf("unexpected cell order: first %v last %v", cells[0], cells[8])
	}
}

func TestFootprint_Degenerate(t *testing.T) {
	if cells := (Footprint{Width: 0, Height: 3}).Cells(); cells != nil {
		t.Errorf("zero-width footprint has cells: %v", cells)
	}
}

func TestMapID(t *testing.T) {
	id := InteriorMapID("abc")
	if !id.IsInterior() {
		t.Fatal("interior id not recognised")
	}
	if sid, ok := id.StructureID(); !ok || sid != "abc" {
		t.Errorf("StructureID = %q, %v", sid, ok)
	}
	if MainWorld.IsInterior() {
		t.Error("main world is not an interior")
	}

	room := InnRoomMapID("p1")
	if owner, ok := room.InnRoomOwner(); !ok || owner != "p1" {
		t.Errorf("InnRoomOwner = %q, %v", owner, ok)
	}
	if room.IsInterior() {
		t.Error("inn room is not a house interior")
	}
	if _, ok := id.InnRoomOwner(); ok {
		t.Error("house interior has no inn room owner")
	}
}

func TestInnFootprint(t *testing.T) {
	fp := InnFootprint()

	if fp.HasPortal() {
		t.Error("the inn has no door")
	}
	cells := fp.Cells()
	if len(cells) != 9 || cells[0] != InnAnchor {
		t.Fatalf("cells = %v", cells)
	}
	for _, c := range cells {
		if c == InnDoorstep {
			t.Errorf("doorstep %v is inside the inn", c)
		}
	}
}

func TestPath_IsContiguous(t *testing.T) {
	start := GridPos{0, 0}
	good := Path{{0, 1}, {1, 1}, {1, 2}}
	if !good.IsContiguous(start) {
		t.Error("expected contiguous")
	}
	bad := Path{{0, 1}, {1, 2}}
	if bad.IsContiguous(start) {
		t.Error("diagonal step should break contiguity")
	}
	if last, ok := good.Last(); !ok || last != (GridPos{1, 2}) {
		t.Errorf("Last = %v %v", last, ok)
	}
}
