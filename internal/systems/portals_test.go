package systems

import (
	"testing"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPortalRegistry(t *testing.T) {
	r := NewPortalRegistry()
	house := domain.Structure{ID: "h1", Footprint: domain.HouseFootprint(domain.GridPos{Col: 5, Row: 5})}

	r.Add(domain.MainWorld, HousePortal(house))
	r.Add(domain.InteriorMapID("h1"), domain.Portal{Cell: domain.InteriorExitCell, TargetMap: domain.MainWorld, Spawn: domain.OverworldReturn})

	p, ok := r.At(domain.MainWorld, domain.GridPos{Col: 6, Row: 7})
	assert.True(t, ok)
	assert.Equal(t, domain.InteriorMapID("h1"), p.TargetMap)
	assert.Equal(t, domain.InteriorSpawn, p.Spawn)

	_, ok = r.At(domain.MainWorld, domain.GridPos{Col: 5, Row: 9})
	assert.False(t, ok, "exit mat belongs to the interior only")

	exit, ok := r.At(domain.InteriorMapID("h1"), domain.InteriorExitCell)
	assert.True(t, ok)
	assert.Equal(t, domain.MainWorld, exit.TargetMap)
	assert.Equal(t, domain.OverworldReturn, exit.Spawn)

	r.Remove(domain.MainWorld, p.Cell)
	assert.Empty(t, r.List(domain.MainWorld))
}

func TestPortalRegistry_ListOrder(t *testing.T) {
	r := NewPortalRegistry()
	r.Add(domain.MainWorld, domain.Portal{Cell: domain.GridPos{Col: 9, Row: 2}})
	r.Add(domain.MainWorld, domain.Portal{Cell: domain.GridPos{Col: 1, Row: 4}})
	r.Add(domain.MainWorld, domain.Portal{Cell: domain.GridPos{Col: 3, Row: 2}})

	list := r.List(domain.MainWorld)
	assert.Equal(t, []domain.GridPos{{Col: 3, Row: 2}, {Col: 9, Row: 2}, {Col: 1, Row: 4}},
		[]domain.GridPos{list[0].Cell, list[1].Cell, list[2].Cell})
}

func TestPortalRegistry_Reset(t *testing.T) {
	r := NewPortalRegistry()
	r.Add(domain.MainWorld, domain.Portal{Cell: domain.GridPos{Col: 1, Row: 1}})
	r.Add("interior_x", domain.Portal{Cell: domain.InteriorExitCell, TargetMap: domain.MainWorld})

	r.Reset(domain.MainWorld)

	if got := r.List(domain.MainWorld); len(got) != 0 {
		t.Errorf("main world portals after reset = %v", got)
	}
	if _, ok := r.At("interior_x", domain.InteriorExitCell); !ok {
		t.Error("other maps must keep their portals")
	}
}
