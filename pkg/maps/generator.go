package maps

import (
	"fmt"
	"math/rand"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

// Map sizes
const (
	OverworldSize = 20
	InteriorSize  = 10
	MonsterCount  = 5
)

// Overworld generates the open world: a walled square with monsters kept
// away from the spawn point.
func Overworld(rng *rand.Rand) *Map {
	spawn := domain.OverworldSpawn
	safe := Rect{X: spawn.Col - 2, Y: spawn.Row - 2, W: 5, H: 5}

	return New(domain.MainWorld, OverworldSize, OverworldSize).
		WithBorder().
		WithSpawn(spawn).
		WithMonsters(MonsterCount, safe, rng).
		Build()
}

// Interior generates the inside of a structure: a small walled room whose
// exit mat leads back outside.
func Interior(structureID string) *Map {
	return room(domain.InteriorMapID(structureID), domain.InteriorSpawn, domain.OverworldReturn)
}

// InnRoom generates the inn room rented by playerID. Its exit mat leaves the
// player on the inn's doorstep.
func InnRoom(playerID string) *Map {
	return room(domain.InnRoomMapID(playerID), domain.InnRoomSpawn, domain.InnDoorstep)
}

func room(id domain.MapID, spawn, exitTo domain.GridPos) *Map {
	return New(id, InteriorSize, InteriorSize).
		WithBorder().
		WithPortal(domain.InteriorExitCell, domain.MainWorld, exitTo).
		WithSpawn(spawn).
		Build()
}

// ForID regenerates the map with the given id. Ids that name no known map
// return domain.ErrNotFound.
func ForID(id domain.MapID, rng *rand.Rand) (*Map, error) {
	if id == domain.MainWorld {
		return Overworld(rng), nil
	}
	if sid, ok := id.StructureID(); ok && sid != "" {
		return Interior(sid), nil
	}
	if owner, ok := id.InnRoomOwner(); ok && owner != "" {
		return InnRoom(owner), nil
	}
	return nil, fmt.Errorf("map %q: %w", id, domain.ErrNotFound)
}
