package domain

import "strings"

// MapID names an activatable map.
type MapID string

const MainWorld MapID = "main_world"

const (
	interiorPrefix = "interior_"
	innRoomPrefix  = "inn_room_"
)

// InteriorMapID returns the map id of a structure's interior.
func InteriorMapID(structureID string) MapID {
	return MapID(interiorPrefix + structureID)
}

// IsInterior reports whether the map is a building interior.
func (m MapID) IsInterior() bool {
	return strings.HasPrefix(string(m), interiorPrefix)
}

// StructureID returns the owning structure of an interior map.
func (m MapID) StructureID() (string, bool) {
	if !m.IsInterior() {
		return "", false
	}
	return strings.TrimPrefix(string(m), interiorPrefix), true
}

// InnRoomMapID returns the map id of the inn room rented by playerID.
func InnRoomMapID(playerID string) MapID {
	return MapID(innRoomPrefix + playerID)
}

// InnRoomOwner returns the player renting an inn room map.
func (m MapID) InnRoomOwner() (string, bool) {
	if !strings.HasPrefix(string(m), innRoomPrefix) {
		return "", false
	}
	return strings.TrimPrefix(string(m), innRoomPrefix), true
}

// Rental is the lease on a player's inn room.
type Rental struct {
	MapID     MapID `json:"mapId"`
	ExpiresAt int64 `json:"expiresAt"` // Unix milliseconds
}

// ActiveAt reports whether the lease still runs at nowMs.
func (r Rental) ActiveAt(nowMs int64) bool {
	return nowMs < r.ExpiresAt
}

// Portal links a walkable cell on one map to a spawn cell on another.
type Portal struct {
	Cell      GridPos `json:"cell"`
	TargetMap MapID   `json:"targetMap"`
	Spawn     GridPos `json:"spawn"`
}

// Well-known cells of the generated maps.
var (
	OverworldSpawn   = GridPos{Col: 5, Row: 5}
	OverworldReturn  = GridPos{Col: 10, Row: 10}
	InteriorSpawn    = GridPos{Col: 5, Row: 8}
	InteriorExitCell = GridPos{Col: 5, Row: 9}

	InnAnchor    = GridPos{Col: 15, Row: 5}
	InnDoorstep  = GridPos{Col: 16, Row: 8}
	InnRoomSpawn = GridPos{Col: 5, Row: 5}
)
