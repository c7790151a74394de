package domain

import "time"

// Entity kinds
const (
	EntityTypePlayer   = "PLAYER"
	EntityTypeMonster  = "MONSTER"
	EntityTypeResource = "RESOURCE"
)

// World geometry
const (
	TileSize  = 48.0
	HouseSize = 3
)

// Movement, in pixels per frame at delta 1
const (
	PlayerSpeed   = 2.0
	MonsterSpeed  = 1.0
	InputDeadzone = 0.1
)

// Hit points and damage
const (
	PlayerHP       = 100
	PlayerStrength = 5
	MonsterHP      = 30
)

// Experience
const (
	PlayerBaseMaxXP = 100
	MonsterXPValue  = 20
	LevelUpHPBonus  = 10
)

// Monster behaviour
const (
	ChaseRadius       = 5
	AttackRange       = 1
	AttackCooldown    = 60
	AttackDamage      = 5
	WanderProbability = 0.3
)

// Resources
const (
	ResourceHP        = 3
	GatherReachTiles  = 2.5
	ResourceRespawnMS = 10_000
)

// DropPickupRadius is how close, in pixels, a tap must land to pick up a
// drop.
const DropPickupRadius = 20.0

// Inn
const (
	InnReachTiles  = 4
	RentalDuration = 24 * time.Hour
)
