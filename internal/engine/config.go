package engine

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

// Config holds the start-up parameters of a session.
type Config struct {
	// Seed drives map generation, monster placement and AI rolls.
	Seed int64

	PlayerID   string
	PlayerName string

	TileSize      float64
	PlayerSpeed   float64 // px per frame
	MonsterSpeed  float64 // px per frame
	InputDeadzone float64

	// FrameRate is the number of simulated frames per second; delta 1 is
	// one frame at this rate.
	FrameRate    int
	SyncInterval time.Duration

	MaxMonsters        int
	MonsterSpawnFrames int
	MonsterThinkFrames int
	PlayerAttackDamage int

	Port        string
	RedisAddr   string
	SnapshotDir string
}

// NewConfig returns the default configuration with a random seed.
func NewConfig() Config {
	return Config{
		Seed:               time.Now().UnixNano(),
		PlayerID:           "player",
		PlayerName:         "Player",
		TileSize:           domain.TileSize,
		PlayerSpeed:        domain.PlayerSpeed,
		MonsterSpeed:       domain.MonsterSpeed,
		InputDeadzone:      domain.InputDeadzone,
		FrameRate:          60,
		SyncInterval:       100 * time.Millisecond,
		MaxMonsters:        5,
		MonsterSpawnFrames: 300,
		MonsterThinkFrames: 60,
		PlayerAttackDamage: 10,
		Port:               "8080",
		RedisAddr:          "",
		SnapshotDir:        "snapshots",
	}
}

// LoadEnv overrides fields from GAME_* environment variables.
func (c *Config) LoadEnv() error {
	if v := os.Getenv("GAME_PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("GAME_REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("GAME_PLAYER_ID"); v != "" {
		c.PlayerID = v
	}
	if v := os.Getenv("GAME_SNAPSHOT_DIR"); v != "" {
		c.SnapshotDir = v
	}
	if v := os.Getenv("GAME_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("GAME_SEED: %w", err)
		}
		c.Seed = seed
	}
	return nil
}

// Validate rejects configurations the frame loop cannot run with.
func (c Config) Validate() error {
	if c.PlayerID == "" {
		return errors.New("player id is required")
	}
	if c.TileSize <= 0 {
		return errors.New("tile size must be positive")
	}
	if c.PlayerSpeed <= 0 || c.MonsterSpeed <= 0 {
		return errors.New("speeds must be positive")
	}
	if c.InputDeadzone < 0 || c.InputDeadzone >= 1 {
		return errors.New("input deadzone must be in [0, 1)")
	}
	if c.FrameRate <= 0 {
		return errors.New("frame rate must be positive")
	}
	if c.SyncInterval < 0 {
		return errors.New("sync interval cannot be negative")
	}
	if c.MaxMonsters < 0 || c.MonsterSpawnFrames <= 0 || c.MonsterThinkFrames <= 0 {
		return errors.New("monster settings must be positive")
	}
	return nil
}

// Anchor is the world/grid conversion for entity feet at this tile size.
func (c Config) Anchor() domain.Anchor {
	return domain.Anchor{TileSize: c.TileSize, FeetOffset: c.TileSize / 2}
}

// FrameDuration is the wall-clock length of one frame.
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}
