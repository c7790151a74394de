package presence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	redisclient "github.com/damn090909-boop/Simple-Game/internal/redis"
)

const playersKeyPrefix = "players:"

var errPlayerIDEmpty = errors.New("player ID cannot be empty")

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

var _ Repository = (*redisRepository)(nil)

// RedisConfig contains configuration for the Redis presence repository.
type RedisConfig struct {
	Client redisclient.Client
	// TTL expires stale players. Zero keeps them forever.
	TTL time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.New("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.New("ttl cannot be negative")
	}
	return nil
}

// NewRedis creates a presence repository storing one hash per player.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client, ttl: cfg.TTL}, nil
}

func (r *redisRepository) Publish(ctx context.Context, input PublishInput) (*PublishOutput, error) {
	p := input.Presence
	if p.PlayerID == "" {
		return nil, errPlayerIDEmpty
	}

	key := GetKey(p.PlayerID)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key,
		"map", string(p.MapID),
		"x", strconv.FormatFloat(p.X, 'f', -1, 64),
		"y", strconv.FormatFloat(p.Y, 'f', -1, 64),
		"facingLeft", strconv.FormatBool(p.FacingLeft),
		"timestamp", strconv.FormatInt(p.Timestamp, 10),
	)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to publish presence for %s: %w", p.PlayerID, err)
	}

	return &PublishOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errPlayerIDEmpty
	}

	fields, err := r.client.HGetAll(ctx, GetKey(input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get presence for %s: %w", input.PlayerID, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("player %s: %w", input.PlayerID, domain.ErrNotFound)
	}

	p := Presence{PlayerID: input.PlayerID, MapID: domain.MapID(fields["map"])}
	if p.X, err = strconv.ParseFloat(fields["x"], 64); err != nil {
		return nil, fmt.Errorf("presence %s: bad x: %w", input.PlayerID, err)
	}
	if p.Y, err = strconv.ParseFloat(fields["y"], 64); err != nil {
		return nil, fmt.Errorf("presence %s: bad y: %w", input.PlayerID, err)
	}
	if p.Timestamp, err = strconv.ParseInt(fields["timestamp"], 10, 64); err != nil {
		return nil, fmt.Errorf("presence %s: bad timestamp: %w", input.PlayerID, err)
	}
	p.FacingLeft, _ = strconv.ParseBool(fields["facingLeft"])

	return &GetOutput{Presence: p}, nil
}

// GetKey returns the Redis key for a player's presence
func GetKey(playerID string) string {
	return playersKeyPrefix + playerID
}
