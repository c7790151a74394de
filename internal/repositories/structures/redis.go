package structures

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/pkg/clock"
	redisclient "github.com/damn090909-boop/Simple-Game/internal/redis"
)

const structuresKeyPrefix = "structures:"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

var _ Repository = (*redisRepository)(nil)

// RedisConfig contains configuration for the Redis structures repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.New("client cannot be nil")
	}
	if cfg.Clock == nil {
		return errors.New("clock cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed structures repository. Each map is one
// hash of structure ID to JSON.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Structure.ID == "" {
		return nil, errIDEmpty
	}

	s := input.Structure
	if s.CreatedAt == 0 {
		s.CreatedAt = r.clock.Now().UnixMilli()
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal structure %s: %w", s.ID, err)
	}

	if err := r.client.HSet(ctx, GetKey(input.MapID), s.ID, data).Err(); err != nil {
		return nil, fmt.Errorf("failed to save structure %s: %w", s.ID, err)
	}

	return &SaveOutput{Structure: s}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	raw, err := r.client.HGetAll(ctx, GetKey(input.MapID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list structures on %s: %w", input.MapID, err)
	}

	out := make([]domain.Structure, 0, len(raw))
	for id, v := range raw {
		var s domain.Structure
		if err := json.Unmarshal([]byte(v), &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal structure %s: %w", id, err)
		}
		out = append(out, s)
	}
	sortStructures(out)

	return &ListOutput{Structures: out}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errIDEmpty
	}

	n, err := r.client.HDel(ctx, GetKey(input.MapID), input.ID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to delete structure %s: %w", input.ID, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("structure %s: %w", input.ID, domain.ErrNotFound)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key holding a map's structures
func GetKey(mapID domain.MapID) string {
	return structuresKeyPrefix + string(mapID)
}

// replay order must not depend on hash iteration
func sortStructures(s []domain.Structure) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].CreatedAt != s[j].CreatedAt {
			return s[i].CreatedAt < s[j].CreatedAt
		}
		return s[i].ID < s[j].ID
	})
}
