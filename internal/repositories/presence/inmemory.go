package presence

import (
	"context"
	"fmt"
	"sync"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

// InMemoryRepository implements Repository using in-memory storage. Used
// when no Redis address is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]Presence
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{store: make(map[string]Presence)}
}

func (r *InMemoryRepository) Publish(_ context.Context, input PublishInput) (*PublishOutput, error) {
	if input.Presence.PlayerID == "" {
		return nil, errPlayerIDEmpty
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.Presence.PlayerID] = input.Presence

	return &PublishOutput{}, nil
}

func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errPlayerIDEmpty
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.store[input.PlayerID]
	if !ok {
		return nil, fmt.Errorf("player %s: %w", input.PlayerID, domain.ErrNotFound)
	}
	return &GetOutput{Presence: p}, nil
}
