package structures

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
	store map[domain.MapID]map[string]domain.Structure
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[domain.MapID]map[string]domain.Structure),
	}
}

func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Structure.ID == "" {
		return nil, errIDEmpty
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.store[input.MapID]
	if !ok {
		m = make(map[string]domain.Structure)
		r.store[input.MapID] = m
	}
	m[input.Structure.ID] = input.Structure

	return &SaveOutput{Structure: input.Structure}, nil
}

func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Structure, 0, len(r.store[input.MapID]))
	for _, s := range r.store[input.MapID] {
		out = append(out, s)
	}
	sortStructures(out)

	return &ListOutput{Structures: out}, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errIDEmpty
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[input.MapID][input.ID]; !ok {
		return nil, fmt.Errorf("structure %s: %w", input.ID, domain.ErrNotFound)
	}
	delete(r.store[input.MapID], input.ID)

	return &DeleteOutput{}, nil
}
