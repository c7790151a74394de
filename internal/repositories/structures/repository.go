// Package structures persists placed buildings so they can be replayed into
// the grid whenever a map is activated.
package structures

//go:generate mockgen -destination=mock/mock_repository.go -package=structuresmock github.com/damn090909-boop/Simple-Game/internal/repositories/structures Repository

import (
	"context"
	"errors"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

var errIDEmpty = errors.New("structure ID cannot be empty")

// Repository defines the interface for structure persistence
type Repository interface {
	// Save creates or overwrites a structure on a map
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns every structure on a map, oldest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a structure. Returns domain.ErrNotFound if it does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a structure
type SaveInput struct {
	MapID     domain.MapID
	Structure domain.Structure
}

// SaveOutput defines the output for saving a structure
type SaveOutput struct {
	Structure domain.Structure
}

// ListInput defines the input for listing structures
type ListInput struct {
	MapID domain.MapID
}

// ListOutput defines the output for listing structures
type ListOutput struct {
	Structures []domain.Structure
}

// DeleteInput defines the input for deleting a structure
type DeleteInput struct {
	MapID domain.MapID
	ID    string
}

// DeleteOutput defines the output for deleting a structure
type DeleteOutput struct{}
