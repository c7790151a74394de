// Package presence stores the last published position of each player so
// other clients can render them.
package presence

//go:generate mockgen -destination=mock/mock_repository.go -package=presencemock github.com/damn090909-boop/Simple-Game/internal/repositories/presence Repository

import (
	"context"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

// Presence is one player's last known whereabouts.
type Presence struct {
	PlayerID   string       `json:"playerId"`
	MapID      domain.MapID `json:"mapId"`
	X          float64      `json:"x"`
	Y          float64      `json:"y"`
	FacingLeft bool         `json:"facingLeft"`
	Timestamp  int64        `json:"timestamp"` // unix millis
}

// Repository defines the interface for presence persistence
type Repository interface {
	// Publish overwrites the player's presence
	Publish(ctx context.Context, input PublishInput) (*PublishOutput, error)

	// Get returns domain.ErrNotFound if the player never published
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// PublishInput defines the input for publishing a position
type PublishInput struct {
	Presence Presence
}

// PublishOutput defines the output for publishing a position
type PublishOutput struct{}

// GetInput defines the input for reading a position
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for reading a position
type GetOutput struct {
	Presence Presence
}
