package systems

import (
	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

//go:generate mockgen -source=collision.go -destination=mock/mock_occupancy.go -package=mock

// OccupancyProvider reports dynamic obstacles that are not baked into the
// grid, such as standing resources.
type OccupancyProvider interface {
	Occupied(pos domain.WorldPos) bool
}

// CollisionResolver decides whether a proposed position is legal. It is a
// binary accept/reject per frame: no sliding, no push-out.
type CollisionResolver struct {
	grid      *domain.Grid
	anchor    domain.Anchor
	providers []OccupancyProvider
}

func NewCollisionResolver(grid *domain.Grid, anchor domain.Anchor, providers ...OccupancyProvider) *CollisionResolver {
	return &CollisionResolver{grid: grid, anchor: anchor, providers: providers}
}

// Register adds a dynamic obstacle source.
func (r *CollisionResolver) Register(p OccupancyProvider) {
	r.providers = append(r.providers, p)
}

// Allowed reports whether an entity may stand at pos.
func (r *CollisionResolver) Allowed(pos domain.WorldPos) bool {
	// 1. Static grid, through the shared feet anchor
	cell := r.anchor.WorldToGrid(pos)
	if !r.grid.IsWalkable(cell.Col, cell.Row) {
		return false
	}

	// 2. Dynamic obstacles
	for _, p := range r.providers {
		if p.Occupied(pos) {
			return false
		}
	}
	return true
}

// Resolve returns proposed if it is legal, otherwise current unchanged.
func (r *CollisionResolver) Resolve(current, proposed domain.WorldPos) (domain.WorldPos, bool) {
	if !r.Allowed(proposed) {
		return current, false
	}
	return proposed, true
}
