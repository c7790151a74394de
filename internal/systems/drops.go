package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/pkg/clock"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
)

// Drop is an item lying on the overworld until the player taps it.
type Drop struct {
	ID        string          `json:"id"`
	Item      string          `json:"item"`
	Pos       domain.WorldPos `json:"pos"`
	CreatedAt int64           `json:"createdAt"` // Unix milliseconds
}

// DropRegistry holds the uncollected drops, oldest first.
type DropRegistry struct {
	clock  clock.Clock
	radius float64
	seq    int
	items  []Drop
	log    *logrus.Entry
}

func NewDropRegistry(clk clock.Clock) *DropRegistry {
	return &DropRegistry{
		clock:  clk,
		radius: domain.DropPickupRadius,
		log:    logger.For("drops"),
	}
}

// Spawn leaves item on the ground at pos.
func (r *DropRegistry) Spawn(item string, pos domain.WorldPos) Drop {
	r.seq++
	d := Drop{
		ID:        fmt.Sprintf("drop_%d", r.seq),
		Item:      item,
		Pos:       pos,
		CreatedAt: r.clock.Now().UnixMilli(),
	}
	r.items = append(r.items, d)

	r.log.WithFields(logrus.Fields{"drop_id": d.ID, "item": item, "pos": pos}).Debug("item dropped")
	return d
}

// PickUp removes the drop nearest to at, if one lies within the pickup
// radius.
func (r *DropRegistry) PickUp(at domain.WorldPos) (Drop, bool) {
	best := -1
	bestDist := r.radius
	for i, d := range r.items {
		if dist := at.DistanceTo(d.Pos); dist <= bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return Drop{}, false
	}

	d := r.items[best]
	r.items = append(r.items[:best], r.items[best+1:]...)
	return d, true
}

// List returns the drops, oldest first.
func (r *DropRegistry) List() []Drop {
	out := make([]Drop, len(r.items))
	copy(out, r.items)
	return out
}
