package systems

import (
	"fmt"
	"time"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/pkg/clock"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
	"github.com/sirupsen/logrus"
)

type ResourceKind string

const (
	ResourceTree ResourceKind = "tree"
	ResourceRock ResourceKind = "rock"
)

// Yield is the item a gather hit produces.
func (k ResourceKind) Yield() string {
	switch k {
	case ResourceTree:
		return "wood"
	case ResourceRock:
		return "stone"
	default:
		return ""
	}
}

// Resource is a harvestable object standing on one grid cell.
type Resource struct {
	ID         string         `json:"id"`
	Kind       ResourceKind   `json:"kind"`
	Cell       domain.GridPos `json:"cell"`
	HP         int            `json:"hp"`
	DepletedAt time.Time      `json:"-"`
}

func (r *Resource) Depleted() bool { return r.HP <= 0 }

// GatherResult describes one successful hit.
type GatherResult struct {
	ResourceID string         `json:"resourceId"`
	Item       string         `json:"item"`
	Cell       domain.GridPos `json:"cell"`
	HPLeft     int            `json:"hpLeft"`
	Depleted   bool           `json:"depleted"`

	// DropID names the item left on the ground, when the caller drops one
	DropID string `json:"dropId,omitempty"`
}

// ResourceRegistry owns the harvestable objects of the overworld. Standing
// resources occupy their cell; depleted ones do not until they respawn.
type ResourceRegistry struct {
	anchor  domain.Anchor
	clock   clock.Clock
	respawn time.Duration
	reach   float64
	enabled bool

	items []*Resource
	log   *logrus.Entry
}

var _ OccupancyProvider = (*ResourceRegistry)(nil)

func NewResourceRegistry(anchor domain.Anchor, clk clock.Clock) *ResourceRegistry {
	return &ResourceRegistry{
		anchor:  anchor,
		clock:   clk,
		respawn: domain.ResourceRespawnMS * time.Millisecond,
		reach:   domain.GatherReachTiles * anchor.TileSize,
		enabled: true,
		log:     logger.For("resources"),
	}
}

// Spawn places a fresh resource on cell.
func (r *ResourceRegistry) Spawn(kind ResourceKind, cell domain.GridPos) *Resource {
	res := &Resource{
		ID:   fmt.Sprintf("%s_%d_%d", kind, cell.Col, cell.Row),
		Kind: kind,
		Cell: cell,
		HP:   domain.ResourceHP,
	}
	r.items = append(r.items, res)
	return res
}

// SpawnDefault lays out the overworld's five trees and five rocks.
func (r *ResourceRegistry) SpawnDefault() {
	for i := 0; i < 5; i++ {
		r.Spawn(ResourceTree, domain.GridPos{Col: 3 + i*2, Row: 3})
		r.Spawn(ResourceRock, domain.GridPos{Col: 3 + i*2, Row: 8})
	}
}

// SetEnabled turns occupancy and gathering on or off, e.g. while the player
// is inside a building.
func (r *ResourceRegistry) SetEnabled(on bool) { r.enabled = on }

// Occupied implements OccupancyProvider.
func (r *ResourceRegistry) Occupied(pos domain.WorldPos) bool {
	return r.OccupiesCell(r.anchor.WorldToGrid(pos))
}

// OccupiesCell reports whether a standing resource is on cell.
func (r *ResourceRegistry) OccupiesCell(cell domain.GridPos) bool {
	if !r.enabled {
		return false
	}
	for _, res := range r.items {
		if res.Cell == cell && !res.Depleted() {
			return true
		}
	}
	return false
}

// AnyOn reports whether any resource, standing or depleted, sits on one of
// cells. Depleted resources still own their cell for respawning.
func (r *ResourceRegistry) AnyOn(cells []domain.GridPos) bool {
	if !r.enabled {
		return false
	}
	for _, res := range r.items {
		for _, c := range cells {
			if res.Cell == c {
				return true
			}
		}
	}
	return false
}

// Gather hits resource id from a player standing at from.
func (r *ResourceRegistry) Gather(from domain.WorldPos, id string) (GatherResult, error) {
	if !r.enabled {
		return GatherResult{}, fmt.Errorf("resource %s: %w", id, domain.ErrNotFound)
	}
	res := r.find(id)
	if res == nil {
		return GatherResult{}, fmt.Errorf("resource %s: %w", id, domain.ErrNotFound)
	}
	if res.Depleted() {
		return GatherResult{}, fmt.Errorf("resource %s: %w", id, domain.ErrDepleted)
	}
	if d := from.DistanceTo(r.anchor.GridToWorld(res.Cell)); d > r.reach {
		return GatherResult{}, fmt.Errorf("resource %s at %.0fpx: %w", id, d, domain.ErrOutOfReach)
	}

	res.HP--
	out := GatherResult{ResourceID: res.ID, Item: res.Kind.Yield(), Cell: res.Cell, HPLeft: res.HP}
	if res.HP <= 0 {
		res.HP = 0
		res.DepletedAt = r.clock.Now()
		out.Depleted = true
		r.log.WithFields(logrus.Fields{"resource_id": res.ID, "cell": res.Cell}).Info("resource depleted")
	}
	return out, nil
}

// Update respawns resources whose timer has run out. Returns the ids that
// came back.
func (r *ResourceRegistry) Update() []string {
	now := r.clock.Now()
	var back []string
	for _, res := range r.items {
		if res.Depleted() && now.Sub(res.DepletedAt) >= r.respawn {
			res.HP = domain.ResourceHP
			res.DepletedAt = time.Time{}
			back = append(back, res.ID)
		}
	}
	return back
}

// List returns copies of all resources.
func (r *ResourceRegistry) List() []Resource {
	out := make([]Resource, len(r.items))
	for i, res := range r.items {
		out[i] = *res
	}
	return out
}

func (r *ResourceRegistry) find(id string) *Resource {
	for _, res := range r.items {
		if res.ID == id {
			return res
		}
	}
	return nil
}
