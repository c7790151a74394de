package systems

import (
	"sort"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

// PortalRegistry maps portal cells of each map to their destinations.
type PortalRegistry struct {
	byMap map[domain.MapID]map[domain.GridPos]domain.Portal
}

func NewPortalRegistry() *PortalRegistry {
	return &PortalRegistry{byMap: make(map[domain.MapID]map[domain.GridPos]domain.Portal)}
}

// Add registers p on mapID, replacing any portal already on that cell.
func (r *PortalRegistry) Add(mapID domain.MapID, p domain.Portal) {
	cells, ok := r.byMap[mapID]
	if !ok {
		cells = make(map[domain.GridPos]domain.Portal)
		r.byMap[mapID] = cells
	}
	cells[p.Cell] = p
}

// Reset forgets every portal of mapID.
func (r *PortalRegistry) Reset(mapID domain.MapID) {
	delete(r.byMap, mapID)
}

func (r *PortalRegistry) Remove(mapID domain.MapID, cell domain.GridPos) {
	delete(r.byMap[mapID], cell)
}

// At returns the portal on cell, if any.
func (r *PortalRegistry) At(mapID domain.MapID, cell domain.GridPos) (domain.Portal, bool) {
	p, ok := r.byMap[mapID][cell]
	return p, ok
}

// List returns the portals of mapID ordered by row then column.
func (r *PortalRegistry) List(mapID domain.MapID) []domain.Portal {
	out := make([]domain.Portal, 0, len(r.byMap[mapID]))
	for _, p := range r.byMap[mapID] {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cell.Row != out[j].Cell.Row {
			return out[i].Cell.Row < out[j].Cell.Row
		}
		return out[i].Cell.Col < out[j].Cell.Col
	})
	return out
}

// HousePortal is the door of a house leading into its interior.
func HousePortal(s domain.Structure) domain.Portal {
	return domain.Portal{
		Cell:      s.Footprint.PortalCell(),
		TargetMap: domain.InteriorMapID(s.ID),
		Spawn:     domain.InteriorSpawn,
	}
}
