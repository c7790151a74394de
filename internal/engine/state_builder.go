package engine

import (
	"strings"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/infrastructure/storage"
	"github.com/damn090909-boop/Simple-Game/pkg/api"
)

// BuildState assembles the full snapshot of the session for a client.
func (g *Game) BuildState() *api.SessionView {
	// 1. Grid
	view := &api.SessionView{
		MapID: string(g.mapID),
		Grid: api.GridMeta{
			Width:   g.grid.Width(),
			Height:  g.grid.Height(),
			Version: g.grid.Version(),
		},
		Rows:      RenderRows(g.grid),
		Player:    g.entityView(g.player),
		MoveState: g.mover.State().String(),
		Monsters:  make([]api.EntityView, 0, len(g.monsters)),
		Resources: make([]api.ResourceView, 0),
		Portals:   make([]api.PortalView, 0),
		Drops:     make([]api.DropView, 0),
		Inventory: make(map[string]int, len(g.inventory)),
	}

	// 2. Entities
	for _, wp := range g.mover.Waypoints() {
		view.Waypoints = append(view.Waypoints, api.PointView{X: wp.X, Y: wp.Y})
	}
	for _, m := range g.monsters {
		view.Monsters = append(view.Monsters, g.entityView(m.entity))
	}

	// 3. Map objects
	if g.mapID == domain.MainWorld {
		for _, r := range g.resources.List() {
			view.Resources = append(view.Resources, api.ResourceView{
				ID:       r.ID,
				Kind:     string(r.Kind),
				Col:      r.Cell.Col,
				Row:      r.Cell.Row,
				HP:       r.HP,
				Depleted: r.Depleted(),
			})
		}
		for _, d := range g.drops.List() {
			view.Drops = append(view.Drops, api.DropView{ID: d.ID, Item: d.Item, X: d.Pos.X, Y: d.Pos.Y})
		}
	}
	for _, p := range g.portals.List(g.mapID) {
		view.Portals = append(view.Portals, api.PortalView{Col: p.Cell.Col, Row: p.Cell.Row, Target: string(p.TargetMap)})
	}
	for item, n := range g.inventory {
		view.Inventory[item] = n
	}
	if r, ok := g.Rental(); ok {
		view.Rental = &api.RentalView{MapID: string(r.MapID), ExpiresAt: r.ExpiresAt}
	}

	return view
}

func (g *Game) entityView(e *domain.Entity) api.EntityView {
	cell := g.anchor.WorldToGrid(e.Pos)
	v := api.EntityView{
		ID:         e.ID,
		Type:       e.Type,
		Name:       e.Name,
		X:          e.Pos.X,
		Y:          e.Pos.Y,
		Col:        cell.Col,
		Row:        cell.Row,
		FacingLeft: e.FacingLeft,
	}
	if e.Stats != nil {
		v.Stats = &api.StatsView{
			HP:     e.Stats.HP,
			MaxHP:  e.Stats.MaxHP,
			IsDead: e.Stats.IsDead,
			Level:  e.Stats.Level,
			XP:     e.Stats.XP,
			MaxXP:  e.Stats.MaxXP,
		}
	}
	return v
}

// RenderRows draws the grid one string per row: '.' open, '#' blocked,
// 'D' portal.
func RenderRows(g *domain.Grid) []string {
	rows := make([]string, 0, g.Height())
	var sb strings.Builder
	for _, row := range g.Snapshot() {
		sb.Reset()
		for _, code := range row {
			sb.WriteByte(terrainGlyph(code))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

func terrainGlyph(code domain.TerrainCode) byte {
	switch code {
	case domain.TerrainOpen:
		return '.'
	case domain.TerrainPortal:
		return 'D'
	default:
		return '#'
	}
}

// Snapshot captures the active grid, plus the overworld structures when the
// overworld is active.
func (g *Game) Snapshot() *storage.Snapshot {
	s := &storage.Snapshot{
		MapID:     g.mapID,
		Timestamp: g.clock.Now().UnixMilli(),
		Cells:     g.grid.Snapshot(),
	}
	if g.mapID == domain.MainWorld {
		s.Structures = g.Structures()
	}
	return s
}

// NewPathView describes the outcome of a path query.
func NewPathView(from, to domain.GridPos, path domain.Path, found bool) api.PathView {
	v := api.PathView{
		From:  api.CellView{Col: from.Col, Row: from.Row},
		To:    api.CellView{Col: to.Col, Row: to.Row},
		Found: found,
		Cells: make([]api.CellView, 0, len(path)),
	}
	for _, c := range path {
		v.Cells = append(v.Cells, api.CellView{Col: c.Col, Row: c.Row})
	}
	v.Length = len(v.Cells)
	return v
}
