package engine

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/engine/handlers"
	"github.com/damn090909-boop/Simple-Game/internal/pkg/clock"
	"github.com/damn090909-boop/Simple-Game/internal/pkg/idgen"
	"github.com/damn090909-boop/Simple-Game/internal/repositories/presence"
	"github.com/damn090909-boop/Simple-Game/internal/repositories/structures"
	"github.com/damn090909-boop/Simple-Game/internal/systems"
	"github.com/damn090909-boop/Simple-Game/pkg/api"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
	"github.com/damn090909-boop/Simple-Game/pkg/maps"
	"github.com/sirupsen/logrus"
)

const houseKind = "house"

// Deps are the collaborators of a Game. Nil fields get in-process defaults.
type Deps struct {
	Clock      clock.Clock
	IDs        idgen.Generator
	Structures structures.Repository
	Presence   presence.Repository
}

// Game is one player's session on the frame loop: the active grid, the
// systems operating on it and the entities living on it. It is not safe for
// concurrent use; Runner serialises access.
type Game struct {
	cfg    Config
	anchor domain.Anchor
	rng    *rand.Rand
	clock  clock.Clock
	ids    idgen.Generator
	repo   structures.Repository
	log    *logrus.Entry

	// Active map
	grid      *domain.Grid
	mapID     domain.MapID
	placer    *systems.StructurePlacer
	portals   *systems.PortalRegistry
	resources *systems.ResourceRegistry
	drops     *systems.DropRegistry
	resolver  *systems.CollisionResolver
	houses    []domain.Structure // overworld structures, oldest first

	// Player
	player    *domain.Entity
	mover     *systems.MovementController
	lastCell  domain.GridPos
	inventory map[string]int
	rental    *domain.Rental

	// Monsters
	monsters   []*monster
	spawnTimer int
	monsterSeq int

	sync       *PositionSync
	frame      int64
	logs       []api.LogEntry
	mapChanged bool
}

var _ handlers.Session = (*Game)(nil)

// NewGame loads persisted structures and activates the overworld with the
// player on its spawn point.
func NewGame(ctx context.Context, cfg Config, deps Deps) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	if deps.IDs == nil {
		deps.IDs = idgen.NewUUID(houseKind)
	}
	if deps.Structures == nil {
		deps.Structures = structures.NewInMemory()
	}
	if deps.Presence == nil {
		deps.Presence = presence.NewInMemory()
	}

	anchor := cfg.Anchor()
	grid := domain.NewOpenGrid(0, 0)
	resources := systems.NewResourceRegistry(anchor, deps.Clock)
	resources.SpawnDefault()

	g := &Game{
		cfg:       cfg,
		anchor:    anchor,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		clock:     deps.Clock,
		ids:       deps.IDs,
		repo:      deps.Structures,
		grid:      grid,
		placer:    systems.NewStructurePlacer(grid),
		portals:   systems.NewPortalRegistry(),
		resources: resources,
		drops:     systems.NewDropRegistry(deps.Clock),
		resolver:  systems.NewCollisionResolver(grid, anchor, resources),
		inventory: make(map[string]int),
		sync:      NewPositionSync(deps.Presence, deps.Clock, cfg.PlayerID, cfg.SyncInterval),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"player_id": cfg.PlayerID,
		}),
	}

	// 1. Player
	g.player = &domain.Entity{
		ID:    cfg.PlayerID,
		Type:  domain.EntityTypePlayer,
		Name:  cfg.PlayerName,
		Stats: &domain.StatsComponent{
			HP:    domain.PlayerHP,
			MaxHP: domain.PlayerHP,
			Level: 1,
			MaxXP: domain.PlayerBaseMaxXP,
		},
	}
	g.mover = systems.NewMovementController(g.player, grid, g.resolver, systems.MovementConfig{
		Speed:    cfg.PlayerSpeed,
		Deadzone: cfg.InputDeadzone,
		Anchor:   anchor,
	})
	g.mover.OnPositionCommitted(func(x, y float64) {
		g.sync.Observe(g.mapID, x, y, g.player.FacingLeft)
	})

	// 2. Persisted structures
	out, err := g.repo.List(ctx, structures.ListInput{MapID: domain.MainWorld})
	if err != nil {
		return nil, fmt.Errorf("load structures: %w", err)
	}
	g.houses = out.Structures

	// 3. First map
	if err := g.activate(domain.MainWorld, domain.OverworldSpawn); err != nil {
		return nil, err
	}

	g.log.WithFields(logrus.Fields{
		"seed":       cfg.Seed,
		"structures": len(g.houses),
	}).Info("session started")
	return g, nil
}

// Tick advances the session by one frame. delta is the elapsed time in
// frames (1 at the nominal frame rate).
func (g *Game) Tick(delta float64) {
	g.frame++

	// 1. Player movement
	g.mover.Update(delta)

	// 2. Arrival on a portal
	g.checkPortal()

	// 3. Resource respawns
	for _, id := range g.resources.Update() {
		g.log.WithField("resource_id", id).Debug("resource respawned")
	}

	// 4. Monsters
	g.updateMonsters(delta)

	// 5. Fainting
	if g.player.Stats.IsDead {
		g.respawnPlayer()
	}

	// 6. Inn lease
	g.checkRental()
}

// MoveTo computes a path from the player's cell to target and starts
// following it. Unreachable targets return domain.ErrNoPath and leave the
// current movement alone.
func (g *Game) MoveTo(target domain.GridPos) error {
	if g.resources.OccupiesCell(target) {
		return fmt.Errorf("goal %s holds a resource: %w", target, domain.ErrNoPath)
	}

	path, err := systems.FindPath(g.grid, g.mover.Cell(), target)
	if err != nil {
		return err
	}
	g.mover.RequestPathFollow(path)
	return nil
}

// Tap walks to the tile under a tapped world point.
func (g *Game) Tap(p domain.WorldPos) error {
	return g.MoveTo(TapCell(p, g.cfg.TileSize))
}

// Joystick applies the virtual stick drag offset in screen pixels.
func (g *Game) Joystick(dx, dy float64) {
	g.mover.RequestFreeMove(JoystickVector(dx, dy))
}

// Build places a house with its top-left corner on anchor. The structure is
// persisted before the grid is touched, so a storage failure leaves the map
// unchanged.
func (g *Game) Build(ctx context.Context, anchor domain.GridPos) (domain.Structure, error) {
	if g.mapID != domain.MainWorld {
		return domain.Structure{}, fmt.Errorf("building indoors: %w", domain.ErrInvalidFootprint)
	}

	// 1. Validate against static and dynamic occupants
	fp := domain.HouseFootprint(anchor)
	if !g.placer.IsValidFootprint(fp) {
		return domain.Structure{}, fmt.Errorf("house at %s: %w", anchor, domain.ErrInvalidFootprint)
	}
	cells := fp.Cells()
	if g.resources.AnyOn(cells) {
		return domain.Structure{}, fmt.Errorf("house at %s covers a resource: %w", anchor, domain.ErrInvalidFootprint)
	}
	if g.occupiedByEntity(cells) {
		return domain.Structure{}, fmt.Errorf("house at %s covers an entity: %w", anchor, domain.ErrInvalidFootprint)
	}

	// 2. Persist
	s := domain.Structure{
		ID:        g.ids.Generate(),
		Kind:      houseKind,
		OwnerID:   g.cfg.PlayerID,
		Footprint: fp,
		CreatedAt: g.clock.Now().UnixMilli(),
	}
	if _, err := g.repo.Save(ctx, structures.SaveInput{MapID: domain.MainWorld, Structure: s}); err != nil {
		return domain.Structure{}, fmt.Errorf("save structure: %w", err)
	}

	// 3. Commit
	g.placer.CommitFootprint(fp)
	g.portals.Add(domain.MainWorld, systems.HousePortal(s))
	g.houses = append(g.houses, s)

	g.log.WithFields(logrus.Fields{
		"structure_id": s.ID,
		"anchor":       anchor,
	}).Info("structure placed")
	return s, nil
}

// Demolish removes a structure from storage and, if the overworld is
// active, from the grid.
func (g *Game) Demolish(ctx context.Context, structureID string) error {
	idx := -1
	for i, s := range g.houses {
		if s.ID == structureID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("structure %s: %w", structureID, domain.ErrNotFound)
	}
	if g.mapID == domain.InteriorMapID(structureID) {
		return fmt.Errorf("structure %s is occupied: %w", structureID, domain.ErrInvalidFootprint)
	}

	if _, err := g.repo.Delete(ctx, structures.DeleteInput{MapID: domain.MainWorld, ID: structureID}); err != nil {
		return fmt.Errorf("delete structure: %w", err)
	}

	s := g.houses[idx]
	g.houses = append(g.houses[:idx], g.houses[idx+1:]...)
	if g.mapID == domain.MainWorld {
		g.placer.RemoveFootprint(s.Footprint)
		g.portals.Remove(domain.MainWorld, s.Footprint.PortalCell())
	}

	g.log.WithField("structure_id", structureID).Info("structure removed")
	return nil
}

// Drops land this far, in pixels, around the foot of the gathered resource.
const (
	dropJitterX = 10.0
	dropJitterY = 5.0
)

// Gather hits a resource. The yield drops on the ground next to it until
// the player collects it.
func (g *Game) Gather(resourceID string) (systems.GatherResult, error) {
	out, err := g.resources.Gather(g.player.Pos, resourceID)
	if err != nil {
		return systems.GatherResult{}, err
	}

	pos := g.anchor.GridToWorld(out.Cell)
	pos.X += (g.rng.Float64()*2 - 1) * dropJitterX
	pos.Y += (g.rng.Float64()*2 - 1) * dropJitterY
	out.DropID = g.drops.Spawn(out.Item, pos).ID
	return out, nil
}

// Collect picks up the drop under a tapped world point and stores its item.
// Returns domain.ErrNotFound when nothing lies there.
func (g *Game) Collect(p domain.WorldPos) (systems.Drop, error) {
	if g.mapID != domain.MainWorld {
		return systems.Drop{}, fmt.Errorf("no drop at %s: %w", p, domain.ErrNotFound)
	}
	d, ok := g.drops.PickUp(p)
	if !ok {
		return systems.Drop{}, fmt.Errorf("no drop at %s: %w", p, domain.ErrNotFound)
	}

	g.inventory[d.Item]++
	g.log.WithFields(logrus.Fields{"drop_id": d.ID, "item": d.Item}).Debug("drop collected")
	return d, nil
}

// Attack hits a monster within reach.
func (g *Game) Attack(targetID string) (systems.HitResult, error) {
	idx := g.monsterIndex(targetID)
	if idx < 0 {
		return systems.HitResult{}, fmt.Errorf("monster %s: %w", targetID, domain.ErrNotFound)
	}
	m := g.monsters[idx]

	reach := domain.GatherReachTiles * g.cfg.TileSize
	if !systems.InReach(g.player.Pos, m.entity.Pos, reach) {
		return systems.HitResult{}, fmt.Errorf("monster %s: %w", targetID, domain.ErrOutOfReach)
	}

	g.player.FaceTowards(m.entity.Pos.X - g.player.Pos.X)
	hit, _ := systems.ApplyAttack(g.player, m.entity, g.cfg.PlayerAttackDamage)
	if hit.Killed {
		g.removeMonster(idx)
		g.logf("COMBAT", "%s defeated", targetID)

		levels := g.player.Stats.GainXP(domain.MonsterXPValue)
		hit.XP = domain.MonsterXPValue
		hit.Level = g.player.Stats.Level
		hit.LevelUp = levels > 0
		if hit.LevelUp {
			g.logf("INFO", "Level up! You are now level %d.", hit.Level)
			g.log.WithField("level", hit.Level).Info("player levelled up")
		}
	}
	return hit, nil
}

// Teleport moves the player to cell on mapID, activating that map first if
// it is not the current one.
func (g *Game) Teleport(mapID domain.MapID, cell domain.GridPos) error {
	if mapID != g.mapID {
		return g.activate(mapID, cell)
	}

	if !g.grid.InBounds(cell.Col, cell.Row) {
		return fmt.Errorf("teleport to %s: %w", cell, domain.ErrOutOfBounds)
	}
	if !g.grid.IsWalkable(cell.Col, cell.Row) || g.resources.OccupiesCell(cell) {
		return fmt.Errorf("teleport to %s: %w", cell, domain.ErrBlockedCell)
	}
	g.placePlayer(cell)
	return nil
}

// activate swaps the grid for mapID and puts the player on spawn. On error
// the current map stays active.
func (g *Game) activate(id domain.MapID, spawn domain.GridPos) error {
	// 1. Generate
	if sid, ok := id.StructureID(); ok && !g.hasHouse(sid) {
		return fmt.Errorf("interior of %s: %w", sid, domain.ErrNotFound)
	}
	if owner, ok := id.InnRoomOwner(); ok && !g.rentsRoom(owner) {
		return fmt.Errorf("inn room of %s: %w", owner, domain.ErrNotFound)
	}
	m, err := maps.ForID(id, g.rng)
	if err != nil {
		return err
	}
	if spawn.Col < 0 || spawn.Col >= m.Width || spawn.Row < 0 || spawn.Row >= m.Height {
		return fmt.Errorf("spawn %s on %s: %w", spawn, id, domain.ErrOutOfBounds)
	}

	// 2. Swap the matrix; in-flight paths are invalidated by the version bump
	if err := g.grid.Replace(m.Width, m.Height, m.Cells); err != nil {
		return fmt.Errorf("activate %s: %w", id, err)
	}
	g.mapID = id

	// 3. Portals and structures
	g.portals.Reset(id)
	for _, p := range m.Portals {
		g.portals.Add(id, p)
	}
	if id == domain.MainWorld {
		fps := make([]domain.Footprint, 0, len(g.houses)+1)
		fps = append(fps, domain.InnFootprint())
		for _, s := range g.houses {
			fps = append(fps, s.Footprint)
			g.portals.Add(id, systems.HousePortal(s))
		}
		g.placer.Replay(fps)
	}

	// 4. Dynamic obstacles
	g.resources.SetEnabled(id == domain.MainWorld)
	g.clearMonsters()
	if id == domain.MainWorld {
		for _, cell := range m.MonsterSpawns {
			if len(g.monsters) >= g.cfg.MaxMonsters {
				break
			}
			if g.canSpawnAt(cell) {
				g.spawnMonster(cell)
			}
		}
	}

	// 5. Player
	g.placePlayer(g.nearestFree(spawn))
	g.mapChanged = true

	g.log.WithFields(logrus.Fields{
		"map":     id,
		"version": g.grid.Version(),
		"spawn":   g.lastCell,
	}).Info("map activated")
	g.logf("INFO", "Entered %s.", id)
	return nil
}

func (g *Game) checkPortal() {
	cell := g.mover.Cell()
	if cell == g.lastCell {
		return
	}
	g.lastCell = cell

	p, ok := g.portals.At(g.mapID, cell)
	if !ok {
		return
	}
	if err := g.activate(p.TargetMap, p.Spawn); err != nil {
		g.log.WithError(err).WithField("portal", p.Cell).Warn("portal transition failed")
	}
}

func (g *Game) respawnPlayer() {
	g.log.Info("player fainted")
	g.logf("COMBAT", "You fainted.")
	g.player.Stats.Restore()

	// a rented inn room is home while the lease runs
	home, spawn := domain.MainWorld, domain.OverworldSpawn
	if r, ok := g.Rental(); ok {
		home, spawn = r.MapID, domain.InnRoomSpawn
	}
	if g.mapID != home {
		if err := g.activate(home, spawn); err == nil {
			return
		}
	}
	g.placePlayer(g.nearestFree(spawn))
}

func (g *Game) placePlayer(cell domain.GridPos) {
	g.mover.Teleport(g.anchor.GridToWorld(cell))
	g.lastCell = cell
}

// nearestFree returns cell if an entity can stand there, otherwise the
// closest such cell by Manhattan distance. Falls back to cell itself on a
// fully blocked map.
func (g *Game) nearestFree(cell domain.GridPos) domain.GridPos {
	free := func(p domain.GridPos) bool {
		return g.grid.IsWalkable(p.Col, p.Row) && !g.resources.OccupiesCell(p)
	}
	if free(cell) {
		return cell
	}

	limit := g.grid.Width() + g.grid.Height()
	for d := 1; d <= limit; d++ {
		for dc := -d; dc <= d; dc++ {
			dr := d - abs(dc)
			for _, p := range []domain.GridPos{cell.Shift(dc, -dr), cell.Shift(dc, dr)} {
				if free(p) {
					return p
				}
			}
		}
	}
	return cell
}

func (g *Game) hasHouse(id string) bool {
	for _, s := range g.houses {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (g *Game) occupiedByEntity(cells []domain.GridPos) bool {
	taken := map[domain.GridPos]bool{g.mover.Cell(): true}
	for _, m := range g.monsters {
		taken[m.mover.Cell()] = true
	}
	for _, c := range cells {
		if taken[c] {
			return true
		}
	}
	return false
}

func (g *Game) logf(kind, format string, args ...any) {
	g.logs = append(g.logs, api.LogEntry{
		Text:      fmt.Sprintf(format, args...),
		Type:      kind,
		Timestamp: g.clock.Now().UnixMilli(),
	})
}

// DrainLogs returns and clears the log lines produced since the last call.
func (g *Game) DrainLogs() []api.LogEntry {
	out := g.logs
	g.logs = nil
	return out
}

// TakeMapChange reports whether a map was activated since the last call.
func (g *Game) TakeMapChange() bool {
	changed := g.mapChanged
	g.mapChanged = false
	return changed
}

// FlushPosition publishes the player's position if the sync interval allows.
func (g *Game) FlushPosition(ctx context.Context) (*presence.Presence, error) {
	return g.sync.Flush(ctx)
}

func (g *Game) Grid() *domain.Grid                    { return g.grid }
func (g *Game) MapID() domain.MapID                   { return g.mapID }
func (g *Game) Frame() int64                          { return g.frame }
func (g *Game) Player() *domain.Entity                { return g.player }
func (g *Game) Movement() *systems.MovementController { return g.mover }
func (g *Game) Resources() *systems.ResourceRegistry  { return g.resources }
func (g *Game) Drops() []systems.Drop                 { return g.drops.List() }
func (g *Game) Portals() []domain.Portal              { return g.portals.List(g.mapID) }
func (g *Game) Inventory() map[string]int             { return g.inventory }
func (g *Game) Anchor() domain.Anchor                 { return g.anchor }

// Structures returns the overworld structures, oldest first.
func (g *Game) Structures() []domain.Structure {
	out := make([]domain.Structure, len(g.houses))
	copy(out, g.houses)
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
