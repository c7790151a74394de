package engine

import (
	"fmt"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/systems"
	"github.com/sirupsen/logrus"
)

// monster pairs a hostile entity with its own movement controller.
type monster struct {
	entity *domain.Entity
	mover  *systems.MovementController
	think  int // frames since the last decision
}

// spawnRadius bounds how far from the player timed spawns appear.
const spawnRadius = 5

func (g *Game) spawnMonster(cell domain.GridPos) *monster {
	g.monsterSeq++
	e := &domain.Entity{
		ID:    fmt.Sprintf("monster_%d", g.monsterSeq),
		Type:  domain.EntityTypeMonster,
		Name:  "Slime",
		Pos:   g.anchor.GridToWorld(cell),
		Stats: &domain.StatsComponent{HP: domain.MonsterHP, MaxHP: domain.MonsterHP},
		AI:    &domain.AIComponent{},
	}
	m := &monster{
		entity: e,
		mover: systems.NewMovementController(e, g.grid, g.resolver, systems.MovementConfig{
			Speed:  g.cfg.MonsterSpeed,
			Anchor: g.anchor,
		}),
	}
	g.monsters = append(g.monsters, m)

	g.log.WithFields(logrus.Fields{"monster_id": e.ID, "cell": cell}).Debug("monster spawned")
	return m
}

func (g *Game) updateMonsters(delta float64) {
	// 1. Timed spawns near the player, overworld only
	if g.mapID == domain.MainWorld && len(g.monsters) < g.cfg.MaxMonsters {
		g.spawnTimer++
		if g.spawnTimer >= g.cfg.MonsterSpawnFrames {
			g.spawnTimer = 0
			if cell, ok := g.spawnCellNear(g.mover.Cell()); ok {
				g.spawnMonster(cell)
			}
		}
	}

	playerCell := g.mover.Cell()
	for _, m := range g.monsters {
		// 2. Attack cooldown runs every frame
		if m.entity.AI.Cooldown > 0 {
			m.entity.AI.Cooldown--
		}

		// 3. Decide
		m.think++
		if m.think >= g.cfg.MonsterThinkFrames {
			m.think = 0
			g.decide(m, playerCell)
		}

		// 4. Move
		m.mover.Update(delta)
	}
}

func (g *Game) decide(m *monster, playerCell domain.GridPos) {
	d := systems.DecideChase(g.grid, m.mover.Cell(), playerCell, g.rng)

	switch d.Action {
	case systems.ActionAttack:
		m.entity.FaceTowards(g.player.Pos.X - m.entity.Pos.X)
		if m.entity.AI.Cooldown > 0 {
			return
		}
		m.entity.AI.Cooldown = domain.AttackCooldown
		if hit, ok := systems.ApplyAttack(m.entity, g.player, domain.AttackDamage); ok {
			g.logf("COMBAT", "%s hits you for %d.", m.entity.Name, hit.Damage)
		}
	case systems.ActionChase, systems.ActionWander:
		if g.resources.OccupiesCell(d.Next) {
			return
		}
		m.mover.RequestPathFollow(domain.Path{d.Next})
	}
}

// spawnCellNear picks a random free cell around center, at least two steps
// from it.
func (g *Game) spawnCellNear(center domain.GridPos) (domain.GridPos, bool) {
	for attempt := 0; attempt < 10; attempt++ {
		cell := center.Shift(
			g.rng.Intn(2*spawnRadius+1)-spawnRadius,
			g.rng.Intn(2*spawnRadius+1)-spawnRadius,
		)
		if cell.ManhattanTo(center) < 2 {
			continue
		}
		if g.canSpawnAt(cell) {
			return cell, true
		}
	}
	return domain.GridPos{}, false
}

func (g *Game) canSpawnAt(cell domain.GridPos) bool {
	if !g.grid.IsWalkable(cell.Col, cell.Row) || g.resources.OccupiesCell(cell) {
		return false
	}
	if code, _ := g.grid.Cell(cell.Col, cell.Row); code == domain.TerrainPortal {
		return false
	}
	for _, m := range g.monsters {
		if m.mover.Cell() == cell {
			return false
		}
	}
	return g.mover.Cell() != cell
}

func (g *Game) monsterIndex(id string) int {
	for i, m := range g.monsters {
		if m.entity.ID == id {
			return i
		}
	}
	return -1
}

func (g *Game) removeMonster(i int) {
	g.monsters[i].mover.Close()
	g.monsters = append(g.monsters[:i], g.monsters[i+1:]...)
}

func (g *Game) clearMonsters() {
	for _, m := range g.monsters {
		m.mover.Close()
	}
	g.monsters = nil
}

// Monsters returns the live monster entities.
func (g *Game) Monsters() []*domain.Entity {
	out := make([]*domain.Entity, len(g.monsters))
	for i, m := range g.monsters {
		out[i] = m.entity
	}
	return out
}
