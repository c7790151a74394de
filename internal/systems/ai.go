package systems

import (
	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
	"github.com/sirupsen/logrus"
)

type MonsterAction int

const (
	ActionWait MonsterAction = iota
	ActionAttack
	ActionChase
	ActionWander
)

func (a MonsterAction) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionChase:
		return "chase"
	case ActionWander:
		return "wander"
	default:
		return "wait"
	}
}

// Rand is the subset of *rand.Rand the AI needs.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// ChaseDecision is what a monster does this step. Next is only meaningful
// for chase and wander.
type ChaseDecision struct {
	Action MonsterAction
	Next   domain.GridPos
}

// DecideChase picks a monster's next step relative to the player, both
// given as grid cells.
func DecideChase(g *domain.Grid, monster, player domain.GridPos, rng Rand) ChaseDecision {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"monster":   monster,
		"player":    player,
	})

	dist := monster.ManhattanTo(player)

	// 1. Adjacent: attack
	if dist <= domain.AttackRange {
		log.Debug("target in attack range")
		return ChaseDecision{Action: ActionAttack}
	}

	// 2. Close: one step along the shortest path
	if dist < domain.ChaseRadius {
		path, err := FindPath(g, monster, player)
		if err != nil || len(path) == 0 {
			log.Debug("no route to target")
			return ChaseDecision{Action: ActionWait}
		}
		return ChaseDecision{Action: ActionChase, Next: path[0]}
	}

	// 3. Far: occasionally wander
	if rng.Float64() >= domain.WanderProbability {
		return ChaseDecision{Action: ActionWait}
	}
	next := monster.Add(directions[rng.Intn(len(directions))])
	if !g.IsWalkable(next.Col, next.Row) {
		return ChaseDecision{Action: ActionWait}
	}
	return ChaseDecision{Action: ActionWander, Next: next}
}
