package systems

import (
	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
	"github.com/sirupsen/logrus"
)

// HitResult describes one resolved blow.
type HitResult struct {
	AttackerID string `json:"attackerId"`
	TargetID   string `json:"targetId"`
	Damage     int    `json:"damage"`
	HPLeft     int    `json:"hpLeft"`
	Killed     bool   `json:"killed"`

	// Set by the caller when a kill paid out experience
	XP      int  `json:"xp,omitempty"`
	Level   int  `json:"level,omitempty"`
	LevelUp bool `json:"levelUp,omitempty"`
}

// ApplyAttack deals damage to target. The second return is false when the
// blow had no effect: the target has no stats or is already dead.
func ApplyAttack(attacker, target *domain.Entity, damage int) (HitResult, bool) {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"attacker_id": attacker.ID,
		"target_id":   target.ID,
	})

	res := HitResult{AttackerID: attacker.ID, TargetID: target.ID}

	// 1. Boundary conditions
	if target.Stats == nil {
		combatLogger.Warn("attack failed: target has no stats")
		return res, false
	}
	if target.Stats.IsDead {
		combatLogger.Debug("attack ineffective: target is already dead")
		res.Killed = true
		return res, false
	}
	if damage < 1 {
		damage = 1
	}

	// 2. Damage
	hpBefore := target.Stats.HP
	res.Killed = target.Stats.TakeDamage(damage)
	res.Damage = damage
	res.HPLeft = target.Stats.HP

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    res.HPLeft,
		"target_died": res.Killed,
	}).Info("attack resolved")

	return res, true
}

// InReach reports whether two feet positions are within reach pixels.
func InReach(a, b domain.WorldPos, reach float64) bool {
	return a.DistanceTo(b) <= reach
}
