package systems

import (
	"testing"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
)

func TestApplyAttack(t *testing.T) {
	attacker := &domain.Entity{ID: "player", Name: "Hero"}
	target := &domain.Entity{
		ID:   "monster_1",
		Name: "Slime",
		Stats: &domain.StatsComponent{
			HP:    domain.MonsterHP,
			MaxHP: domain.MonsterHP,
		},
	}

	res, ok := ApplyAttack(attacker, target, 10)
	if !ok {
		t.Fatal("expected the blow to land")
	}
	if target.Stats.HP != 20 || res.HPLeft != 20 || res.Damage != 10 {
		t.Errorf("unexpected result %+v, hp %d", res, target.Stats.HP)
	}

	// Kill shot
	res, _ = ApplyAttack(attacker, target, 100)
	if !res.Killed || !target.Stats.IsDead || target.Stats.HP != 0 {
		t.Errorf("expected target to die, got %+v", res)
	}

	// Kicking the corpse does nothing
	if _, ok := ApplyAttack(attacker, target, 10); ok {
		t.Error("attack on a dead target should have no effect")
	}
}

func TestApplyAttack_NoStats(t *testing.T) {
	attacker := &domain.Entity{ID: "player"}
	rock := &domain.Entity{ID: "rock"}

	if _, ok := ApplyAttack(attacker, rock, 10); ok {
		t.Error("target without stats must not be hit")
	}
}

func TestApplyAttack_MinimumDamage(t *testing.T) {
	attacker := &domain.Entity{ID: "player"}
	target := &domain.Entity{ID: "m", Stats: &domain.StatsComponent{HP: 5, MaxHP: 5}}

	res, ok := ApplyAttack(attacker, target, 0)
	if !ok || res.Damage != 1 || target.Stats.HP != 4 {
		t.Errorf("expected a one point hit, got %+v", res)
	}
}

func TestInReach(t *testing.T) {
	a := domain.WorldPos{X: 0, Y: 0}
	if !InReach(a, domain.WorldPos{X: 120, Y: 0}, 120) {
		t.Error("point on the reach boundary should be in reach")
	}
	if InReach(a, domain.WorldPos{X: 121, Y: 0}, 120) {
		t.Error("point beyond reach reported in reach")
	}
}
