package systems

import (
	"testing"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/stretchr/testify/assert"
)

// fixedRand replays preset values.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(int) int     { return r.n }

func TestDecideChase(t *testing.T) {
	g := walledGrid(t, 20, 20)
	g.SetCell(6, 5, domain.TerrainBlocked)

	tests := []struct {
		name    string
		monster domain.GridPos
		player  domain.GridPos
		rng     fixedRand
		want    ChaseDecision
	}{
		{
			name:    "adjacent attacks",
			monster: domain.GridPos{Col: 5, Row: 4},
			player:  domain.GridPos{Col: 5, Row: 5},
			want:    ChaseDecision{Action: ActionAttack},
		},
		{
			name:    "same cell attacks",
			monster: domain.GridPos{Col: 5, Row: 5},
			player:  domain.GridPos{Col: 5, Row: 5},
			want:    ChaseDecision{Action: ActionAttack},
		},
		{
			name:    "close chases along first path step",
			monster: domain.GridPos{Col: 5, Row: 2},
			player:  domain.GridPos{Col: 5, Row: 5},
			want:    ChaseDecision{Action: ActionChase, Next: domain.GridPos{Col: 5, Row: 3}},
		},
		{
			name:    "chase routes around a wall",
			monster: domain.GridPos{Col: 7, Row: 5},
			player:  domain.GridPos{Col: 5, Row: 5},
			want:    ChaseDecision{Action: ActionChase, Next: domain.GridPos{Col: 7, Row: 4}},
		},
		{
			name:    "far and lazy waits",
			monster: domain.GridPos{Col: 15, Row: 15},
			player:  domain.GridPos{Col: 2, Row: 2},
			rng:     fixedRand{f: 0.9},
			want:    ChaseDecision{Action: ActionWait},
		},
		{
			name:    "far wanders",
			monster: domain.GridPos{Col: 15, Row: 15},
			player:  domain.GridPos{Col: 2, Row: 2},
			rng:     fixedRand{f: 0.1, n: 3},
			want:    ChaseDecision{Action: ActionWander, Next: domain.GridPos{Col: 16, Row: 15}},
		},
		{
			name:    "wander into wall waits",
			monster: domain.GridPos{Col: 18, Row: 15},
			player:  domain.GridPos{Col: 2, Row: 2},
			rng:     fixedRand{f: 0.1, n: 3},
			want:    ChaseDecision{Action: ActionWait},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecideChase(g, tt.monster, tt.player, tt.rng))
		})
	}
}
