package actions

import (
	"fmt"

	"github.com/damn090909-boop/Simple-Game/internal/engine/handlers"
	"github.com/damn090909-boop/Simple-Game/pkg/api"
)

// HandleAttack hits a monster within reach.
func HandleAttack(ctx handlers.Context, p api.EntityPayload) (handlers.Result, error) {
	hit, err := ctx.Session.Attack(p.TargetID)
	if err != nil {
		return reject(err)
	}

	msg := fmt.Sprintf("You hit %s for %d.", hit.TargetID, hit.Damage)
	if hit.Killed {
		msg = fmt.Sprintf("You defeated %s. +%d XP", hit.TargetID, hit.XP)
	}
	return withEvent(handlers.Result{Msg: msg, MsgType: "COMBAT"}, hit), nil
}
