package actions

import (
	"fmt"

	"github.com/damn090909-boop/Simple-Game/internal/engine/handlers"
	"github.com/damn090909-boop/Simple-Game/pkg/api"
)

// HandleGather hits a tree or rock. The yield lands on the ground.
func HandleGather(ctx handlers.Context, p api.GatherPayload) (handlers.Result, error) {
	out, err := ctx.Session.Gather(p.ResourceID)
	if err != nil {
		return reject(err)
	}

	msg := fmt.Sprintf("1 %s dropped", out.Item)
	if out.Depleted {
		msg += " (depleted)"
	}
	return withEvent(handlers.Result{Msg: msg, MsgType: "GATHER"}, out), nil
}
