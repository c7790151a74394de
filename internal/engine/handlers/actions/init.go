package actions

import (
	"github.com/damn090909-boop/Simple-Game/internal/engine/handlers"
	"github.com/damn090909-boop/Simple-Game/pkg/api"
)

// Registry returns the handler of every client action.
func Registry() map[string]handlers.HandlerFunc {
	return map[string]handlers.HandlerFunc{
		api.ActionInit:     handlers.WithEmptyPayload(HandleInit),
		api.ActionMoveTo:   handlers.WithPayload(HandleMoveTo),
		api.ActionTap:      handlers.WithPayload(HandleTap),
		api.ActionJoystick: handlers.WithPayload(HandleJoystick),
		api.ActionTeleport: handlers.WithPayload(HandleTeleport),
		api.ActionBuild:    handlers.WithPayload(HandleBuild),
		api.ActionDemolish: handlers.WithPayload(HandleDemolish),
		api.ActionGather:   handlers.WithPayload(HandleGather),
		api.ActionAttack:   handlers.WithPayload(HandleAttack),
		api.ActionRent:     handlers.WithEmptyPayload(HandleRent),
	}
}

func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Welcome, " + ctx.ActorID + ".",
		MsgType: "INFO",
	}, nil
}
