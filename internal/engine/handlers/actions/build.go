package actions

import (
	"fmt"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/engine/handlers"
	"github.com/damn090909-boop/Simple-Game/pkg/api"
)

// HandleBuild places a house with its top-left corner on the given cell.
func HandleBuild(ctx handlers.Context, p api.BuildPayload) (handlers.Result, error) {
	s, err := ctx.Session.Build(ctx.Ctx, domain.GridPos{Col: p.Col, Row: p.Row})
	if err != nil {
		return reject(err)
	}

	res := handlers.Result{
		Msg:     fmt.Sprintf("Built a %s at %s.", s.Kind, s.Footprint.Anchor),
		MsgType: "BUILD",
	}
	return withEvent(res, s), nil
}

// HandleDemolish removes a placed structure.
func HandleDemolish(ctx handlers.Context, p api.StructurePayload) (handlers.Result, error) {
	if err := ctx.Session.Demolish(ctx.Ctx, p.StructureID); err != nil {
		return reject(err)
	}
	return handlers.Result{Msg: "Structure demolished.", MsgType: "BUILD"}, nil
}
