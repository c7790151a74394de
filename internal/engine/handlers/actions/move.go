package actions

import (
	"errors"
	"fmt"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/engine/handlers"
	"github.com/damn090909-boop/Simple-Game/pkg/api"
)

// HandleMoveTo starts walking to a grid cell.
func HandleMoveTo(ctx handlers.Context, p api.MoveToPayload) (handlers.Result, error) {
	if err := ctx.Session.MoveTo(domain.GridPos{Col: p.Col, Row: p.Row}); err != nil {
		return reject(err)
	}
	return handlers.EmptyResult(), nil
}

// HandleTap picks up the drop under a tapped world point, or walks to the
// tapped tile when nothing lies there.
func HandleTap(ctx handlers.Context, p api.TapPayload) (handlers.Result, error) {
	at := domain.WorldPos{X: p.X, Y: p.Y}

	// 1. Drops first
	d, err := ctx.Session.Collect(at)
	if err == nil {
		res := handlers.Result{Msg: fmt.Sprintf("Picked up %s.", d.Item), MsgType: "GATHER"}
		return withEvent(res, d), nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return reject(err)
	}

	// 2. Walk
	if err := ctx.Session.Tap(at); err != nil {
		return reject(err)
	}
	return handlers.EmptyResult(), nil
}

// HandleJoystick applies the virtual stick offset. A zero offset releases it.
func HandleJoystick(ctx handlers.Context, p api.JoystickPayload) (handlers.Result, error) {
	ctx.Session.Joystick(p.Dx, p.Dy)
	return handlers.EmptyResult(), nil
}

// HandleTeleport moves the player to a cell, switching maps if needed.
func HandleTeleport(ctx handlers.Context, p api.TeleportPayload) (handlers.Result, error) {
	if err := ctx.Session.Teleport(domain.MapID(p.MapID), domain.GridPos{Col: p.Col, Row: p.Row}); err != nil {
		return reject(err)
	}
	return handlers.EmptyResult(), nil
}
