package actions

import (
	"fmt"
	"time"

	"github.com/damn090909-boop/Simple-Game/internal/engine/handlers"
)

// HandleRent leases the player's inn room and moves them in.
func HandleRent(ctx handlers.Context) (handlers.Result, error) {
	r, err := ctx.Session.RentRoom()
	if err != nil {
		return reject(err)
	}

	until := time.UnixMilli(r.ExpiresAt).UTC().Format("Jan 2 15:04")
	res := handlers.Result{
		Msg:     fmt.Sprintf("You rented a room at the inn until %s.", until),
		MsgType: "INFO",
	}
	return withEvent(res, r), nil
}
