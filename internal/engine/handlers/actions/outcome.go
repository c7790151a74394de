package actions

import (
	"encoding/json"
	"errors"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/engine/handlers"
)

// gameplay rejections the player should see as a log line rather than a
// failed command
var rejections = []error{
	domain.ErrNoPath,
	domain.ErrInvalidFootprint,
	domain.ErrOutOfBounds,
	domain.ErrNotFound,
	domain.ErrOutOfReach,
	domain.ErrDepleted,
	domain.ErrBlockedCell,
}

func reject(err error) (handlers.Result, error) {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return handlers.Result{Msg: err.Error(), MsgType: "ERROR"}, nil
		}
	}
	return handlers.Result{}, err
}

func withEvent(res handlers.Result, v any) handlers.Result {
	raw, err := json.Marshal(v)
	if err == nil {
		res.Event = raw
	}
	return res
}
