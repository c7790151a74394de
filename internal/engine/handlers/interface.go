package handlers

import (
	"context"
	"encoding/json"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/systems"
)

//go:generate mockgen -source=interface.go -destination=mock/mock_session.go -package=handlersmock

// Session is the game surface commands act on. engine.Game implements it.
type Session interface {
	MoveTo(cell domain.GridPos) error
	Tap(p domain.WorldPos) error
	Collect(p domain.WorldPos) (systems.Drop, error)
	Joystick(dx, dy float64)
	Build(ctx context.Context, anchor domain.GridPos) (domain.Structure, error)
	Demolish(ctx context.Context, structureID string) error
	Gather(resourceID string) (systems.GatherResult, error)
	Attack(targetID string) (systems.HitResult, error)
	Teleport(mapID domain.MapID, cell domain.GridPos) error
	RentRoom() (domain.Rental, error)
}

// Context hands a command to its handler.
type Context struct {
	Ctx     context.Context
	Session Session
	ActorID string
}

// Result is what a command produced. Handlers never write to the session
// log themselves; they return the text and the runner records it.
type Result struct {
	Msg     string          // log text
	MsgType string          // INFO, BUILD, GATHER, COMBAT, ERROR
	Event   json.RawMessage // raw event data for the client
}

// HandlerFunc is the contract of every command (MOVE_TO, BUILD, ...).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult is a successful command with nothing to report.
func EmptyResult() Result {
	return Result{}
}
