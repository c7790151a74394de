package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/damn090909-boop/Simple-Game/internal/engine/handlers"
	"github.com/damn090909-boop/Simple-Game/internal/engine/handlers/actions"
	"github.com/damn090909-boop/Simple-Game/internal/network"
	"github.com/damn090909-boop/Simple-Game/pkg/api"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
	"github.com/sirupsen/logrus"
)

// maxDelta caps the catch-up of a single frame after a stall.
const maxDelta = 3.0

type commandReply struct {
	res handlers.Result
	err error
}

type commandRequest struct {
	cmd   api.ClientCommand
	reply chan commandReply
}

type callRequest struct {
	fn   func(g *Game)
	done chan struct{}
}

// Runner owns the goroutine of the frame loop. Everything that touches the
// Game goes through its channels.
type Runner struct {
	game     *Game
	hub      *network.Hub
	handlers map[string]handlers.HandlerFunc
	log      *logrus.Entry

	commands chan commandRequest
	calls    chan callRequest
}

func NewRunner(game *Game, hub *network.Hub) *Runner {
	return &Runner{
		game:     game,
		hub:      hub,
		handlers: actions.Registry(),
		log:      logger.For("runner"),
		commands: make(chan commandRequest, 100),
		calls:    make(chan callRequest, 10),
	}
}

// Run drives the frame loop until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	frame := r.game.cfg.FrameDuration()
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	r.log.WithField("frame", frame).Info("frame loop started")
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("frame loop stopped")
			return

		// 1. Client commands
		case req := <-r.commands:
			res, err := r.execute(ctx, req.cmd)
			req.reply <- commandReply{res: res, err: err}

		// 2. Read/modify requests from the debug surface
		case c := <-r.calls:
			c.fn(r.game)
			close(c.done)

		// 3. Simulation
		case now := <-ticker.C:
			delta := float64(now.Sub(last)) / float64(frame)
			last = now
			if delta > maxDelta {
				delta = maxDelta
			}
			r.Step(ctx, delta)
		}
	}
}

// Step simulates one frame and publishes what it produced. Only call it
// from the loop goroutine, or when the loop is not running.
func (r *Runner) Step(ctx context.Context, delta float64) {
	r.game.Tick(delta)
	r.publish(ctx)
}

// Submit hands a command to the loop and waits for its result.
func (r *Runner) Submit(ctx context.Context, cmd api.ClientCommand) (handlers.Result, error) {
	req := commandRequest{cmd: cmd, reply: make(chan commandReply, 1)}

	select {
	case r.commands <- req:
	case <-ctx.Done():
		return handlers.Result{}, ctx.Err()
	}

	select {
	case rep := <-req.reply:
		return rep.res, rep.err
	case <-ctx.Done():
		return handlers.Result{}, ctx.Err()
	}
}

// Do runs fn on the loop goroutine and waits for it to return.
func (r *Runner) Do(ctx context.Context, fn func(g *Game)) error {
	c := callRequest{fn: fn, done: make(chan struct{})}

	select {
	case r.calls <- c:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Execute runs a command synchronously. Only call it when the loop is not
// running.
func (r *Runner) Execute(ctx context.Context, cmd api.ClientCommand) (handlers.Result, error) {
	return r.execute(ctx, cmd)
}

func (r *Runner) execute(ctx context.Context, cmd api.ClientCommand) (handlers.Result, error) {
	handler, ok := r.handlers[cmd.Action]
	if !ok {
		return handlers.Result{}, fmt.Errorf("unknown action %q", cmd.Action)
	}

	hctx := handlers.Context{
		Ctx:     ctx,
		Session: r.game,
		ActorID: r.game.cfg.PlayerID,
	}

	result, err := handler(hctx, cmd.Payload)
	if err != nil {
		r.log.WithError(err).WithField("action", cmd.Action).Warn("command failed")
		return handlers.Result{}, err
	}

	if result.Msg != "" {
		r.game.logf(result.MsgType, "%s", result.Msg)
	}
	return result, nil
}

func (r *Runner) publish(ctx context.Context) {
	frame := r.game.Frame()

	// 1. Throttled position
	p, err := r.game.FlushPosition(ctx)
	if err != nil {
		r.log.WithError(err).Warn("position sync failed")
	}
	if p != nil {
		r.hub.PublishPosition(frame, *p)
	}

	// 2. Map change: watchers of the new map need the whole grid
	if r.game.TakeMapChange() {
		r.hub.PublishMap(frame, r.game.BuildState())
	}

	// 3. Log lines
	if logs := r.game.DrainLogs(); len(logs) > 0 {
		r.hub.PublishLogs(frame, r.game.MapID(), logs)
	}
}
