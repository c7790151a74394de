package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/engine"
	"github.com/damn090909-boop/Simple-Game/internal/network"
	"github.com/damn090909-boop/Simple-Game/pkg/api"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
)

// WebSocket settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client bridges one websocket connection and the frame loop. Every message
// to the client, direct replies included, goes through the hub so that a
// single goroutine writes to the connection.
type Client struct {
	ID     string
	Runner *engine.Runner
	Hub    *network.Hub
	Conn   *websocket.Conn
	Send   chan api.ServerResponse

	watch domain.MapID  // empty follows the player
	done  chan struct{} // closed when writePump exits
	log   *logrus.Entry
}

func NewClient(runner *engine.Runner, hub *network.Hub, conn *websocket.Conn, id string, watch domain.MapID) *Client {
	return &Client{
		ID:     id,
		Runner: runner,
		Hub:    hub,
		Conn:   conn,
		Send:   make(chan api.ServerResponse, 256),
		watch:  watch,
		done:   make(chan struct{}),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "ws_client",
			"client_id": id,
			"watch":     watch,
		}),
	}
}

// readPump reads commands from the client until the connection drops.
func (c *Client) readPump() {
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		c.Hub.Unsubscribe(c.ID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. Subscribe to updates
	updates := c.Hub.Subscribe(c.ID, c.watch)
	go c.forward(updates)
	c.log.Info("client connected")

	// 2. Greeting and first render
	c.submit(ctx, api.ClientCommand{Action: api.ActionInit})
	c.sendState(ctx)

	// 3. Command loop
	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Warn("websocket read failed")
			}
			return
		}

		if cmd.Action == api.ActionState {
			c.sendState(ctx)
			continue
		}
		c.submit(ctx, cmd)
	}
}

func (c *Client) submit(ctx context.Context, cmd api.ClientCommand) {
	if _, err := c.Runner.Submit(ctx, cmd); err != nil {
		c.log.WithError(err).WithField("action", cmd.Action).Debug("command rejected")
		c.Hub.SendTo(c.ID, api.ServerResponse{
			Type: api.TypeError,
			Logs: []api.LogEntry{{
				Text:      err.Error(),
				Type:      "ERROR",
				Timestamp: time.Now().UnixMilli(),
			}},
		})
	}
}

func (c *Client) sendState(ctx context.Context) {
	var msg api.ServerResponse
	err := c.Runner.Do(ctx, func(g *engine.Game) {
		msg = api.ServerResponse{Type: api.TypeState, Frame: g.Frame(), State: g.BuildState()}
	})
	if err != nil {
		c.log.WithError(err).Debug("state request aborted")
		return
	}
	c.Hub.SendTo(c.ID, msg)
}

// forward copies hub updates into Send until the feed closes or writePump
// gives up on the connection.
func (c *Client) forward(updates <-chan api.ServerResponse) {
	defer close(c.Send)
	for msg := range updates {
		select {
		case c.Send <- msg:
		case <-c.done:
			return
		}
	}
}

// writePump sends queued messages and keeps the connection alive with
// pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
