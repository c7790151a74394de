package network

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/repositories/presence"
	"github.com/damn090909-boop/Simple-Game/pkg/api"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
)

// FeedSize is how many messages a subscriber may lag behind before new ones
// are dropped.
const FeedSize = 100

// Hub fans session updates out to websocket subscribers. A subscriber either
// follows the player from map to map or watches one map and only hears what
// happens there.
type Hub struct {
	mu   sync.Mutex
	subs map[string]*subscriber
	log  *logrus.Entry
}

type subscriber struct {
	feed    chan api.ServerResponse
	watch   domain.MapID // empty follows the player
	dropped int
}

func (s *subscriber) hears(mapID domain.MapID) bool {
	return s.watch == "" || s.watch == mapID
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]*subscriber),
		log:  logger.For("hub"),
	}
}

// Subscribe opens the feed of id. An empty watch follows the player. A feed
// already open under id is closed first.
func (h *Hub) Subscribe(id string, watch domain.MapID) <-chan api.ServerResponse {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.subs[id]; ok {
		close(old.feed)
	}
	s := &subscriber{feed: make(chan api.ServerResponse, FeedSize), watch: watch}
	h.subs[id] = s

	h.log.WithFields(logrus.Fields{"subscriber": id, "watch": watch}).Debug("subscribed")
	return s.feed
}

// Unsubscribe closes the feed of id.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.subs[id]; ok {
		close(s.feed)
		delete(h.subs, id)
	}
}

// Watch switches the map id listens to. Returns false for unknown ids.
func (h *Hub) Watch(id string, watch domain.MapID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.subs[id]
	if ok {
		s.watch = watch
	}
	return ok
}

// Watching returns the map id listens to, empty when it follows the player.
func (h *Hub) Watching(id string) (domain.MapID, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.subs[id]
	if !ok {
		return "", false
	}
	return s.watch, true
}

// SendTo queues msg for id alone, whatever map it watches. Returns false if
// id is gone or its feed is full.
func (h *Hub) SendTo(id string, msg api.ServerResponse) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.subs[id]
	if !ok {
		return false
	}
	return h.offer(id, s, msg)
}

// PublishPosition sends a throttled player position to the subscribers of
// its map.
func (h *Hub) PublishPosition(frame int64, p presence.Presence) {
	h.publish(p.MapID, api.ServerResponse{
		Type:  api.TypePosition,
		Frame: frame,
		Position: &api.PositionView{
			EntityID:   p.PlayerID,
			MapID:      string(p.MapID),
			X:          p.X,
			Y:          p.Y,
			FacingLeft: p.FacingLeft,
			Timestamp:  p.Timestamp,
		},
	})
}

// PublishMap sends the full state right after a map was activated.
func (h *Hub) PublishMap(frame int64, state *api.SessionView) {
	h.publish(domain.MapID(state.MapID), api.ServerResponse{Type: api.TypeMap, Frame: frame, State: state})
}

// PublishLogs sends the log lines produced while mapID was active.
func (h *Hub) PublishLogs(frame int64, mapID domain.MapID, logs []api.LogEntry) {
	h.publish(mapID, api.ServerResponse{Type: api.TypeLog, Frame: frame, Logs: logs})
}

// Subscribers returns the number of open feeds.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Dropped returns how many messages id lost to a full feed.
func (h *Hub) Dropped(id string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.subs[id]; ok {
		return s.dropped
	}
	return 0
}

func (h *Hub) publish(mapID domain.MapID, msg api.ServerResponse) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, s := range h.subs {
		if s.hears(mapID) {
			h.offer(id, s, msg)
		}
	}
}

// offer never blocks: the frame loop publishes and must not wait on a slow
// client. Callers hold h.mu.
func (h *Hub) offer(id string, s *subscriber, msg api.ServerResponse) bool {
	select {
	case s.feed <- msg:
		return true
	default:
		s.dropped++
		h.log.WithFields(logrus.Fields{
			"subscriber": id,
			"type":       msg.Type,
			"dropped":    s.dropped,
		}).Debug("feed full, message dropped")
		return false
	}
}
