package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/pkg/clock"
	"github.com/damn090909-boop/Simple-Game/internal/repositories/presence"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
	"github.com/sirupsen/logrus"
)

// PositionSync publishes the player's committed positions at most once per
// interval. Positions committed in between overwrite each other; the latest
// one is kept until Flush may send it, so the resting position always goes
// out.
type PositionSync struct {
	repo     presence.Repository
	clock    clock.Clock
	interval time.Duration
	playerID string
	log      *logrus.Entry

	pending *presence.Presence
	last    time.Time
}

func NewPositionSync(repo presence.Repository, clk clock.Clock, playerID string, interval time.Duration) *PositionSync {
	return &PositionSync{
		repo:     repo,
		clock:    clk,
		interval: interval,
		playerID: playerID,
		log:      logger.For("position_sync").WithField("player_id", playerID),
	}
}

// Observe records a committed position. Coordinates are rounded to whole
// pixels.
func (s *PositionSync) Observe(mapID domain.MapID, x, y float64, facingLeft bool) {
	pos := domain.WorldPos{X: x, Y: y}.Rounded()
	s.pending = &presence.Presence{
		PlayerID:   s.playerID,
		MapID:      mapID,
		X:          pos.X,
		Y:          pos.Y,
		FacingLeft: facingLeft,
	}
}

// Pending reports whether a position is waiting to be published.
func (s *PositionSync) Pending() bool { return s.pending != nil }

// Flush publishes the pending position if the interval since the previous
// attempt has passed. It returns the published presence, or nil when
// nothing was sent.
func (s *PositionSync) Flush(ctx context.Context) (*presence.Presence, error) {
	if s.pending == nil {
		return nil, nil
	}

	now := s.clock.Now()
	if !s.last.IsZero() && now.Sub(s.last) < s.interval {
		return nil, nil
	}
	s.last = now

	p := *s.pending
	p.Timestamp = now.UnixMilli()
	if _, err := s.repo.Publish(ctx, presence.PublishInput{Presence: p}); err != nil {
		return nil, fmt.Errorf("publish position: %w", err)
	}

	s.pending = nil
	s.log.WithFields(logrus.Fields{"x": p.X, "y": p.Y, "map": p.MapID}).Debug("position published")
	return &p, nil
}
