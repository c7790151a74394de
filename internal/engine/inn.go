package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/systems"
)

// RentRoom leases the player's inn room for a day and moves the player in.
// Renting again while the lease runs starts a fresh day. The player must
// stand near the inn.
func (g *Game) RentRoom() (domain.Rental, error) {
	if g.mapID != domain.MainWorld {
		return domain.Rental{}, fmt.Errorf("the inn is on %s: %w", domain.MainWorld, domain.ErrOutOfReach)
	}
	front := g.anchor.GridToWorld(domain.InnAnchor.Shift(1, 2))
	if !systems.InReach(g.player.Pos, front, domain.InnReachTiles*g.cfg.TileSize) {
		return domain.Rental{}, fmt.Errorf("inn at %.0fpx: %w", g.player.Pos.DistanceTo(front), domain.ErrOutOfReach)
	}

	// 1. Lease
	prev := g.rental
	r := domain.Rental{
		MapID:     domain.InnRoomMapID(g.cfg.PlayerID),
		ExpiresAt: g.clock.Now().Add(domain.RentalDuration).UnixMilli(),
	}
	g.rental = &r

	// 2. Move in
	if err := g.activate(r.MapID, domain.InnRoomSpawn); err != nil {
		g.rental = prev
		return domain.Rental{}, err
	}

	g.log.WithFields(logrus.Fields{
		"map":        r.MapID,
		"expires_at": r.ExpiresAt,
	}).Info("inn room rented")
	return r, nil
}

// Rental returns the running lease, if any.
func (g *Game) Rental() (domain.Rental, bool) {
	if g.rental == nil || !g.rental.ActiveAt(g.clock.Now().UnixMilli()) {
		return domain.Rental{}, false
	}
	return *g.rental, true
}

// rentsRoom reports whether owner's inn room may be entered: only the
// session player's own room, and only while the lease runs.
func (g *Game) rentsRoom(owner string) bool {
	_, ok := g.Rental()
	return ok && owner == g.cfg.PlayerID
}

// checkRental puts the player back on the doorstep once the lease runs out
// while they are inside.
func (g *Game) checkRental() {
	if _, inRoom := g.mapID.InnRoomOwner(); !inRoom {
		return
	}
	if _, ok := g.Rental(); ok {
		return
	}

	g.rental = nil
	g.logf("INFO", "Your inn room rental expired.")
	if err := g.activate(domain.MainWorld, domain.InnDoorstep); err != nil {
		g.log.WithError(err).Warn("eviction failed")
	}
}
