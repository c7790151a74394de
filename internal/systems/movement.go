package systems

import (
	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
	"github.com/sirupsen/logrus"
)

// MovementConfig tunes one controller.
type MovementConfig struct {
	Speed    float64 // pixels per frame at delta 1
	Deadzone float64 // input magnitudes at or below this are ignored
	Anchor   domain.Anchor
}

// PlayerMovement is the configuration of the locally controlled character.
func PlayerMovement() MovementConfig {
	return MovementConfig{Speed: domain.PlayerSpeed, Deadzone: domain.InputDeadzone, Anchor: domain.DefaultAnchor}
}

// MovementController advances one entity either along a path or along a
// free input vector. It writes Entity.Pos and Entity.FacingLeft.
type MovementController struct {
	entity   *domain.Entity
	grid     *domain.Grid
	resolver *CollisionResolver
	cfg      MovementConfig
	log      *logrus.Entry

	state       domain.MoveState
	waypoints   []domain.WorldPos
	pathVersion uint64
	input       domain.Vector

	listeners   []func(x, y float64)
	unsubscribe func()
}

func NewMovementController(e *domain.Entity, grid *domain.Grid, resolver *CollisionResolver, cfg MovementConfig) *MovementController {
	m := &MovementController{
		entity:   e,
		grid:     grid,
		resolver: resolver,
		cfg:      cfg,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "movement",
			"entity_id": e.ID,
		}),
	}
	m.unsubscribe = grid.Subscribe(m.onGridReplaced)
	return m
}

// Close detaches the controller from grid notifications. The controller must
// not be used afterwards.
func (m *MovementController) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// OnPositionCommitted registers fn to run every time the position changes.
func (m *MovementController) OnPositionCommitted(fn func(x, y float64)) {
	m.listeners = append(m.listeners, fn)
}

func (m *MovementController) State() domain.MoveState   { return m.state }
func (m *MovementController) Position() domain.WorldPos { return m.entity.Pos }
func (m *MovementController) FacingLeft() bool          { return m.entity.FacingLeft }
func (m *MovementController) Entity() *domain.Entity    { return m.entity }

// Cell is the grid cell under the entity's feet.
func (m *MovementController) Cell() domain.GridPos {
	return m.cfg.Anchor.WorldToGrid(m.entity.Pos)
}

// Waypoints returns a copy of the remaining queue.
func (m *MovementController) Waypoints() []domain.WorldPos {
	out := make([]domain.WorldPos, len(m.waypoints))
	copy(out, m.waypoints)
	return out
}

// RequestPathFollow starts following path, superseding any previous path or
// free movement. An empty path means "already there" and changes nothing.
func (m *MovementController) RequestPathFollow(path domain.Path) {
	if len(path) == 0 {
		return
	}
	m.waypoints = path.ToWorld(m.cfg.Anchor)
	m.pathVersion = m.grid.Version()
	m.input = domain.Vector{}
	m.state = domain.FollowingPath
}

// RequestFreeMove applies a direction vector. Input beyond the deadzone
// cancels any queued path.
func (m *MovementController) RequestFreeMove(v domain.Vector) {
	if v.Len() > m.cfg.Deadzone {
		if m.state == domain.FollowingPath {
			m.log.Debug("path cancelled by free input")
		}
		m.waypoints = nil
		m.input = v
		m.state = domain.FreeMoving
		return
	}

	m.input = domain.Vector{}
	if m.state == domain.FreeMoving {
		m.state = domain.Idle
	}
}

// Teleport places the entity at pos and drops all movement.
func (m *MovementController) Teleport(pos domain.WorldPos) {
	m.Reset()
	m.entity.Pos = pos
	m.notify()
}

// Reset returns to Idle without moving.
func (m *MovementController) Reset() {
	m.state = domain.Idle
	m.waypoints = nil
	m.input = domain.Vector{}
}

// Update advances one frame. delta scales the per-frame speed.
func (m *MovementController) Update(delta float64) {
	travel := m.cfg.Speed * delta
	if travel <= 0 {
		return
	}

	switch m.state {
	case domain.FollowingPath:
		m.stepPath(travel)
	case domain.FreeMoving:
		m.stepFree(travel)
	}
}

func (m *MovementController) stepPath(travel float64) {
	// 1. Stale path: computed against a grid that has since been replaced
	if m.grid.Version() != m.pathVersion {
		m.cancelPath("grid replaced")
		return
	}

	// 2. Candidate position
	pos := m.entity.Pos
	target := m.waypoints[0]
	dist := pos.DistanceTo(target)

	next := target
	arrived := dist < travel
	if !arrived {
		next = pos.Add(target.Sub(pos).Scale(travel / dist))
	}

	// 3. Collision
	if _, ok := m.resolver.Resolve(pos, next); !ok {
		m.cancelPath("step blocked")
		return
	}

	m.commit(next)

	// 4. Advance the queue
	if arrived {
		m.waypoints = m.waypoints[1:]
		if len(m.waypoints) == 0 {
			m.waypoints = nil
			m.state = domain.Idle
		}
	}
}

func (m *MovementController) stepFree(travel float64) {
	pos := m.entity.Pos
	next := pos.Add(m.input.ClampLen(1).Scale(travel))

	if _, ok := m.resolver.Resolve(pos, next); !ok {
		return
	}
	m.commit(next)
}

func (m *MovementController) commit(next domain.WorldPos) {
	if next == m.entity.Pos {
		return
	}
	m.entity.FaceTowards(next.X - m.entity.Pos.X)
	m.entity.Pos = next
	m.notify()
}

func (m *MovementController) notify() {
	for _, fn := range m.listeners {
		fn(m.entity.Pos.X, m.entity.Pos.Y)
	}
}

func (m *MovementController) cancelPath(reason string) {
	m.log.WithField("reason", reason).Debug("path discarded")
	m.waypoints = nil
	m.state = domain.Idle
}

func (m *MovementController) onGridReplaced(version uint64) {
	if m.state == domain.FollowingPath && version != m.pathVersion {
		m.cancelPath("grid replaced")
	}
}
