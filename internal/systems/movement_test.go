package systems

import (
	"testing"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/systems/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MovementControllerTestSuite struct {
	suite.Suite

	ctrl      *gomock.Controller
	obstacles *mock.MockOccupancyProvider
	grid      *domain.Grid
	player    *domain.Entity
	mover     *MovementController
	commits   []domain.WorldPos
}

func (s *MovementControllerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.obstacles = mock.NewMockOccupancyProvider(s.ctrl)
	s.obstacles.EXPECT().Occupied(gomock.Any()).Return(false).AnyTimes()

	s.grid = walledGrid(s.T(), 20, 20)
	s.player = &domain.Entity{
		ID:   "player_1",
		Type: domain.EntityTypePlayer,
		Pos:  domain.DefaultAnchor.GridToWorld(domain.GridPos{Col: 5, Row: 5}),
	}
	resolver := NewCollisionResolver(s.grid, domain.DefaultAnchor, s.obstacles)
	s.mover = NewMovementController(s.player, s.grid, resolver, PlayerMovement())

	s.commits = nil
	s.mover.OnPositionCommitted(func(x, y float64) {
		s.commits = append(s.commits, domain.WorldPos{X: x, Y: y})
	})
}

func (s *MovementControllerTestSuite) runUntilIdle(maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		if s.mover.State() == domain.Idle {
			return i
		}
		s.mover.Update(1)
	}
	return maxFrames
}

func (s *MovementControllerTestSuite) pathTo(goal domain.GridPos) domain.Path {
	path, err := FindPath(s.grid, s.mover.Cell(), goal)
	s.Require().NoError(err)
	return path
}

func (s *MovementControllerTestSuite) TestFollowPathArrivesExactly() {
	goal := domain.GridPos{Col: 8, Row: 5}
	s.mover.RequestPathFollow(s.pathTo(goal))
	s.Equal(domain.FollowingPath, s.mover.State())

	frames := s.runUntilIdle(500)

	s.Equal(domain.Idle, s.mover.State())
	s.Less(frames, 500)
	s.Equal(domain.DefaultAnchor.GridToWorld(goal), s.player.Pos)
	s.Equal(goal, s.mover.Cell())
	s.Empty(s.mover.Waypoints())
}

func (s *MovementControllerTestSuite) TestStepNeverOvershoots() {
	start := s.player.Pos
	s.mover.RequestPathFollow(domain.Path{{Col: 6, Row: 5}})

	for i := 0; i < 100 && s.mover.State() == domain.FollowingPath; i++ {
		s.mover.Update(1.7)
		s.LessOrEqual(s.player.Pos.X, start.X+domain.TileSize)
	}
	s.Equal(start.X+domain.TileSize, s.player.Pos.X)
}

func (s *MovementControllerTestSuite) TestCommitsAreReported() {
	s.mover.RequestPathFollow(domain.Path{{Col: 5, Row: 4}})
	s.mover.Update(1)

	s.Require().Len(s.commits, 1)
	s.Equal(s.player.Pos, s.commits[0])
	s.InDelta(domain.DefaultAnchor.GridToWorld(domain.GridPos{Col: 5, Row: 5}).Y-2, s.commits[0].Y, 1e-9)
}

func (s *MovementControllerTestSuite) TestEmptyPathIsNoop() {
	s.mover.RequestPathFollow(domain.Path{})
	s.Equal(domain.Idle, s.mover.State())

	s.mover.Update(1)
	s.Empty(s.commits)
}

func (s *MovementControllerTestSuite) TestGridReplaceDiscardsPath() {
	s.mover.RequestPathFollow(s.pathTo(domain.GridPos{Col: 15, Row: 5}))
	for i := 0; i < 10; i++ {
		s.mover.Update(1)
	}
	s.Require().Equal(domain.FollowingPath, s.mover.State())

	interior := domain.NewOpenGrid(10, 10)
	s.Require().NoError(s.grid.Replace(10, 10, interior.Snapshot()))

	s.Equal(domain.Idle, s.mover.State())
	frozen := s.player.Pos
	committed := len(s.commits)

	for i := 0; i < 50; i++ {
		s.mover.Update(1)
	}
	s.Equal(frozen, s.player.Pos)
	s.Len(s.commits, committed)
}

func (s *MovementControllerTestSuite) TestBlockedPathStepCancels() {
	// a wall appears on the route after the path was computed
	s.mover.RequestPathFollow(s.pathTo(domain.GridPos{Col: 5, Row: 8}))
	s.grid.SetCell(5, 6, domain.TerrainBlocked)

	s.runUntilIdle(200)

	s.Equal(domain.Idle, s.mover.State())
	s.Equal(domain.GridPos{Col: 5, Row: 5}, s.mover.Cell())
}

func (s *MovementControllerTestSuite) TestFreeMoveClampsAndFaces() {
	start := s.player.Pos
	s.mover.RequestFreeMove(domain.Vector{X: -10, Y: 0})
	s.Equal(domain.FreeMoving, s.mover.State())

	s.mover.Update(1)

	s.InDelta(start.X-domain.PlayerSpeed, s.player.Pos.X, 1e-9)
	s.Equal(start.Y, s.player.Pos.Y)
	s.True(s.mover.FacingLeft())

	// purely vertical input keeps facing
	s.mover.RequestFreeMove(domain.Vector{X: 0, Y: 1})
	s.mover.Update(1)
	s.True(s.mover.FacingLeft())
}

func (s *MovementControllerTestSuite) TestFreeMoveBlockedKeepsPosition() {
	s.player.Pos = domain.DefaultAnchor.GridToWorld(domain.GridPos{Col: 1, Row: 5})
	s.mover.RequestFreeMove(domain.Vector{X: -1, Y: 0})

	for i := 0; i < 100; i++ {
		s.mover.Update(1)
	}

	s.Equal(domain.FreeMoving, s.mover.State())
	s.Equal(domain.GridPos{Col: 1, Row: 5}, s.mover.Cell())
	s.GreaterOrEqual(s.player.Pos.X, domain.TileSize)
}

func (s *MovementControllerTestSuite) TestFreeInputCancelsPath() {
	s.mover.RequestPathFollow(s.pathTo(domain.GridPos{Col: 9, Row: 9}))
	s.mover.RequestFreeMove(domain.Vector{X: 0, Y: -1})

	s.Equal(domain.FreeMoving, s.mover.State())
	s.Empty(s.mover.Waypoints())
}

func (s *MovementControllerTestSuite) TestDeadzone() {
	s.mover.RequestFreeMove(domain.Vector{X: 0.05, Y: 0.05})
	s.Equal(domain.Idle, s.mover.State())

	s.mover.RequestFreeMove(domain.Vector{X: 1, Y: 0})
	s.Equal(domain.FreeMoving, s.mover.State())

	s.mover.RequestFreeMove(domain.Vector{})
	s.Equal(domain.Idle, s.mover.State())
}

func (s *MovementControllerTestSuite) TestReleasingStickKeepsPath() {
	s.mover.RequestPathFollow(s.pathTo(domain.GridPos{Col: 7, Row: 5}))
	s.mover.RequestFreeMove(domain.Vector{})
	s.Equal(domain.FollowingPath, s.mover.State())
}

func (s *MovementControllerTestSuite) TestPathSupersedesPath() {
	s.mover.RequestPathFollow(s.pathTo(domain.GridPos{Col: 9, Row: 5}))
	s.mover.RequestPathFollow(s.pathTo(domain.GridPos{Col: 5, Row: 7}))

	s.runUntilIdle(500)
	s.Equal(domain.GridPos{Col: 5, Row: 7}, s.mover.Cell())
}

func (s *MovementControllerTestSuite) TestTeleport() {
	s.mover.RequestPathFollow(s.pathTo(domain.GridPos{Col: 9, Row: 5}))
	s.mover.Update(1)

	target := domain.DefaultAnchor.GridToWorld(domain.GridPos{Col: 2, Row: 2})
	s.mover.Teleport(target)

	s.Equal(domain.Idle, s.mover.State())
	s.Equal(target, s.player.Pos)
	s.Equal(target, s.commits[len(s.commits)-1])

	s.mover.Update(1)
	s.Equal(target, s.player.Pos)
}

func TestMovementControllerTestSuite(t *testing.T) {
	suite.Run(t, new(MovementControllerTestSuite))
}

func TestMovementController_ZeroDelta(t *testing.T) {
	g := domain.NewOpenGrid(4, 4)
	e := &domain.Entity{ID: "m", Pos: domain.DefaultAnchor.GridToWorld(domain.GridPos{Col: 1, Row: 1})}
	m := NewMovementController(e, g, NewCollisionResolver(g, domain.DefaultAnchor), PlayerMovement())

	m.RequestPathFollow(domain.Path{{Col: 2, Row: 1}})
	m.Update(0)

	assert.Equal(t, domain.FollowingPath, m.State())
	require.Equal(t, domain.GridPos{Col: 1, Row: 1}, m.Cell())
}
