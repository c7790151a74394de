package structures_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/pkg/clock"
	"github.com/damn090909-boop/Simple-Game/internal/repositories/structures"
	"github.com/damn090909-boop/Simple-Game/internal/testutils"
)

type RedisStructuresTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	clock *clock.Fixed
	repo  structures.Repository
	ctx   context.Context
}

func (s *RedisStructuresTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.clock = &clock.Fixed{T: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	s.ctx = context.Background()

	repo, err := structures.NewRedis(&structures.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisStructuresTestSuite) house(id string, col, row int) domain.Structure {
	return domain.Structure{
		ID:        id,
		Kind:      "house",
		OwnerID:   "player_1",
		Footprint: domain.HouseFootprint(domain.GridPos{Col: col, Row: row}),
	}
}

func (s *RedisStructuresTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *structures.RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "nil client", config: &structures.RedisConfig{Clock: s.clock}, errMsg: "client cannot be nil"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := structures.NewRedis(tc.config)
			s.Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(repo)
		})
	}
}

func (s *RedisStructuresTestSuite) TestSaveAndList() {
	out, err := s.repo.Save(s.ctx, structures.SaveInput{MapID: domain.MainWorld, Structure: s.house("b", 10, 10)})
	s.Require().NoError(err)
	s.Equal(s.clock.T.UnixMilli(), out.Structure.CreatedAt)

	s.clock.Advance(time.Second)
	_, err = s.repo.Save(s.ctx, structures.SaveInput{MapID: domain.MainWorld, Structure: s.house("a", 2, 2)})
	s.Require().NoError(err)

	s.True(s.mr.Exists(structures.GetKey(domain.MainWorld)))

	list, err := s.repo.List(s.ctx, structures.ListInput{MapID: domain.MainWorld})
	s.Require().NoError(err)
	s.Require().Len(list.Structures, 2)
	s.Equal("b", list.Structures[0].ID, "oldest first")
	s.Equal(domain.GridPos{Col: 3, Row: 4}, list.Structures[1].Footprint.PortalCell())
}

func (s *RedisStructuresTestSuite) TestListEmptyMap() {
	list, err := s.repo.List(s.ctx, structures.ListInput{MapID: domain.InteriorMapID("nobody")})
	s.Require().NoError(err)
	s.Empty(list.Structures)
}

func (s *RedisStructuresTestSuite) TestSaveRequiresID() {
	_, err := s.repo.Save(s.ctx, structures.SaveInput{MapID: domain.MainWorld})
	s.Error(err)
}

func (s *RedisStructuresTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, structures.SaveInput{MapID: domain.MainWorld, Structure: s.house("a", 2, 2)})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, structures.DeleteInput{MapID: domain.MainWorld, ID: "a"})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, structures.DeleteInput{MapID: domain.MainWorld, ID: "a"})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *RedisStructuresTestSuite) TestCorruptEntry() {
	s.mr.HSet(structures.GetKey(domain.MainWorld), "bad", "{not json")

	_, err := s.repo.List(s.ctx, structures.ListInput{MapID: domain.MainWorld})
	s.Error(err)
}

func TestRedisStructuresTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStructuresTestSuite))
}
