package tally

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	repositoryBehaviorSuite
	mr     *miniredis.Miniredis
	client *redis.Client
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&RedisConfig{
		RedisClient: s.client,
		TTL:         30 * time.Minute,
	})
	s.Require().NoError(err)
	s.setup(repo)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestRecordWinSetsTTL() {
	s.recordWin("session-1", "Player 1", 100, s.testNow)

	s.Equal(30*time.Minute, s.mr.TTL("tally:session-1:players"))
	s.Equal(30*time.Minute, s.mr.TTL("tally:session-1:games"))
}

func (s *RedisRepositoryTestSuite) TestExpiredSessionIsEmpty() {
	s.recordWin("session-1", "Player 1", 100, s.testNow)

	s.mr.FastForward(31 * time.Minute)

	output, err := s.repo.GetTally(s.ctx, &GetTallyInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal(0, output.GamesPlayed)
	s.Empty(output.Entries)
}

func (s *RedisRepositoryTestSuite) TestDeleteSessionRemovesKeys() {
	s.recordWin("session-1", "Player 1", 100, s.testNow)
	s.Require().True(s.mr.Exists("tally:session-1:players"))

	err := s.repo.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: "session-1"})
	s.Require().NoError(err)

	s.False(s.mr.Exists("tally:session-1:players"))
	s.False(s.mr.Exists("tally:session-1:games"))
}

func (s *RedisRepositoryTestSuite) TestCorruptEntry() {
	s.mr.HSet("tally:session-1:players", "Player 1", "not json")

	_, err := s.repo.GetTally(s.ctx, &GetTallyInput{SessionID: "session-1"})
	s.Error(err)

	err = s.repo.RecordWin(s.ctx, &RecordWinInput{SessionID: "session-1", PlayerName: "Player 1", Score: 100})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestNewRedis_Validation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&RedisConfig{})
	s.Error(err)

	closed := miniredis.NewMiniRedis()
	s.Require().NoError(closed.Start())
	addr := closed.Addr()
	closed.Close()

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	_, err = NewRedis(&RedisConfig{RedisClient: client})
	s.Error(err)
}
