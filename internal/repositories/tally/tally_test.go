package tally

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
)

// repositoryBehaviorSuite holds tests every Repository implementation must pass
type repositoryBehaviorSuite struct {
	suite.Suite
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *repositoryBehaviorSuite) setup(repo Repository) {
	s.repo = repo
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *repositoryBehaviorSuite) recordWin(sessionID, player string, score int, at time.Time) {
	err := s.repo.RecordWin(s.ctx, &RecordWinInput{
		SessionID:  sessionID,
		PlayerName: player,
		Score:      score,
		WonAt:      at,
	})
	s.Require().NoError(err)
}

func (s *repositoryBehaviorSuite) TestRecordWinAndGetTally() {
	s.recordWin("session-1", "Player 2", 104, s.testNow)
	s.recordWin("session-1", "Player 1", 100, s.testNow.Add(time.Minute))
	s.recordWin("session-1", "Player 2", 101, s.testNow.Add(2*time.Minute))

	output, err := s.repo.GetTally(s.ctx, &GetTallyInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Require().NotNil(output)

	s.Equal(3, output.GamesPlayed)
	s.Require().Len(output.Entries, 2)

	s.Equal("Player 2", output.Entries[0].PlayerName)
	s.Equal(2, output.Entries[0].Wins)
	s.Equal(104, output.Entries[0].BestScore)
	s.True(s.testNow.Add(2 * time.Minute).Equal(output.Entries[0].LastWonAt))

	s.Equal("Player 1", output.Entries[1].PlayerName)
	s.Equal(1, output.Entries[1].Wins)
	s.Equal(100, output.Entries[1].BestScore)
}

func (s *repositoryBehaviorSuite) TestTieOrdering() {
	s.recordWin("session-1", "Player 3", 100, s.testNow)
	s.recordWin("session-1", "Player 1", 100, s.testNow)
	s.recordWin("session-1", "Player 2", 105, s.testNow)

	output, err := s.repo.GetTally(s.ctx, &GetTallyInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 3)

	s.Equal("Player 2", output.Entries[0].PlayerName)
	s.Equal("Player 1", output.Entries[1].PlayerName)
	s.Equal("Player 3", output.Entries[2].PlayerName)
}

func (s *repositoryBehaviorSuite) TestSessionsAreIsolated() {
	s.recordWin("session-1", "Player 1", 100, s.testNow)
	s.recordWin("session-2", "Player 2", 100, s.testNow)

	output, err := s.repo.GetTally(s.ctx, &GetTallyInput{SessionID: "session-2"})
	s.Require().NoError(err)
	s.Equal(1, output.GamesPlayed)
	s.Require().Len(output.Entries, 1)
	s.Equal("Player 2", output.Entries[0].PlayerName)
}

func (s *repositoryBehaviorSuite) TestUnknownSessionIsEmpty() {
	output, err := s.repo.GetTally(s.ctx, &GetTallyInput{SessionID: "missing"})
	s.Require().NoError(err)
	s.Equal(0, output.GamesPlayed)
	s.Empty(output.Entries)
}

func (s *repositoryBehaviorSuite) TestDeleteSession() {
	s.recordWin("session-1", "Player 1", 100, s.testNow)

	err := s.repo.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: "session-1"})
	s.Require().NoError(err)

	output, err := s.repo.GetTally(s.ctx, &GetTallyInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal(0, output.GamesPlayed)
	s.Empty(output.Entries)
}

func (s *repositoryBehaviorSuite) TestInvalidInput() {
	s.ErrorIs(s.repo.RecordWin(s.ctx, nil), ErrInvalidInput)
	s.ErrorIs(s.repo.RecordWin(s.ctx, &RecordWinInput{SessionID: "session-1"}), ErrInvalidInput)
	s.ErrorIs(s.repo.RecordWin(s.ctx, &RecordWinInput{PlayerName: "Player 1"}), ErrInvalidInput)

	_, err := s.repo.GetTally(s.ctx, &GetTallyInput{})
	s.ErrorIs(err, ErrInvalidInput)

	s.ErrorIs(s.repo.DeleteSession(s.ctx, nil), ErrInvalidInput)
}
