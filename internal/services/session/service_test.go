package session

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/pig/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/pig/internal/common/uuid/mocks"
	"github.com/KirkDiggler/pig/internal/dice"
	diceMocks "github.com/KirkDiggler/pig/internal/dice/mocks"
	"github.com/KirkDiggler/pig/internal/interaction"
	portMocks "github.com/KirkDiggler/pig/internal/interaction/mocks"
	"github.com/KirkDiggler/pig/internal/models"
	tallyRepo "github.com/KirkDiggler/pig/internal/repositories/tally"
	tallyMocks "github.com/KirkDiggler/pig/internal/repositories/tally/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockPort       *portMocks.MockPort
	mockTallyRepo  *tallyMocks.MockRepository
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	mockDiceRoller *diceMocks.MockRoller
	ctx            context.Context

	testTime      time.Time
	testSessionID string
	seeds         []int64

	service *Service
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPort = portMocks.NewMockPort(s.mockCtrl)
	s.mockTallyRepo = tallyMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"
	s.seeds = nil

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID).AnyTimes()

	svc, err := New(&Config{
		NumPlayers:    2,
		MaxScore:      5,
		Seed:          42,
		Port:          s.mockPort,
		TallyRepo:     s.mockTallyRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		NewRoller: func(seed int64) dice.Roller {
			s.seeds = append(s.seeds, seed)
			return s.mockDiceRoller
		},
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

// allowDisplay accepts any number of one-way display events
func (s *SessionServiceTestSuite) allowDisplay() {
	s.mockPort.EXPECT().ShowTurnStats(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockPort.EXPECT().ShowScoreboard(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockPort.EXPECT().ClearScreen(gomock.Any()).Return(nil).AnyTimes()
	s.mockPort.EXPECT().ShowRoll(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockPort.EXPECT().ShowTurnPassed(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockPort.EXPECT().ShowWinner(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// expectQuickWin makes Player 1 roll a 6 and hold
func (s *SessionServiceTestSuite) expectQuickWin() {
	s.mockDiceRoller.EXPECT().Roll().Return(6)
	gomock.InOrder(
		s.mockPort.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).
			Return(&interaction.ChooseActionOutput{Choice: "r"}, nil),
		s.mockPort.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).
			Return(&interaction.ChooseActionOutput{Choice: "h"}, nil),
	)
}

func (s *SessionServiceTestSuite) TestNew_Validation() {
	tests := []struct {
		name string
		cfg  *Config
		err  error
	}{
		{name: "nil config", cfg: nil, err: ErrNilConfig},
		{name: "one player", cfg: &Config{NumPlayers: 1}, err: ErrTooFewPlayers},
		{name: "nil port", cfg: &Config{NumPlayers: 2}, err: ErrNilPort},
		{name: "nil tally repo", cfg: &Config{NumPlayers: 2, Port: s.mockPort}, err: ErrNilTallyRepo},
		{name: "nil clock", cfg: &Config{NumPlayers: 2, Port: s.mockPort, TallyRepo: s.mockTallyRepo}, err: ErrNilClock},
		{name: "nil uuid", cfg: &Config{NumPlayers: 2, Port: s.mockPort, TallyRepo: s.mockTallyRepo, Clock: s.mockClock}, err: ErrNilUUIDGenerator},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			svc, err := New(tt.cfg)
			s.ErrorIs(err, tt.err)
			s.Nil(svc)
		})
	}
}

func (s *SessionServiceTestSuite) TestRun_SingleGame() {
	s.allowDisplay()
	s.expectQuickWin()

	entries := []*models.TallyEntry{{PlayerName: "Player 1", Wins: 1, BestScore: 6, LastWonAt: s.testTime}}

	gomock.InOrder(
		s.mockTallyRepo.EXPECT().RecordWin(gomock.Any(), &tallyRepo.RecordWinInput{
			SessionID:  s.testSessionID,
			PlayerName: "Player 1",
			Score:      6,
			WonAt:      s.testTime,
		}).Return(nil),
		s.mockTallyRepo.EXPECT().GetTally(gomock.Any(), &tallyRepo.GetTallyInput{
			SessionID: s.testSessionID,
		}).Return(&tallyRepo.GetTallyOutput{GamesPlayed: 1, Entries: entries}, nil),
		s.mockPort.EXPECT().ShowSessionTally(gomock.Any(), &interaction.ShowSessionTallyInput{
			GamesPlayed: 1,
			Entries:     entries,
		}).Return(nil),
		s.mockPort.EXPECT().AskRematch(gomock.Any(), &interaction.AskRematchInput{PlayerCount: 2}).
			Return(&interaction.AskRematchOutput{Rematch: false}, nil),
		s.mockTallyRepo.EXPECT().DeleteSession(gomock.Any(), &tallyRepo.DeleteSessionInput{
			SessionID: s.testSessionID,
		}).Return(nil),
	)

	output, err := s.service.Run(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.testSessionID, output.SessionID)
	s.Equal(1, output.GamesPlayed)
	s.Equal([]string{"Player 1"}, output.Winners)
	s.Equal([]int64{42}, s.seeds)
}

func (s *SessionServiceTestSuite) TestRun_RematchStartsFreshGame() {
	s.allowDisplay()
	s.expectQuickWin()
	s.expectQuickWin()

	s.mockPort.EXPECT().ShowSessionTally(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.mockTallyRepo.EXPECT().GetTally(gomock.Any(), gomock.Any()).
		Return(&tallyRepo.GetTallyOutput{}, nil).Times(2)

	// Both wins are 6 points, so the second game did not inherit the first game's score
	s.mockTallyRepo.EXPECT().RecordWin(gomock.Any(), &tallyRepo.RecordWinInput{
		SessionID:  s.testSessionID,
		PlayerName: "Player 1",
		Score:      6,
		WonAt:      s.testTime,
	}).Return(nil).Times(2)

	gomock.InOrder(
		s.mockPort.EXPECT().AskRematch(gomock.Any(), gomock.Any()).
			Return(&interaction.AskRematchOutput{Rematch: true}, nil),
		s.mockPort.EXPECT().AskRematch(gomock.Any(), gomock.Any()).
			Return(&interaction.AskRematchOutput{Rematch: false}, nil),
	)

	s.mockTallyRepo.EXPECT().DeleteSession(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.Run(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, output.GamesPlayed)
	s.Equal([]string{"Player 1", "Player 1"}, output.Winners)
	s.Equal([]int64{42, 42}, s.seeds)
}

func (s *SessionServiceTestSuite) TestRun_TallyFailureDoesNotEndSession() {
	s.allowDisplay()
	s.expectQuickWin()

	s.mockTallyRepo.EXPECT().RecordWin(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	s.mockPort.EXPECT().AskRematch(gomock.Any(), gomock.Any()).
		Return(&interaction.AskRematchOutput{Rematch: false}, nil)
	s.mockTallyRepo.EXPECT().DeleteSession(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	output, err := s.service.Run(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, output.GamesPlayed)
}

func (s *SessionServiceTestSuite) TestRun_PlayErrorStillDeletesTally() {
	s.allowDisplay()

	expectedErr := errors.New("input closed")
	s.mockPort.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(nil, expectedErr)
	s.mockTallyRepo.EXPECT().DeleteSession(gomock.Any(), &tallyRepo.DeleteSessionInput{
		SessionID: s.testSessionID,
	}).Return(nil)

	output, err := s.service.Run(s.ctx)
	s.ErrorIs(err, expectedErr)
	s.Equal(0, output.GamesPlayed)
}

func (s *SessionServiceTestSuite) TestRun_RematchReplaysSameRolls() {
	svc, err := New(&Config{
		NumPlayers:    2,
		Port:          s.mockPort,
		TallyRepo:     tallyRepo.NewMemory(),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	s.mockPort.EXPECT().ShowTurnStats(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockPort.EXPECT().ShowScoreboard(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockPort.EXPECT().ClearScreen(gomock.Any()).Return(nil).AnyTimes()
	s.mockPort.EXPECT().ShowTurnPassed(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockPort.EXPECT().ShowSessionTally(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	games := [][]int{{}}
	s.mockPort.EXPECT().ShowRoll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *interaction.ShowRollInput) error {
			current := len(games) - 1
			games[current] = append(games[current], input.Value)
			return nil
		}).AnyTimes()

	var winners []interaction.ShowWinnerInput
	s.mockPort.EXPECT().ShowWinner(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *interaction.ShowWinnerInput) error {
			winners = append(winners, *input)
			return nil
		}).Times(2)

	// Roll twice then hold, every turn
	script := []string{"r", "r", "h"}
	step := 0
	s.mockPort.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *interaction.ChooseActionInput) (*interaction.ChooseActionOutput, error) {
			choice := script[step%len(script)]
			step++
			return &interaction.ChooseActionOutput{Choice: choice}, nil
		}).AnyTimes()

	gomock.InOrder(
		s.mockPort.EXPECT().AskRematch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *interaction.AskRematchInput) (*interaction.AskRematchOutput, error) {
				step = 0
				games = append(games, []int{})
				return &interaction.AskRematchOutput{Rematch: true}, nil
			}),
		s.mockPort.EXPECT().AskRematch(gomock.Any(), gomock.Any()).
			Return(&interaction.AskRematchOutput{Rematch: false}, nil),
	)

	output, err := svc.Run(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, output.GamesPlayed)

	s.Require().Len(games, 2)
	s.NotEmpty(games[0])
	s.Equal(games[0], games[1])

	s.Require().Len(winners, 2)
	s.Equal(winners[0], winners[1])
}
