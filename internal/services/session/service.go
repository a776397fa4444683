package session

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/pig/internal/common/clock"
	"github.com/KirkDiggler/pig/internal/common/uuid"
	"github.com/KirkDiggler/pig/internal/dice"
	"github.com/KirkDiggler/pig/internal/interaction"
	tallyRepo "github.com/KirkDiggler/pig/internal/repositories/tally"
	"github.com/KirkDiggler/pig/internal/services/game"
	"go.uber.org/zap"
)

// Service plays games back to back until the players stop asking for a rematch
type Service struct {
	numPlayers    int
	maxScore      int
	seed          int64
	port          interaction.Port
	tallyRepo     tallyRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	newRoller     RollerFactory
	logger        *zap.Logger
}

// New creates a new session service
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.NumPlayers < game.MinPlayers {
		return nil, ErrTooFewPlayers
	}

	if cfg.Port == nil {
		return nil, ErrNilPort
	}

	if cfg.TallyRepo == nil {
		return nil, ErrNilTallyRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	newRoller := cfg.NewRoller
	if newRoller == nil {
		newRoller = func(seed int64) dice.Roller {
			return dice.New(&dice.Config{Seed: seed})
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		numPlayers:    cfg.NumPlayers,
		maxScore:      cfg.MaxScore,
		seed:          cfg.Seed,
		port:          cfg.Port,
		tallyRepo:     cfg.TallyRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		newRoller:     newRoller,
		logger:        logger,
	}, nil
}

// Run plays games until a rematch is declined. Each game gets fresh players and
// a die reseeded with the same seed
func (s *Service) Run(ctx context.Context) (*RunOutput, error) {
	sessionID := s.uuidGenerator.NewUUID()
	logger := s.logger.With(zap.String("session_id", sessionID))
	defer s.deleteTally(ctx, logger, sessionID)

	output := &RunOutput{
		SessionID: sessionID,
		Winners:   []string{},
	}

	for {
		g, err := game.New(&game.Config{
			NumPlayers: s.numPlayers,
			MaxScore:   s.maxScore,
			DiceRoller: s.newRoller(s.seed),
			Port:       s.port,
			Logger:     logger,
		})
		if err != nil {
			return output, fmt.Errorf("failed to create game: %w", err)
		}

		logger.Debug("game started", zap.Int("game", output.GamesPlayed+1))

		played, err := g.Play(ctx)
		if err != nil {
			return output, err
		}

		output.GamesPlayed++
		output.Winners = append(output.Winners, played.Winner.Name)

		if err := s.showTally(ctx, logger, sessionID, played); err != nil {
			return output, err
		}

		rematch, err := s.port.AskRematch(ctx, &interaction.AskRematchInput{
			PlayerCount: s.numPlayers,
		})
		if err != nil {
			return output, err
		}

		if !rematch.Rematch {
			return output, nil
		}

		if err := s.port.ClearScreen(ctx); err != nil {
			return output, err
		}
	}
}

// showTally records the win and shows the standings. Tally storage failures are
// logged and skipped so they never end a session
func (s *Service) showTally(ctx context.Context, logger *zap.Logger, sessionID string, played *game.PlayOutput) error {
	err := s.tallyRepo.RecordWin(ctx, &tallyRepo.RecordWinInput{
		SessionID:  sessionID,
		PlayerName: played.Winner.Name,
		Score:      played.Winner.BankedScore,
		WonAt:      s.clock.Now(),
	})
	if err != nil {
		logger.Warn("failed to record win", zap.Error(err))
		return nil
	}

	tally, err := s.tallyRepo.GetTally(ctx, &tallyRepo.GetTallyInput{
		SessionID: sessionID,
	})
	if err != nil {
		logger.Warn("failed to get tally", zap.Error(err))
		return nil
	}

	return s.port.ShowSessionTally(ctx, &interaction.ShowSessionTallyInput{
		GamesPlayed: tally.GamesPlayed,
		Entries:     tally.Entries,
	})
}

func (s *Service) deleteTally(ctx context.Context, logger *zap.Logger, sessionID string) {
	err := s.tallyRepo.DeleteSession(context.WithoutCancel(ctx), &tallyRepo.DeleteSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		logger.Warn("failed to delete session tally", zap.Error(err))
	}
}
