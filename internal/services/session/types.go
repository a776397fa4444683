package session

import (
	"github.com/KirkDiggler/pig/internal/common/clock"
	"github.com/KirkDiggler/pig/internal/common/uuid"
	"github.com/KirkDiggler/pig/internal/dice"
	"github.com/KirkDiggler/pig/internal/interaction"
	tallyRepo "github.com/KirkDiggler/pig/internal/repositories/tally"
	"go.uber.org/zap"
)

// RollerFactory builds the die for a new game
type RollerFactory func(seed int64) dice.Roller

// Config holds configuration for a session
type Config struct {
	// Number of players, validated once at startup and reused for every rematch
	NumPlayers int

	// Winning threshold passed to every game
	MaxScore int

	// Seed for every game's die
	Seed int64

	// Port for prompts and display
	Port interaction.Port

	// Repository dependencies
	TallyRepo tallyRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Optional die factory, defaults to a fresh seeded dice.Die
	NewRoller RollerFactory

	// Optional logger, defaults to a no-op logger
	Logger *zap.Logger
}

// RunOutput contains the result of a session
type RunOutput struct {
	SessionID string

	// GamesPlayed is the number of games played to completion
	GamesPlayed int

	// Winners names each game's winner in order
	Winners []string
}
