package game

import (
	"github.com/KirkDiggler/pig/internal/dice"
	"github.com/KirkDiggler/pig/internal/interaction"
	"github.com/KirkDiggler/pig/internal/models"
	"go.uber.org/zap"
)

const (
	// DefaultMaxScore is the banked score that wins the game
	DefaultMaxScore = 100

	// MinPlayers is the smallest table Pig is played with
	MinPlayers = 2
)

// Config holds configuration for a game
type Config struct {
	// Number of players, named "Player 1".."Player N"
	NumPlayers int

	// Winning threshold, defaults to DefaultMaxScore
	MaxScore int

	// Dice roller, a fresh seeded die per game
	DiceRoller dice.Roller

	// Port is only required by Play
	Port interaction.Port

	// Optional logger, defaults to a no-op logger
	Logger *zap.Logger
}

// RollOutput contains the result of rolling the die
type RollOutput struct {
	PlayerName string
	Value      int

	// Bust indicates a 1 was rolled and the turn passed
	Bust bool

	// RunningScore is the turn total after the roll
	RunningScore int

	// CurrentPlayerName is whose turn it is after the roll
	CurrentPlayerName string

	State models.GameState
}

// HoldOutput contains the result of banking the running score
type HoldOutput struct {
	PlayerName string

	// Banked is the running score added by this hold
	Banked int

	// BankedScore is the player's total after the hold
	BankedScore int

	HighestScore int

	// Won indicates the hold reached the winning threshold
	Won bool

	// CurrentPlayerName is whose turn it is after the hold, the winner if Won
	CurrentPlayerName string

	State models.GameState
}

// PlayOutput contains the result of a game played to completion
type PlayOutput struct {
	// Winner is a copy of the winning player
	Winner models.Player

	// Rolls is the replay record, every roll made in the game in order.
	// Playing again with the same seed and answers yields the same record
	Rolls []models.Roll

	// Turns is the number of completed turns
	Turns int
}
