package interaction

import "github.com/KirkDiggler/pig/internal/models"

// ChooseActionInput contains parameters for the hold/roll prompt
type ChooseActionInput struct {
	// PlayerName is the player being asked
	PlayerName string
}

// ChooseActionOutput contains the player's raw answer
type ChooseActionOutput struct {
	Choice string
}

// InvalidChoiceInput describes a rejected answer
type InvalidChoiceInput struct {
	Choice string
}

// ShowTurnStatsInput contains the stats shown before each decision
type ShowTurnStatsInput struct {
	PlayerName string

	// BankedScore is the current player's banked score
	BankedScore int

	// PotentialScore is banked plus running score
	PotentialScore int

	// HighestScore is the best banked score across all players
	HighestScore int
}

// ShowScoreboardInput contains every player's banked score in seat order
type ShowScoreboardInput struct {
	Entries []models.ScoreboardEntry
}

// ShowRollInput describes a single roll
type ShowRollInput struct {
	PlayerName string
	Value      int

	// RunningScore is the turn total after the roll, zero on a bust
	RunningScore int

	// Bust indicates the roll ended the turn
	Bust bool
}

// ShowTurnPassedInput describes a change of current player
type ShowTurnPassedInput struct {
	FromPlayerName string
	ToPlayerName   string
	Reason         models.TurnEndReason

	// Banked is the amount added on a hold
	Banked int
}

// ShowWinnerInput names the winner
type ShowWinnerInput struct {
	PlayerName string
	Score      int
}

// ShowSessionTallyInput contains wins across rematches
type ShowSessionTallyInput struct {
	GamesPlayed int
	Entries     []*models.TallyEntry
}

// AskRematchInput contains parameters for the rematch prompt
type AskRematchInput struct {
	PlayerCount int
}

// AskRematchOutput contains the rematch decision
type AskRematchOutput struct {
	Rematch bool
}
