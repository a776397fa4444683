package messaging

import (
	"github.com/KirkDiggler/pig/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral prints the plain classic messages
	ToneNeutral MessageTone = "neutral"

	// ToneFunny appends a quip to busts and wins
	ToneFunny MessageTone = "funny"
)

// IsValid returns true for a known tone
func (t MessageTone) IsValid() bool {
	return t == ToneNeutral || t == ToneFunny
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Tone defaults to ToneNeutral
	Tone MessageTone

	// Seed for picking quips, zero picks one from the clock
	Seed int64
}

// GetTurnStatsMessageInput contains the stats for the current player
type GetTurnStatsMessageInput struct {
	PlayerName     string
	BankedScore    int
	PotentialScore int
	HighestScore   int
}

// GetTurnStatsMessageOutput contains the stats block
type GetTurnStatsMessageOutput struct {
	Message string
}

// GetScoreboardMessageInput contains every player's banked score
type GetScoreboardMessageInput struct {
	Entries []models.ScoreboardEntry
}

// GetScoreboardMessageOutput contains the scoreboard block
type GetScoreboardMessageOutput struct {
	Message string
}

// GetChoicePromptMessageInput contains parameters for the hold or roll prompt
type GetChoicePromptMessageInput struct {
	PlayerName string
}

// GetChoicePromptMessageOutput contains the prompt
type GetChoicePromptMessageOutput struct {
	Message string
}

// GetInvalidChoiceMessageInput describes the rejected answer
type GetInvalidChoiceMessageInput struct {
	Choice string
}

// GetInvalidChoiceMessageOutput contains the reprompt text
type GetInvalidChoiceMessageOutput struct {
	Message string
}

// GetRollResultMessageInput contains the input for GetRollResultMessage
type GetRollResultMessageInput struct {
	PlayerName   string
	RollValue    int
	RunningScore int
	IsBust       bool
}

// GetRollResultMessageOutput contains the output for GetRollResultMessage
type GetRollResultMessageOutput struct {
	Message string
}

// GetTurnPassedMessageInput describes a change of player
type GetTurnPassedMessageInput struct {
	FromPlayerName string
	ToPlayerName   string
	Reason         models.TurnEndReason
	Banked         int
}

// GetTurnPassedMessageOutput contains the announcement
type GetTurnPassedMessageOutput struct {
	Message string
}

// GetWinnerMessageInput names the winner
type GetWinnerMessageInput struct {
	PlayerName string
	Score      int
}

// GetWinnerMessageOutput contains the game over announcement
type GetWinnerMessageOutput struct {
	Message string
}

// GetSessionTallyMessageInput contains wins across rematches
type GetSessionTallyMessageInput struct {
	GamesPlayed int
	Entries     []*models.TallyEntry
}

// GetSessionTallyMessageOutput contains the tally block
type GetSessionTallyMessageOutput struct {
	Message string
}

// GetRematchPromptMessageInput contains parameters for the rematch prompt
type GetRematchPromptMessageInput struct {
	PlayerCount int
}

// GetRematchPromptMessageOutput contains the prompt
type GetRematchPromptMessageOutput struct {
	Message string
}

// GetTooFewPlayersMessageInput contains the configured player count
type GetTooFewPlayersMessageInput struct {
	NumPlayers int
}

// GetTooFewPlayersMessageOutput contains the guidance text
type GetTooFewPlayersMessageOutput struct {
	Message string
}
