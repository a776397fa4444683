package messaging

import "context"

// Service turns game events into the text shown on the terminal
type Service interface {
	// GetTurnStatsMessage returns the stats block shown before each decision
	GetTurnStatsMessage(ctx context.Context, input *GetTurnStatsMessageInput) (*GetTurnStatsMessageOutput, error)

	// GetScoreboardMessage returns every player's banked score
	GetScoreboardMessage(ctx context.Context, input *GetScoreboardMessageInput) (*GetScoreboardMessageOutput, error)

	// GetChoicePromptMessage returns the hold or roll prompt
	GetChoicePromptMessage(ctx context.Context, input *GetChoicePromptMessageInput) (*GetChoicePromptMessageOutput, error)

	// GetInvalidChoiceMessage returns the reprompt text for a bad answer
	GetInvalidChoiceMessage(ctx context.Context, input *GetInvalidChoiceMessageInput) (*GetInvalidChoiceMessageOutput, error)

	// GetRollResultMessage returns the announcement for a roll
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetTurnPassedMessage returns the announcement for a change of player
	GetTurnPassedMessage(ctx context.Context, input *GetTurnPassedMessageInput) (*GetTurnPassedMessageOutput, error)

	// GetWinnerMessage returns the game over announcement
	GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error)

	// GetSessionTallyMessage returns the wins across rematches
	GetSessionTallyMessage(ctx context.Context, input *GetSessionTallyMessageInput) (*GetSessionTallyMessageOutput, error)

	// GetRematchPromptMessage returns the play again prompt
	GetRematchPromptMessage(ctx context.Context, input *GetRematchPromptMessageInput) (*GetRematchPromptMessageOutput, error)

	// GetTooFewPlayersMessage returns the guidance shown when fewer than 2 players are configured
	GetTooFewPlayersMessage(ctx context.Context, input *GetTooFewPlayersMessageInput) (*GetTooFewPlayersMessageOutput, error)
}
