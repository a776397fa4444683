package interaction

//go:generate mockgen -package=mocks -destination=mocks/mock_port.go github.com/KirkDiggler/pig/internal/interaction Port

import "context"

// Chooser asks the current player what they want to do
type Chooser interface {
	// ChooseAction prompts for hold or roll and returns the raw answer
	ChooseAction(ctx context.Context, input *ChooseActionInput) (*ChooseActionOutput, error)

	// InvalidChoice tells the player their answer was not understood
	InvalidChoice(ctx context.Context, input *InvalidChoiceInput) error
}

// Display receives one-way game events
type Display interface {
	// ClearScreen wipes previous output before a new decision
	ClearScreen(ctx context.Context) error

	// ShowTurnStats shows the current player's scores
	ShowTurnStats(ctx context.Context, input *ShowTurnStatsInput) error

	// ShowScoreboard shows every player's banked score
	ShowScoreboard(ctx context.Context, input *ShowScoreboardInput) error

	// ShowRoll announces the outcome of a roll
	ShowRoll(ctx context.Context, input *ShowRollInput) error

	// ShowTurnPassed announces the next player after a bust or hold
	ShowTurnPassed(ctx context.Context, input *ShowTurnPassedInput) error

	// ShowWinner announces the end of the game
	ShowWinner(ctx context.Context, input *ShowWinnerInput) error

	// ShowSessionTally shows wins across rematches
	ShowSessionTally(ctx context.Context, input *ShowSessionTallyInput) error
}

// Rematcher asks whether to start a fresh game
type Rematcher interface {
	// AskRematch returns true if the players want another game
	AskRematch(ctx context.Context, input *AskRematchInput) (*AskRematchOutput, error)
}

// Port is everything the game needs from the outside world
type Port interface {
	Chooser
	Display
	Rematcher
}
