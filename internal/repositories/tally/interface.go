package tally

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pig/internal/repositories/tally Repository

import (
	"context"
)

// Repository keeps the win tally for one run of the program
type Repository interface {
	// RecordWin credits a game win to a player
	RecordWin(ctx context.Context, input *RecordWinInput) error

	// GetTally returns the session standings, most wins first
	GetTally(ctx context.Context, input *GetTallyInput) (*GetTallyOutput, error)

	// DeleteSession drops everything recorded for a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
