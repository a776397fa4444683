package tally

import (
	"errors"
	"sort"
	"time"

	"github.com/KirkDiggler/pig/internal/models"
)

var (
	// ErrInvalidInput is returned when a required field is missing
	ErrInvalidInput = errors.New("input and session ID cannot be empty")
)

// RecordWinInput contains parameters for recording a win
type RecordWinInput struct {
	SessionID  string
	PlayerName string
	Score      int
	WonAt      time.Time
}

// GetTallyInput contains parameters for reading a session tally
type GetTallyInput struct {
	SessionID string
}

// GetTallyOutput contains the session standings
type GetTallyOutput struct {
	// GamesPlayed is the number of wins recorded in the session
	GamesPlayed int

	// Entries are sorted by wins, then best score, then name
	Entries []*models.TallyEntry
}

// DeleteSessionInput contains parameters for deleting a session tally
type DeleteSessionInput struct {
	SessionID string
}

func applyWin(entry *models.TallyEntry, input *RecordWinInput) {
	entry.Wins++
	if input.Score > entry.BestScore {
		entry.BestScore = input.Score
	}
	if input.WonAt.After(entry.LastWonAt) {
		entry.LastWonAt = input.WonAt
	}
}

func sortEntries(entries []*models.TallyEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		if entries[i].BestScore != entries[j].BestScore {
			return entries[i].BestScore > entries[j].BestScore
		}
		return entries[i].PlayerName < entries[j].PlayerName
	})
}

func validRecordWin(input *RecordWinInput) bool {
	return input != nil && input.SessionID != "" && input.PlayerName != ""
}
