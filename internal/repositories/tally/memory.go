package tally

import (
	"context"

	"github.com/KirkDiggler/pig/internal/models"
)

type memorySession struct {
	gamesPlayed int
	entries     map[string]*models.TallyEntry
}

// memoryRepository keeps tallies in process memory. It is not safe for
// concurrent use
type memoryRepository struct {
	sessions map[string]*memorySession
}

// NewMemory creates an in-memory tally repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*memorySession),
	}
}

// RecordWin credits a game win to a player
func (r *memoryRepository) RecordWin(ctx context.Context, input *RecordWinInput) error {
	if !validRecordWin(input) {
		return ErrInvalidInput
	}

	session, ok := r.sessions[input.SessionID]
	if !ok {
		session = &memorySession{entries: make(map[string]*models.TallyEntry)}
		r.sessions[input.SessionID] = session
	}

	entry, ok := session.entries[input.PlayerName]
	if !ok {
		entry = &models.TallyEntry{PlayerName: input.PlayerName}
		session.entries[input.PlayerName] = entry
	}

	applyWin(entry, input)
	session.gamesPlayed++

	return nil
}

// GetTally returns copies of the session standings
func (r *memoryRepository) GetTally(ctx context.Context, input *GetTallyInput) (*GetTallyOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	session, ok := r.sessions[input.SessionID]
	if !ok {
		return &GetTallyOutput{Entries: []*models.TallyEntry{}}, nil
	}

	entries := make([]*models.TallyEntry, 0, len(session.entries))
	for _, entry := range session.entries {
		copied := *entry
		entries = append(entries, &copied)
	}
	sortEntries(entries)

	return &GetTallyOutput{
		GamesPlayed: session.gamesPlayed,
		Entries:     entries,
	}, nil
}

// DeleteSession drops everything recorded for a session
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return ErrInvalidInput
	}

	delete(r.sessions, input.SessionID)
	return nil
}
