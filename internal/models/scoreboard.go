package models

import "time"

// ScoreboardEntry is one line of the in-game scoreboard
type ScoreboardEntry struct {
	PlayerName  string
	BankedScore int
}

// TallyEntry counts the games a player has won across rematches
type TallyEntry struct {
	// PlayerName is the seat name, stable across rematches
	PlayerName string

	// Wins is the number of games won in this session
	Wins int

	// BestScore is the highest winning score in this session
	BestScore int

	// LastWonAt is when the player last won
	LastWonAt time.Time
}
