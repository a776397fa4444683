package models

import "fmt"

// Player represents a participant sharing the terminal
type Player struct {
	// Name is "Player N", assigned in creation order
	Name string

	// BankedScore is the total of every held running score
	BankedScore int

	// LastIntent is the most recent hold/roll answer
	LastIntent Intent
}

// NewPlayer creates the player at the given 1-based seat
func NewPlayer(seat int) *Player {
	return &Player{
		Name:       fmt.Sprintf("Player %d", seat),
		LastIntent: IntentUndecided,
	}
}

// Bank credits points to the player. Negative amounts are ignored so the
// banked score never decreases
func (p *Player) Bank(points int) {
	if points <= 0 {
		return
	}
	p.BankedScore += points
}

// HasWon reports whether the banked score reached the winning threshold
func (p *Player) HasWon(maxScore int) bool {
	return p.BankedScore >= maxScore
}
