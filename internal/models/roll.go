package models

// BustValue is the die face that ends a turn and forfeits the running score
const BustValue = 1

// Roll records a single throw of the die in a game
type Roll struct {
	// PlayerName is the player who rolled
	PlayerName string

	// Value is the face that came up
	Value int

	// RunningScore is the turn total after this roll
	RunningScore int
}

// IsBust returns true if the roll ended the turn
func (r Roll) IsBust() bool {
	return r.Value == BustValue
}
