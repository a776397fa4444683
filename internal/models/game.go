package models

// GameState represents where a game is in its turn cycle
type GameState string

const (
	// GameStateAwaitingDecision means the current player must choose hold or roll
	GameStateAwaitingDecision GameState = "awaiting_decision"

	// GameStateRolling means the die is being evaluated
	GameStateRolling GameState = "rolling"

	// GameStateTurnEnded means a hold is being settled
	GameStateTurnEnded GameState = "turn_ended"

	// GameStateGameOver is terminal
	GameStateGameOver GameState = "game_over"
)

// IsOver returns true if no more turns can be played
func (s GameState) IsOver() bool {
	return s == GameStateGameOver
}

// TurnEndReason explains why the turn moved to another player
type TurnEndReason string

const (
	// TurnEndReasonBust indicates the player rolled a 1
	TurnEndReasonBust TurnEndReason = "bust"

	// TurnEndReasonHold indicates the player banked their running score
	TurnEndReasonHold TurnEndReason = "hold"
)
