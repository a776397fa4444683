package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilDiceRoller    GameError = "dice roller cannot be nil"
	ErrNilPort          GameError = "interaction port cannot be nil"
	ErrTooFewPlayers    GameError = "pig needs at least 2 players"
	ErrInvalidMaxScore  GameError = "max score must be positive"
	ErrGameOver         GameError = "game is over"
	ErrInvalidGameState GameError = "invalid game state"
)
