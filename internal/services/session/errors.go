package session

// SessionError is a custom error type for session errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        SessionError = "config cannot be nil"
	ErrTooFewPlayers    SessionError = "pig needs at least 2 players"
	ErrNilPort          SessionError = "interaction port cannot be nil"
	ErrNilTallyRepo     SessionError = "tally repository cannot be nil"
	ErrNilClock         SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator SessionError = "UUID generator cannot be nil"
)
