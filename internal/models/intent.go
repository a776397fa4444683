package models

import (
	"errors"
	"strings"
)

// Intent is what a player declared they want to do with their turn
type Intent string

const (
	// IntentUndecided is the intent of a player who has not been asked yet
	IntentUndecided Intent = "undecided"

	// IntentHold banks the running score and ends the turn
	IntentHold Intent = "hold"

	// IntentRoll rolls the die again
	IntentRoll Intent = "roll"
)

// ErrInvalidIntent is returned when an answer is neither hold nor roll
var ErrInvalidIntent = errors.New("invalid choice, expected h or r")

// ParseIntent converts a typed answer into an Intent.
// Only "h" and "r" are accepted, case-insensitive
func ParseIntent(choice string) (Intent, error) {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "h":
		return IntentHold, nil
	case "r":
		return IntentRoll, nil
	default:
		return IntentUndecided, ErrInvalidIntent
	}
}
