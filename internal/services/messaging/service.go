package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/KirkDiggler/pig/internal/models"
)

const statsRule = "*************************"

// ErrNilInput is returned when a message is requested without input
var ErrNilInput = errors.New("input cannot be nil")

// ErrInvalidTone is returned for an unknown tone
var ErrInvalidTone = errors.New("unknown message tone")

var bustQuips = []string{
	"Oink. That one hurt.",
	"The pig giveth and the pig taketh away.",
	"Greed is a terrible strategy. Or a great one. Not today though.",
	"Snake eye! Those points are bacon now.",
	"Should have held. Everyone says so.",
}

var winQuips = []string{
	"Bring home the bacon!",
	"Hog wild!",
	"That's one well-fed pig.",
	"When pigs fly, apparently.",
}

// service implements the Service interface
type service struct {
	tone MessageTone

	// Random number generator for selecting quips, separate from the die
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	tone := config.Tone
	if tone == "" {
		tone = ToneNeutral
	}
	if !tone.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTone, tone)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		tone: tone,
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetTurnStatsMessage returns the stats block shown before each decision
func (s *service) GetTurnStatsMessage(ctx context.Context, input *GetTurnStatsMessageInput) (*GetTurnStatsMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nCurrent Player: %s\n", input.PlayerName)
	b.WriteString(statsRule + "\n")
	b.WriteString("Current Stats:\n")
	fmt.Fprintf(&b, "\tCurrent Score: %d\n", input.BankedScore)
	fmt.Fprintf(&b, "\tPotential Score: %d\n", input.PotentialScore)
	fmt.Fprintf(&b, "\tHighest Score: %d\n", input.HighestScore)
	b.WriteString(statsRule)

	return &GetTurnStatsMessageOutput{
		Message: b.String(),
	}, nil
}

// GetScoreboardMessage returns every player's banked score
func (s *service) GetScoreboardMessage(ctx context.Context, input *GetScoreboardMessageInput) (*GetScoreboardMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	lines := make([]string, 0, len(input.Entries)+1)
	lines = append(lines, "Scoreboard:")
	for _, entry := range input.Entries {
		lines = append(lines, fmt.Sprintf("\t%s's Score: %d", entry.PlayerName, entry.BankedScore))
	}

	return &GetScoreboardMessageOutput{
		Message: strings.Join(lines, "\n"),
	}, nil
}

// GetChoicePromptMessage returns the hold or roll prompt
func (s *service) GetChoicePromptMessage(ctx context.Context, input *GetChoicePromptMessageInput) (*GetChoicePromptMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return &GetChoicePromptMessageOutput{
		Message: "\nDo you want to HOLD (\"h\") or ROLL (\"r\") the die?: ",
	}, nil
}

// GetInvalidChoiceMessage returns the reprompt text for a bad answer
func (s *service) GetInvalidChoiceMessage(ctx context.Context, input *GetInvalidChoiceMessageInput) (*GetInvalidChoiceMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return &GetInvalidChoiceMessageOutput{
		Message: "\n\tINVALID choice! Please enter \"h\" or \"r\".",
	}, nil
}

// GetRollResultMessage returns the announcement for a roll
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	message := fmt.Sprintf("\n\t** %s rolled a %d **", input.PlayerName, input.RollValue)
	if input.IsBust {
		message += s.quip(bustQuips)
	} else {
		message += fmt.Sprintf("\n\tHolding will add %d to your score.", input.RunningScore)
	}

	return &GetRollResultMessageOutput{
		Message: message,
	}, nil
}

// GetTurnPassedMessage returns the announcement for a change of player
func (s *service) GetTurnPassedMessage(ctx context.Context, input *GetTurnPassedMessageInput) (*GetTurnPassedMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var message string
	switch input.Reason {
	case models.TurnEndReasonBust:
		message = fmt.Sprintf("\tRolling a \"1\" ends your turn. It's now %s's turn", input.ToPlayerName)
	case models.TurnEndReasonHold:
		message = fmt.Sprintf("\n\t%s banked %d. It's now %s's turn", input.FromPlayerName, input.Banked, input.ToPlayerName)
	default:
		message = fmt.Sprintf("\tIt's now %s's turn", input.ToPlayerName)
	}

	return &GetTurnPassedMessageOutput{
		Message: message,
	}, nil
}

// GetWinnerMessage returns the game over announcement
func (s *service) GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	message := fmt.Sprintf("\n\tGAME OVER, %s WINS with %d points!", input.PlayerName, input.Score)
	message += s.quip(winQuips)

	return &GetWinnerMessageOutput{
		Message: message + "\n",
	}, nil
}

// GetSessionTallyMessage returns the wins across rematches
func (s *service) GetSessionTallyMessage(ctx context.Context, input *GetSessionTallyMessageInput) (*GetSessionTallyMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	lines := make([]string, 0, len(input.Entries)+1)
	lines = append(lines, fmt.Sprintf("Session wins after %d %s:", input.GamesPlayed, plural(input.GamesPlayed, "game", "games")))
	for _, entry := range input.Entries {
		lines = append(lines, fmt.Sprintf("\t%s: %d %s (best %d)",
			entry.PlayerName, entry.Wins, plural(entry.Wins, "win", "wins"), entry.BestScore))
	}

	return &GetSessionTallyMessageOutput{
		Message: strings.Join(lines, "\n"),
	}, nil
}

// GetRematchPromptMessage returns the play again prompt
func (s *service) GetRematchPromptMessage(ctx context.Context, input *GetRematchPromptMessageInput) (*GetRematchPromptMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return &GetRematchPromptMessageOutput{
		Message: "\nWould you like to play again with same number of players?\nEnter \"Y\", or else the game will exit: ",
	}, nil
}

// GetTooFewPlayersMessage returns the guidance shown when fewer than 2 players are configured
func (s *service) GetTooFewPlayersMessage(ctx context.Context, input *GetTooFewPlayersMessageInput) (*GetTooFewPlayersMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return &GetTooFewPlayersMessageOutput{
		Message: "\n\tPlaying Pig is more fun when you have 2 or more players.\n" +
			"\tPlease play again when you have at least 2 players.\n",
	}, nil
}

// quip returns a random line on its own row, or nothing in the neutral tone
func (s *service) quip(lines []string) string {
	if s.tone != ToneFunny || len(lines) == 0 {
		return ""
	}
	return "\n\t" + lines[s.rand.Intn(len(lines))]
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
