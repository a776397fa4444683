package console

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/KirkDiggler/pig/internal/interaction"
	"github.com/KirkDiggler/pig/internal/services/messaging"
)

// ConsoleError is a custom error type for console errors
type ConsoleError string

// Error implements the error interface
func (e ConsoleError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    ConsoleError = "config cannot be nil"
	ErrNilReader    ConsoleError = "input reader cannot be nil"
	ErrNilWriter    ConsoleError = "output writer cannot be nil"
	ErrNilMessaging ConsoleError = "messaging service cannot be nil"
	ErrInputClosed  ConsoleError = "input closed"
)

const (
	// clearLines is how many blank lines push old output off the screen
	clearLines = 100

	// maxLineLength caps how much of an input line is kept, the rest is dropped
	maxLineLength = 1024
)

// Config holds the configuration for the console
type Config struct {
	// In is where answers are read from, usually os.Stdin
	In io.Reader

	// Out is where prompts and events are written, usually os.Stdout
	Out io.Writer

	// Messaging service
	Messaging messaging.Service

	// ClearScreen enables the blank-line screen clear
	ClearScreen bool
}

// lineResult is one line handed over by the reader goroutine
type lineResult struct {
	line string
	err  error
}

// Console is a line-based terminal implementation of interaction.Port.
// Input is read by a single goroutine so a blocked read can be abandoned when
// the context is cancelled without losing the line that eventually arrives
type Console struct {
	reader      *bufio.Reader
	lines       chan lineResult
	startReader sync.Once
	out         io.Writer
	messaging   messaging.Service
	clearScreen bool
}

var _ interaction.Port = (*Console)(nil)

// New creates a new console
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.In == nil {
		return nil, ErrNilReader
	}

	if cfg.Out == nil {
		return nil, ErrNilWriter
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	return &Console{
		reader:      bufio.NewReader(cfg.In),
		lines:       make(chan lineResult),
		out:         cfg.Out,
		messaging:   cfg.Messaging,
		clearScreen: cfg.ClearScreen,
	}, nil
}

// ChooseAction prompts for hold or roll and returns the raw answer
func (c *Console) ChooseAction(ctx context.Context, input *interaction.ChooseActionInput) (*interaction.ChooseActionOutput, error) {
	prompt, err := c.messaging.GetChoicePromptMessage(ctx, &messaging.GetChoicePromptMessageInput{
		PlayerName: input.PlayerName,
	})
	if err != nil {
		return nil, err
	}

	if err := c.print(prompt.Message); err != nil {
		return nil, err
	}

	line, err := c.readLine(ctx)
	if err != nil {
		return nil, err
	}

	return &interaction.ChooseActionOutput{
		Choice: line,
	}, nil
}

// InvalidChoice tells the player their answer was not understood
func (c *Console) InvalidChoice(ctx context.Context, input *interaction.InvalidChoiceInput) error {
	msg, err := c.messaging.GetInvalidChoiceMessage(ctx, &messaging.GetInvalidChoiceMessageInput{
		Choice: input.Choice,
	})
	if err != nil {
		return err
	}
	return c.println(msg.Message)
}

// ClearScreen pushes previous output off the screen
func (c *Console) ClearScreen(ctx context.Context) error {
	if !c.clearScreen {
		return nil
	}
	return c.print(strings.Repeat("\n", clearLines))
}

// ShowTurnStats shows the current player's scores
func (c *Console) ShowTurnStats(ctx context.Context, input *interaction.ShowTurnStatsInput) error {
	msg, err := c.messaging.GetTurnStatsMessage(ctx, &messaging.GetTurnStatsMessageInput{
		PlayerName:     input.PlayerName,
		BankedScore:    input.BankedScore,
		PotentialScore: input.PotentialScore,
		HighestScore:   input.HighestScore,
	})
	if err != nil {
		return err
	}
	return c.println(msg.Message)
}

// ShowScoreboard shows every player's banked score
func (c *Console) ShowScoreboard(ctx context.Context, input *interaction.ShowScoreboardInput) error {
	msg, err := c.messaging.GetScoreboardMessage(ctx, &messaging.GetScoreboardMessageInput{
		Entries: input.Entries,
	})
	if err != nil {
		return err
	}
	return c.println(msg.Message)
}

// ShowRoll announces the outcome of a roll
func (c *Console) ShowRoll(ctx context.Context, input *interaction.ShowRollInput) error {
	msg, err := c.messaging.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName:   input.PlayerName,
		RollValue:    input.Value,
		RunningScore: input.RunningScore,
		IsBust:       input.Bust,
	})
	if err != nil {
		return err
	}
	return c.println(msg.Message)
}

// ShowTurnPassed announces the next player
func (c *Console) ShowTurnPassed(ctx context.Context, input *interaction.ShowTurnPassedInput) error {
	msg, err := c.messaging.GetTurnPassedMessage(ctx, &messaging.GetTurnPassedMessageInput{
		FromPlayerName: input.FromPlayerName,
		ToPlayerName:   input.ToPlayerName,
		Reason:         input.Reason,
		Banked:         input.Banked,
	})
	if err != nil {
		return err
	}
	return c.println(msg.Message)
}

// ShowWinner announces the end of the game
func (c *Console) ShowWinner(ctx context.Context, input *interaction.ShowWinnerInput) error {
	msg, err := c.messaging.GetWinnerMessage(ctx, &messaging.GetWinnerMessageInput{
		PlayerName: input.PlayerName,
		Score:      input.Score,
	})
	if err != nil {
		return err
	}
	return c.println(msg.Message)
}

// ShowSessionTally shows wins across rematches
func (c *Console) ShowSessionTally(ctx context.Context, input *interaction.ShowSessionTallyInput) error {
	msg, err := c.messaging.GetSessionTallyMessage(ctx, &messaging.GetSessionTallyMessageInput{
		GamesPlayed: input.GamesPlayed,
		Entries:     input.Entries,
	})
	if err != nil {
		return err
	}
	return c.println(msg.Message)
}

// AskRematch asks whether to play again. Only "y" means yes; closed input means no
func (c *Console) AskRematch(ctx context.Context, input *interaction.AskRematchInput) (*interaction.AskRematchOutput, error) {
	prompt, err := c.messaging.GetRematchPromptMessage(ctx, &messaging.GetRematchPromptMessageInput{
		PlayerCount: input.PlayerCount,
	})
	if err != nil {
		return nil, err
	}

	if err := c.print(prompt.Message); err != nil {
		return nil, err
	}

	line, err := c.readLine(ctx)
	if errors.Is(err, ErrInputClosed) {
		return &interaction.AskRematchOutput{Rematch: false}, nil
	}
	if err != nil {
		return nil, err
	}

	return &interaction.AskRematchOutput{
		Rematch: strings.EqualFold(strings.TrimSpace(line), "y"),
	}, nil
}

// PrintMessage writes a standalone message, used before any game exists
func (c *Console) PrintMessage(message string) error {
	return c.println(message)
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.startReader.Do(func() {
		go c.readLoop()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result, ok := <-c.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return result.line, result.err
	}
}

// readLoop feeds lines to readLine until the input ends
func (c *Console) readLoop() {
	defer close(c.lines)

	for {
		line, err := readCapped(c.reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				// A last line without a newline still counts
				if line != "" {
					c.lines <- lineResult{line: line}
				}
				return
			}
			c.lines <- lineResult{err: fmt.Errorf("failed to read input: %w", err)}
			return
		}

		c.lines <- lineResult{line: line}
	}
}

// readCapped reads one line of any length, keeping at most maxLineLength bytes
// of it. The line ending is stripped
func readCapped(r *bufio.Reader) (string, error) {
	var line []byte
	for {
		chunk, err := r.ReadSlice('\n')
		if room := maxLineLength - len(line); room > 0 {
			line = append(line, chunk[:min(room, len(chunk))]...)
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		return string(bytes.TrimRight(line, "\r\n")), err
	}
}

func (c *Console) print(s string) error {
	if _, err := io.WriteString(c.out, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (c *Console) println(s string) error {
	return c.print(s + "\n")
}
