package game

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/pig/internal/dice"
	"github.com/KirkDiggler/pig/internal/interaction"
	"github.com/KirkDiggler/pig/internal/models"
	"go.uber.org/zap"
)

// Game is a single game of Pig. It owns its players and die and is not safe
// for concurrent use
type Game struct {
	players      []*models.Player
	current      int
	runningScore int
	highestScore int
	maxScore     int
	state        models.GameState
	winner       *models.Player
	turns        int

	// rolls is the replay record, the same seed and answers reproduce it
	rolls []models.Roll

	diceRoller dice.Roller
	port       interaction.Port
	logger     *zap.Logger
}

// New creates a new game with every player at zero and Player 1 to act
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.NumPlayers < MinPlayers {
		return nil, ErrTooFewPlayers
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	maxScore := cfg.MaxScore
	if maxScore == 0 {
		maxScore = DefaultMaxScore
	}
	if maxScore < 0 {
		return nil, ErrInvalidMaxScore
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	players := make([]*models.Player, 0, cfg.NumPlayers)
	for seat := 1; seat <= cfg.NumPlayers; seat++ {
		players = append(players, models.NewPlayer(seat))
	}

	return &Game{
		players:    players,
		maxScore:   maxScore,
		state:      models.GameStateAwaitingDecision,
		diceRoller: cfg.DiceRoller,
		port:       cfg.Port,
		logger:     logger,
	}, nil
}

// Roll rolls the die for the current player. A 1 busts the turn and passes it
// on; anything else is added to the running score and the same player goes again
func (g *Game) Roll() (*RollOutput, error) {
	if err := g.checkAwaitingDecision(); err != nil {
		return nil, err
	}

	player := g.players[g.current]
	player.LastIntent = models.IntentRoll
	g.state = models.GameStateRolling

	value := g.diceRoller.Roll()
	bust := value == models.BustValue

	if bust {
		g.runningScore = 0
	} else {
		g.runningScore += value
	}

	g.rolls = append(g.rolls, models.Roll{
		PlayerName:   player.Name,
		Value:        value,
		RunningScore: g.runningScore,
	})

	if bust {
		g.endTurn()
		g.logger.Debug("player busted",
			zap.String("player", player.Name),
			zap.String("next_player", g.players[g.current].Name),
		)
	} else {
		g.logger.Debug("player rolled",
			zap.String("player", player.Name),
			zap.Int("value", value),
			zap.Int("running_score", g.runningScore),
		)
	}

	g.state = models.GameStateAwaitingDecision

	return &RollOutput{
		PlayerName:        player.Name,
		Value:             value,
		Bust:              bust,
		RunningScore:      g.runningScore,
		CurrentPlayerName: g.players[g.current].Name,
		State:             g.state,
	}, nil
}

// Hold banks the running score for the current player. The win check happens
// here and only here
func (g *Game) Hold() (*HoldOutput, error) {
	if err := g.checkAwaitingDecision(); err != nil {
		return nil, err
	}

	player := g.players[g.current]
	player.LastIntent = models.IntentHold
	g.state = models.GameStateTurnEnded

	banked := g.runningScore
	player.Bank(banked)
	g.runningScore = 0

	if player.BankedScore > g.highestScore {
		g.highestScore = player.BankedScore
	}

	g.logger.Debug("player held",
		zap.String("player", player.Name),
		zap.Int("banked", banked),
		zap.Int("banked_score", player.BankedScore),
	)

	won := player.HasWon(g.maxScore)
	if won {
		g.turns++
		g.winner = player
		g.state = models.GameStateGameOver
		g.logger.Info("player won",
			zap.String("player", player.Name),
			zap.Int("score", player.BankedScore),
		)
	} else {
		g.endTurn()
		g.state = models.GameStateAwaitingDecision
	}

	return &HoldOutput{
		PlayerName:        player.Name,
		Banked:            banked,
		BankedScore:       player.BankedScore,
		HighestScore:      g.highestScore,
		Won:               won,
		CurrentPlayerName: g.players[g.current].Name,
		State:             g.state,
	}, nil
}

// Play runs the game to completion through the interaction port
func (g *Game) Play(ctx context.Context) (*PlayOutput, error) {
	if g.port == nil {
		return nil, ErrNilPort
	}

	for !g.state.IsOver() {
		player := g.players[g.current]

		if err := g.showTurn(ctx, player); err != nil {
			return nil, err
		}

		intent, err := decide(ctx, g.port, player)
		if err != nil {
			return nil, fmt.Errorf("failed to get decision for %s: %w", player.Name, err)
		}

		if err := g.port.ClearScreen(ctx); err != nil {
			return nil, err
		}

		switch intent {
		case models.IntentRoll:
			err = g.playRoll(ctx)
		case models.IntentHold:
			err = g.playHold(ctx)
		default:
			err = ErrInvalidGameState
		}
		if err != nil {
			return nil, err
		}
	}

	return &PlayOutput{
		Winner: *g.winner,
		Rolls:  g.Rolls(),
		Turns:  g.turns,
	}, nil
}

func (g *Game) showTurn(ctx context.Context, player *models.Player) error {
	if err := g.port.ShowTurnStats(ctx, &interaction.ShowTurnStatsInput{
		PlayerName:     player.Name,
		BankedScore:    player.BankedScore,
		PotentialScore: player.BankedScore + g.runningScore,
		HighestScore:   g.highestScore,
	}); err != nil {
		return err
	}

	return g.port.ShowScoreboard(ctx, &interaction.ShowScoreboardInput{
		Entries: g.Scoreboard(),
	})
}

func (g *Game) playRoll(ctx context.Context) error {
	output, err := g.Roll()
	if err != nil {
		return err
	}

	if err := g.port.ShowRoll(ctx, &interaction.ShowRollInput{
		PlayerName:   output.PlayerName,
		Value:        output.Value,
		RunningScore: output.RunningScore,
		Bust:         output.Bust,
	}); err != nil {
		return err
	}

	if !output.Bust {
		return nil
	}

	return g.port.ShowTurnPassed(ctx, &interaction.ShowTurnPassedInput{
		FromPlayerName: output.PlayerName,
		ToPlayerName:   output.CurrentPlayerName,
		Reason:         models.TurnEndReasonBust,
	})
}

func (g *Game) playHold(ctx context.Context) error {
	output, err := g.Hold()
	if err != nil {
		return err
	}

	if output.Won {
		return g.port.ShowWinner(ctx, &interaction.ShowWinnerInput{
			PlayerName: output.PlayerName,
			Score:      output.BankedScore,
		})
	}

	return g.port.ShowTurnPassed(ctx, &interaction.ShowTurnPassedInput{
		FromPlayerName: output.PlayerName,
		ToPlayerName:   output.CurrentPlayerName,
		Reason:         models.TurnEndReasonHold,
		Banked:         output.Banked,
	})
}

func (g *Game) checkAwaitingDecision() error {
	if g.state.IsOver() {
		return ErrGameOver
	}
	if g.state != models.GameStateAwaitingDecision {
		return ErrInvalidGameState
	}
	return nil
}

// endTurn zeroes the running score and moves to the next seat, wrapping around
func (g *Game) endTurn() {
	g.runningScore = 0
	g.turns++
	g.current = (g.current + 1) % len(g.players)
}

// State returns where the game is in its turn cycle
func (g *Game) State() models.GameState {
	return g.state
}

// CurrentPlayerIndex returns the zero-based seat of the player to act
func (g *Game) CurrentPlayerIndex() int {
	return g.current
}

// CurrentPlayer returns a copy of the player to act
func (g *Game) CurrentPlayer() models.Player {
	return *g.players[g.current]
}

// RunningScore returns the points at stake in the current turn
func (g *Game) RunningScore() int {
	return g.runningScore
}

// HighestScore returns the best banked score seen so far
func (g *Game) HighestScore() int {
	return g.highestScore
}

// MaxScore returns the winning threshold
func (g *Game) MaxScore() int {
	return g.maxScore
}

// Players returns copies of every player in seat order
func (g *Game) Players() []models.Player {
	players := make([]models.Player, 0, len(g.players))
	for _, p := range g.players {
		players = append(players, *p)
	}
	return players
}

// Winner returns the winner once the game is over
func (g *Game) Winner() (models.Player, bool) {
	if g.winner == nil {
		return models.Player{}, false
	}
	return *g.winner, true
}

// Rolls returns a copy of the replay record, every roll made so far in order
func (g *Game) Rolls() []models.Roll {
	rolls := make([]models.Roll, len(g.rolls))
	copy(rolls, g.rolls)
	return rolls
}

// Scoreboard returns each player's banked score in seat order
func (g *Game) Scoreboard() []models.ScoreboardEntry {
	entries := make([]models.ScoreboardEntry, 0, len(g.players))
	for _, p := range g.players {
		entries = append(entries, models.ScoreboardEntry{
			PlayerName:  p.Name,
			BankedScore: p.BankedScore,
		})
	}
	return entries
}
