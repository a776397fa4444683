package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/pig/internal/common/clock"
	"github.com/KirkDiggler/pig/internal/common/uuid"
	"github.com/KirkDiggler/pig/internal/config"
	"github.com/KirkDiggler/pig/internal/handlers/console"
	"github.com/KirkDiggler/pig/internal/logger"
	tallyRepo "github.com/KirkDiggler/pig/internal/repositories/tally"
	"github.com/KirkDiggler/pig/internal/services/game"
	"github.com/KirkDiggler/pig/internal/services/messaging"
	"github.com/KirkDiggler/pig/internal/services/session"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run wires the game together and returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 2
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Tone: messaging.MessageTone(cfg.Tone),
	})
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create messaging service: %v\n", err)
		return 2
	}

	cons, err := console.New(&console.Config{
		In:          stdin,
		Out:         stdout,
		Messaging:   messagingSvc,
		ClearScreen: cfg.ClearScreen,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create console: %v\n", err)
		return 1
	}

	// Validated once here; rematches reuse the same count
	if !cfg.HasEnoughPlayers() {
		msg, err := messagingSvc.GetTooFewPlayersMessage(ctx, &messaging.GetTooFewPlayersMessageInput{
			NumPlayers: cfg.NumPlayers,
		})
		if err == nil {
			err = cons.PrintMessage(msg.Message)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Failed to print message: %v\n", err)
			return 1
		}
		return 0
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	repo, closeRepo, err := newTallyRepo(cfg)
	if err != nil {
		log.Error("Failed to create tally repository", zap.Error(err))
		return 1
	}
	defer closeRepo()

	sessionSvc, err := session.New(&session.Config{
		NumPlayers:    cfg.NumPlayers,
		MaxScore:      game.DefaultMaxScore,
		Seed:          cfg.Seed,
		Port:          cons,
		TallyRepo:     repo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        log,
	})
	if err != nil {
		log.Error("Failed to create session", zap.Error(err))
		return 1
	}

	output, err := sessionSvc.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, console.ErrInputClosed), errors.Is(err, context.Canceled):
		log.Debug("input ended", zap.Error(err))
	default:
		log.Error("Game ended unexpectedly", zap.Error(err))
		return 1
	}

	log.Debug("session finished",
		zap.String("session_id", output.SessionID),
		zap.Int("games_played", output.GamesPlayed),
	)

	return 0
}

// newTallyRepo returns a Redis tally when an address is configured, otherwise
// an in-memory one
func newTallyRepo(cfg *config.Config) (tallyRepo.Repository, func(), error) {
	if cfg.RedisAddr == "" {
		return tallyRepo.NewMemory(), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		DialTimeout: 5 * time.Second,
	})

	repo, err := tallyRepo.NewRedis(&tallyRepo.RedisConfig{
		RedisClient: redisClient,
		TTL:         cfg.TallyTTL,
	})
	if err != nil {
		redisClient.Close()
		return nil, nil, err
	}

	return repo, func() { redisClient.Close() }, nil
}
