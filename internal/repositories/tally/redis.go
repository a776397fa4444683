package tally

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/pig/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	tallyKeyPrefix = "tally:"

	// DefaultTTL bounds how long an abandoned session lingers
	DefaultTTL = time.Hour
)

// RedisConfig holds configuration for the Redis tally repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// TTL applied to every session key, defaults to DefaultTTL
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed tally repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

func playersKey(sessionID string) string {
	return fmt.Sprintf("%s%s:players", tallyKeyPrefix, sessionID)
}

func gamesKey(sessionID string) string {
	return fmt.Sprintf("%s%s:games", tallyKeyPrefix, sessionID)
}

// RecordWin credits a game win to a player
func (r *redisRepository) RecordWin(ctx context.Context, input *RecordWinInput) error {
	if !validRecordWin(input) {
		return ErrInvalidInput
	}

	pKey := playersKey(input.SessionID)

	entry := &models.TallyEntry{PlayerName: input.PlayerName}
	entryJSON, err := r.client.HGet(ctx, pKey, input.PlayerName).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return fmt.Errorf("failed to get tally entry: %w", err)
	default:
		if err := json.Unmarshal([]byte(entryJSON), entry); err != nil {
			return fmt.Errorf("failed to unmarshal tally entry: %w", err)
		}
	}

	applyWin(entry, input)

	updated, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal tally entry: %w", err)
	}

	gKey := gamesKey(input.SessionID)

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, pKey, input.PlayerName, updated)
	pipe.Incr(ctx, gKey)
	pipe.Expire(ctx, pKey, r.ttl)
	pipe.Expire(ctx, gKey, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}

	return nil
}

// GetTally returns the session standings
func (r *redisRepository) GetTally(ctx context.Context, input *GetTallyInput) (*GetTallyOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	raw, err := r.client.HGetAll(ctx, playersKey(input.SessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	entries := make([]*models.TallyEntry, 0, len(raw))
	for _, entryJSON := range raw {
		var entry models.TallyEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tally entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	sortEntries(entries)

	games, err := r.client.Get(ctx, gamesKey(input.SessionID)).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get games played: %w", err)
	}

	return &GetTallyOutput{
		GamesPlayed: games,
		Entries:     entries,
	}, nil
}

// DeleteSession drops everything recorded for a session
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return ErrInvalidInput
	}

	if err := r.client.Del(ctx, playersKey(input.SessionID), gamesKey(input.SessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session tally: %w", err)
	}

	return nil
}
