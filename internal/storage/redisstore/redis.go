// Package redisstore provides a Redis-backed implementation of the storage.Store interface.
//
// Each record is stored as JSON under its own key. Creation order is kept in one
// list per collection, so listing is an LRANGE followed by a pipelined GET.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mmynk/pokerledger/internal/models"
	"github.com/mmynk/pokerledger/internal/storage"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix      = "player:"
	gameKeyPrefix        = "game:"
	transactionKeyPrefix = "transaction:"

	// Lists holding record IDs in creation order
	playersKey      = "players"
	gamesKey        = "games"
	transactionsKey = "transactions"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Config holds configuration for the Redis store
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// Store implements storage.Store using Redis
type Store struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed store
func NewRedis(ctx context.Context, cfg *Config) (*Store, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Store{
		client: cfg.RedisClient,
	}, nil
}

// Close closes the underlying Redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

// CreatePlayer persists a player and appends it to the player list
func (s *Store) CreatePlayer(ctx context.Context, player *models.Player) error {
	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	if player.CreatedAt == 0 {
		player.CreatedAt = time.Now().Unix()
	}
	if err := s.create(ctx, playerKeyPrefix, playersKey, player.ID, player, false); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

// ListPlayers retrieves all players in creation order
func (s *Store) ListPlayers(ctx context.Context) ([]models.Player, error) {
	players := []models.Player{}
	err := list(ctx, s.client, playerKeyPrefix, playersKey, func(p models.Player) {
		players = append(players, p)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// DeletePlayer removes a player; sessions and transactions are kept
func (s *Store) DeletePlayer(ctx context.Context, playerID string) error {
	return s.delete(ctx, playerKeyPrefix, playersKey, "player", playerID)
}

// CreateGame persists a session. Sessions are listed newest first, so the ID is
// pushed to the head of the list.
func (s *Store) CreateGame(ctx context.Context, game *models.GameSession) error {
	if game.ID == "" {
		game.ID = uuid.New().String()
	}
	if game.Date == 0 {
		game.Date = time.Now().Unix()
	}
	if err := s.create(ctx, gameKeyPrefix, gamesKey, game.ID, game, true); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// ListGames retrieves all sessions, newest first
func (s *Store) ListGames(ctx context.Context) ([]models.GameSession, error) {
	games := []models.GameSession{}
	err := list(ctx, s.client, gameKeyPrefix, gamesKey, func(g models.GameSession) {
		games = append(games, g)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// DeleteGame removes a session
func (s *Store) DeleteGame(ctx context.Context, gameID string) error {
	return s.delete(ctx, gameKeyPrefix, gamesKey, "game", gameID)
}

// CreateTransaction persists a transaction and appends it to the transaction list
func (s *Store) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Date == 0 {
		t.Date = time.Now().Unix()
	}
	if err := s.create(ctx, transactionKeyPrefix, transactionsKey, t.ID, t, false); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// ListTransactions retrieves all transactions in the order they were recorded
func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	err := list(ctx, s.client, transactionKeyPrefix, transactionsKey, func(t models.Transaction) {
		transactions = append(transactions, t)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// DeleteTransaction removes a transaction
func (s *Store) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.delete(ctx, transactionKeyPrefix, transactionsKey, "transaction", transactionID)
}

// create writes the record and its list entry in one MULTI/EXEC.
func (s *Store) create(ctx context.Context, prefix, listKey, id string, record any, prepend bool) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, prefix+id, data, 0) // No expiration
	if prepend {
		pipe.LPush(ctx, listKey, id)
	} else {
		pipe.RPush(ctx, listKey, id)
	}

	_, err = pipe.Exec(ctx)
	return err
}

// delete removes the record and its list entry, reporting ErrNotFound when the
// record key does not exist.
func (s *Store) delete(ctx context.Context, prefix, listKey, kind, id string) error {
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, prefix+id)
	pipe.LRem(ctx, listKey, 0, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}

// list reads every ID in listKey and decodes the matching records in list order.
// IDs whose record has vanished are skipped.
func list[T any](ctx context.Context, client *redis.Client, prefix, listKey string, add func(T)) error {
	ids, err := client.LRange(ctx, listKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get IDs: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	// Get all records in one round trip using a pipeline
	pipe := client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, prefix+id)
	}

	// redis.Nil from a vanished record is reported per command
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to get records: %w", err)
	}

	for i, cmd := range cmds {
		data, err := cmd.Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return fmt.Errorf("failed to get record %s: %w", ids[i], err)
		}

		var record T
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to unmarshal record %s: %w", ids[i], err)
		}
		add(record)
	}

	return nil
}
