// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/pokerledger/internal/models"
)

// ErrNotFound is returned (wrapped with the record kind and ID) when a record does not exist.
var ErrNotFound = errors.New("not found")

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/mmynk/pokerledger/internal/storage Store

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, Redis, etc.)
// without changing the service layer.
//
// Stores only persist what they are given: validation happens before a record
// reaches the store, and deleting a player never touches sessions or transactions.
type Store interface {
	// CreatePlayer persists a new player.
	// Empty ID and CreatedAt fields are populated by the store.
	CreatePlayer(ctx context.Context, player *models.Player) error

	// ListPlayers returns all players in creation order.
	ListPlayers(ctx context.Context) ([]models.Player, error)

	// DeletePlayer removes a player by ID.
	// Returns an error wrapping ErrNotFound if the player does not exist.
	DeletePlayer(ctx context.Context, playerID string) error

	// CreateGame persists a new session with all of its results.
	// Empty ID and Date fields are populated by the store.
	CreateGame(ctx context.Context, game *models.GameSession) error

	// ListGames returns all sessions, newest first.
	ListGames(ctx context.Context) ([]models.GameSession, error)

	// DeleteGame removes a session and its results by ID.
	// Returns an error wrapping ErrNotFound if the session does not exist.
	DeleteGame(ctx context.Context, gameID string) error

	// CreateTransaction persists a new transaction.
	// Empty ID and Date fields are populated by the store.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	// ListTransactions returns all transactions in the order they were recorded.
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	// DeleteTransaction removes a transaction by ID.
	// Returns an error wrapping ErrNotFound if the transaction does not exist.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// Close releases any resources held by the store.
	Close() error
}

// Snapshot is the full ledger state at one point in time.
type Snapshot struct {
	Players      []models.Player
	Games        []models.GameSession
	Transactions []models.Transaction
}

// LoadSnapshot reads players, games and transactions from the store.
func LoadSnapshot(ctx context.Context, store Store) (*Snapshot, error) {
	players, err := store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	games, err := store.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := store.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Players: players, Games: games, Transactions: transactions}, nil
}
