package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/pokerledger/internal/models"
)

// CreateTransaction persists a new transaction to the database.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	// Generate ID if not set
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Date == 0 {
		t.Date = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, from_player_id, to_player_id, amount, date)
		 VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.FromPlayerID, t.ToPlayerID, t.Amount, t.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// ListTransactions retrieves all transactions in the order they were recorded.
func (s *SQLiteStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, from_player_id, to_player_id, amount, date
		 FROM transactions ORDER BY date, rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.FromPlayerID, &t.ToPlayerID, &t.Amount, &t.Date); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.deleteByID(ctx, "transactions", "transaction", transactionID)
}
