package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/pokerledger/internal/models"
)

// CreatePlayer inserts a new player into the database.
func (s *SQLiteStore) CreatePlayer(ctx context.Context, player *models.Player) error {
	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	if player.CreatedAt == 0 {
		player.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO players (id, name, created_at) VALUES (?, ?, ?)",
		player.ID, player.Name, player.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}

	return nil
}

// ListPlayers retrieves all players in the order they were added.
func (s *SQLiteStore) ListPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM players ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}

	return players, nil
}

// DeletePlayer removes a player by ID. Sessions and transactions are kept.
func (s *SQLiteStore) DeletePlayer(ctx context.Context, playerID string) error {
	return s.deleteByID(ctx, "players", "player", playerID)
}
