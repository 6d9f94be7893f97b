package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/pokerledger/internal/models"
)

// CreateGame persists a new session and its results in one transaction.
func (s *SQLiteStore) CreateGame(ctx context.Context, game *models.GameSession) error {
	if game.ID == "" {
		game.ID = uuid.New().String()
	}
	if game.Date == 0 {
		game.Date = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO games (id, date) VALUES (?, ?)",
		game.ID, game.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}

	for i, r := range game.Results {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO game_results (game_id, position, player_id, buy_in, cash_out, net)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			game.ID, i, r.PlayerID, r.BuyIn, r.CashOut, r.Net,
		)
		if err != nil {
			return fmt.Errorf("failed to insert game result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListGames retrieves all sessions with their results, newest first.
func (s *SQLiteStore) ListGames(ctx context.Context) ([]models.GameSession, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, date FROM games ORDER BY date DESC, rowid DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	games := []models.GameSession{}
	byID := make(map[string]int)
	for rows.Next() {
		var g models.GameSession
		if err := rows.Scan(&g.ID, &g.Date); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		byID[g.ID] = len(games)
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}

	resultRows, err := s.db.QueryContext(ctx,
		"SELECT game_id, player_id, buy_in, cash_out, net FROM game_results ORDER BY game_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get game results: %w", err)
	}
	defer resultRows.Close()

	for resultRows.Next() {
		var gameID string
		var r models.PlayerGameResult
		if err := resultRows.Scan(&gameID, &r.PlayerID, &r.BuyIn, &r.CashOut, &r.Net); err != nil {
			return nil, fmt.Errorf("failed to scan game result: %w", err)
		}
		if i, ok := byID[gameID]; ok {
			games[i].Results = append(games[i].Results, r)
		}
	}
	if err := resultRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game results: %w", err)
	}

	return games, nil
}

// DeleteGame removes a session by ID. Its results are removed by cascade.
func (s *SQLiteStore) DeleteGame(ctx context.Context, gameID string) error {
	return s.deleteByID(ctx, "games", "game", gameID)
}
