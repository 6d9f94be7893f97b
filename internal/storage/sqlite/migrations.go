package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Results and transactions reference players by value only: there is no foreign key
// to players because deleting a player must leave history untouched.
const schema = `
CREATE TABLE IF NOT EXISTS players (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS games (
    id TEXT PRIMARY KEY,
    date INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS game_results (
    game_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    player_id TEXT NOT NULL,
    buy_in INTEGER NOT NULL CHECK (buy_in >= 0),
    cash_out INTEGER NOT NULL CHECK (cash_out >= 0),
    net INTEGER NOT NULL CHECK (net = cash_out - buy_in),
    PRIMARY KEY (game_id, position),
    FOREIGN KEY (game_id) REFERENCES games(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    from_player_id TEXT NOT NULL,
    to_player_id TEXT NOT NULL,
    amount INTEGER NOT NULL CHECK (amount > 0),
    date INTEGER NOT NULL,
    CHECK (from_player_id <> to_player_id)
);

CREATE INDEX IF NOT EXISTS idx_game_results_game_id ON game_results(game_id);
CREATE INDEX IF NOT EXISTS idx_game_results_player_id ON game_results(player_id);
CREATE INDEX IF NOT EXISTS idx_games_date ON games(date);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
