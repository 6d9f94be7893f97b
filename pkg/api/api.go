// Package api defines the request and response messages of the LedgerService.
//
// Messages travel as JSON (see apiconnect.Codec). Field names on the wire are
// snake_case and amounts are whole currency units.
package api

// Player is a participant known to the ledger.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// PlayerResult is one player's outcome in a game.
type PlayerResult struct {
	PlayerID string `json:"player_id"`
	BuyIn    int64  `json:"buy_in"`
	CashOut  int64  `json:"cash_out"`
	Net      int64  `json:"net"`
}

// Game is a recorded session.
type Game struct {
	ID      string          `json:"id"`
	Date    int64           `json:"date"`
	Results []*PlayerResult `json:"results"`
}

// Transaction is a direct payment from one player to another.
type Transaction struct {
	ID           string `json:"id"`
	FromPlayerID string `json:"from_player_id"`
	ToPlayerID   string `json:"to_player_id"`
	Amount       int64  `json:"amount"`
	Date         int64  `json:"date"`
}

// PlayerStat is one row of the standings.
type PlayerStat struct {
	PlayerID    string `json:"player_id"`
	Name        string `json:"name"`
	Net         int64  `json:"net"`
	GamesPlayed int32  `json:"games_played"`
	Wins        int32  `json:"wins"`
	WinRate     int32  `json:"win_rate"`
}

// IntegrityWarning reports a record that references a deleted player.
type IntegrityWarning struct {
	Kind     string `json:"kind"`
	RecordID string `json:"record_id"`
	PlayerID string `json:"player_id"`
}

// Debt is a suggested payment.
type Debt struct {
	FromPlayerID string `json:"from_player_id"`
	FromName     string `json:"from_name"`
	ToPlayerID   string `json:"to_player_id"`
	ToName       string `json:"to_name"`
	Amount       int64  `json:"amount"`
}

type CreatePlayerRequest struct {
	Name string `json:"name"`
}

type CreatePlayerResponse struct {
	Player *Player `json:"player"`
}

type ListPlayersRequest struct{}

type ListPlayersResponse struct {
	Players []*Player `json:"players"`
}

type DeletePlayerRequest struct {
	PlayerID string `json:"player_id"`
}

type DeletePlayerResponse struct{}

// ResultInput is one row of a game being entered. Net is derived server side.
type ResultInput struct {
	PlayerID string `json:"player_id"`
	BuyIn    int64  `json:"buy_in"`
	CashOut  int64  `json:"cash_out"`
}

type CheckSessionBalanceRequest struct {
	Results []*ResultInput `json:"results"`
}

// CheckSessionBalanceResponse previews whether a game could be saved.
// Diff is total cash-out minus total buy-in.
type CheckSessionBalanceResponse struct {
	TotalBuyIn   int64 `json:"total_buy_in"`
	TotalCashOut int64 `json:"total_cash_out"`
	Diff         int64 `json:"diff"`
	Balanced     bool  `json:"balanced"`
}

type RecordGameRequest struct {
	Results []*ResultInput `json:"results"`
}

type RecordGameResponse struct {
	Game *Game `json:"game"`
}

type ListGamesRequest struct{}

type ListGamesResponse struct {
	Games []*Game `json:"games"`
}

type DeleteGameRequest struct {
	GameID string `json:"game_id"`
}

type DeleteGameResponse struct{}

type RecordTransactionRequest struct {
	FromPlayerID string `json:"from_player_id"`
	ToPlayerID   string `json:"to_player_id"`
	Amount       int64  `json:"amount"`
}

type RecordTransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
}

type ListTransactionsRequest struct{}

type ListTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type DeleteTransactionRequest struct {
	TransactionID string `json:"transaction_id"`
}

type DeleteTransactionResponse struct{}

type GetStandingsRequest struct{}

// GetStandingsResponse carries the ranked standings and dashboard totals.
// Best and Worst are omitted when there are no players.
type GetStandingsResponse struct {
	Standings       []*PlayerStat       `json:"standings"`
	Best            *PlayerStat         `json:"best,omitempty"`
	Worst           *PlayerStat         `json:"worst,omitempty"`
	TotalMoneyMoved int64               `json:"total_money_moved"`
	GameCount       int32               `json:"game_count"`
	Warnings        []*IntegrityWarning `json:"warnings,omitempty"`
}

type SuggestSettlementsRequest struct{}

type SuggestSettlementsResponse struct {
	Debts []*Debt `json:"debts"`
}
