package models

// GameSession represents one played session.
// A session is a self-contained settlement event: the buy-ins of all results sum
// to the cash-outs of all results. This is enforced when the session is created.
type GameSession struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// Date is the Unix timestamp when the session was recorded.
	Date int64

	// Results holds one entry per participant, in the order they were entered.
	Results []PlayerGameResult
}

// PlayerGameResult is one player's outcome in a session.
type PlayerGameResult struct {
	// PlayerID references Player.ID. The player may have been deleted since.
	PlayerID string

	// BuyIn is the money the player put in (non-negative).
	BuyIn int64

	// CashOut is the money the player took out (non-negative).
	CashOut int64

	// Net is CashOut - BuyIn. Stored, never edited on its own.
	Net int64
}

// NewPlayerGameResult builds a result with Net derived from the two amounts.
func NewPlayerGameResult(playerID string, buyIn, cashOut int64) PlayerGameResult {
	return PlayerGameResult{
		PlayerID: playerID,
		BuyIn:    buyIn,
		CashOut:  cashOut,
		Net:      cashOut - buyIn,
	}
}

// PlayerIDs returns the player IDs of all results in entry order.
func (g *GameSession) PlayerIDs() []string {
	ids := make([]string, len(g.Results))
	for i, r := range g.Results {
		ids[i] = r.PlayerID
	}
	return ids
}
