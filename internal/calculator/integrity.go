package calculator

import "github.com/mmynk/pokerledger/internal/models"

// Kinds of dangling references reported by FindDanglingReferences.
const (
	KindGameResult      = "game_result"
	KindTransactionFrom = "transaction_from"
	KindTransactionTo   = "transaction_to"
)

// IntegrityWarning describes a record that references a player who no longer exists.
// Warnings never stop a computation.
type IntegrityWarning struct {
	Kind     string
	RecordID string // GameSession.ID or Transaction.ID
	PlayerID string
}

// FindDanglingReferences lists every game result and transaction side that points
// at a player missing from players. Order follows games, then transactions.
func FindDanglingReferences(players []models.Player, games []models.GameSession, transactions []models.Transaction) []IntegrityWarning {
	idx := newPlayerIndex(players)

	var warnings []IntegrityWarning
	for _, game := range games {
		for _, r := range game.Results {
			if _, ok := idx.resolvePlayer(r.PlayerID); !ok {
				warnings = append(warnings, IntegrityWarning{Kind: KindGameResult, RecordID: game.ID, PlayerID: r.PlayerID})
			}
		}
	}
	for _, t := range transactions {
		if _, ok := idx.resolvePlayer(t.FromPlayerID); !ok {
			warnings = append(warnings, IntegrityWarning{Kind: KindTransactionFrom, RecordID: t.ID, PlayerID: t.FromPlayerID})
		}
		if _, ok := idx.resolvePlayer(t.ToPlayerID); !ok {
			warnings = append(warnings, IntegrityWarning{Kind: KindTransactionTo, RecordID: t.ID, PlayerID: t.ToPlayerID})
		}
	}
	return warnings
}
