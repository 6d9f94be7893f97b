package calculator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mmynk/pokerledger/internal/models"
)

// ValidationError is returned when a record fails the pre-save gate.
// Nothing is persisted when one of these is returned.
type ValidationError string

// Error implements the error interface
func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrEmptyPlayerName   ValidationError = "player name cannot be empty"
	ErrTooFewPlayers     ValidationError = "a session needs at least two players"
	ErrMissingPlayer     ValidationError = "player id is required"
	ErrDuplicatePlayer   ValidationError = "player appears more than once in the session"
	ErrNegativeAmount    ValidationError = "buy-in and cash-out cannot be negative"
	ErrNetMismatch       ValidationError = "net must equal cash-out minus buy-in"
	ErrUnbalancedSession ValidationError = "session does not balance"
	ErrSelfTransaction   ValidationError = "a player cannot pay themselves"
	ErrNonPositiveAmount ValidationError = "amount must be positive"
	ErrUnknownPlayer     ValidationError = "unknown player"
	ErrAmountTooLarge    ValidationError = "amount is too large"
)

// MaxAmount is the largest buy-in, cash-out or transaction amount accepted.
// It keeps every amount exact in float64 JSON clients.
const MaxAmount int64 = 1_000_000_000_000_000

var reasons = map[ValidationError]string{
	ErrEmptyPlayerName:   "empty_name",
	ErrTooFewPlayers:     "too_few_players",
	ErrMissingPlayer:     "missing_player",
	ErrDuplicatePlayer:   "duplicate_player",
	ErrNegativeAmount:    "negative_amount",
	ErrNetMismatch:       "net_mismatch",
	ErrUnbalancedSession: "unbalanced",
	ErrSelfTransaction:   "self_transaction",
	ErrNonPositiveAmount: "non_positive_amount",
	ErrUnknownPlayer:     "unknown_player",
	ErrAmountTooLarge:    "amount_too_large",
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

// Reason returns a short label for a validation error, suitable for metrics.
// It returns "unknown" for anything else.
func Reason(err error) string {
	var v ValidationError
	if errors.As(err, &v) {
		if r, ok := reasons[v]; ok {
			return r
		}
	}
	return "unknown"
}

// ValidatePlayerName checks that a trimmed player name is not empty.
func ValidatePlayerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyPlayerName
	}
	return nil
}

// SessionTotals returns the summed buy-ins and cash-outs of a candidate session.
func SessionTotals(results []models.PlayerGameResult) (buyIn, cashOut int64) {
	for _, r := range results {
		buyIn += r.BuyIn
		cashOut += r.CashOut
	}
	return buyIn, cashOut
}

// CheckedSessionTotals is SessionTotals with overflow detection. It returns
// ErrAmountTooLarge when either sum, or their difference, does not fit in an int64.
func CheckedSessionTotals(results []models.PlayerGameResult) (buyIn, cashOut int64, err error) {
	for _, r := range results {
		var ok bool
		if buyIn, ok = addAmount(buyIn, r.BuyIn); !ok {
			return 0, 0, ErrAmountTooLarge
		}
		if cashOut, ok = addAmount(cashOut, r.CashOut); !ok {
			return 0, 0, ErrAmountTooLarge
		}
	}
	if (buyIn < 0 && cashOut > math.MaxInt64+buyIn) || (buyIn > 0 && cashOut < math.MinInt64+buyIn) {
		return 0, 0, ErrAmountTooLarge
	}
	return buyIn, cashOut, nil
}

func addAmount(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

// ComputeSessionBalance returns sum(cashOut) - sum(buyIn) for a candidate session.
// A session may only be saved when this is zero.
func ComputeSessionBalance(results []models.PlayerGameResult) int64 {
	buyIn, cashOut := SessionTotals(results)
	return cashOut - buyIn
}

// ValidateSession runs the pre-save gate for a new session.
func ValidateSession(results []models.PlayerGameResult) error {
	if len(results) < 2 {
		return ErrTooFewPlayers
	}

	seen := make(map[string]bool, len(results))
	for _, r := range results {
		if r.PlayerID == "" {
			return ErrMissingPlayer
		}
		if seen[r.PlayerID] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, r.PlayerID)
		}
		seen[r.PlayerID] = true

		if r.BuyIn < 0 || r.CashOut < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeAmount, r.PlayerID)
		}
		if r.BuyIn > MaxAmount || r.CashOut > MaxAmount {
			return fmt.Errorf("%w: %s (max %d)", ErrAmountTooLarge, r.PlayerID, MaxAmount)
		}
		if r.Net != r.CashOut-r.BuyIn {
			return fmt.Errorf("%w: %s", ErrNetMismatch, r.PlayerID)
		}
	}

	buyIn, cashOut, err := CheckedSessionTotals(results)
	if err != nil {
		return err
	}
	if diff := cashOut - buyIn; diff != 0 {
		return fmt.Errorf("%w: diff %+d (buy-in %d, cash-out %d)", ErrUnbalancedSession, diff, buyIn, cashOut)
	}

	return nil
}

// ValidateTransaction runs the pre-save gate for a new transaction.
func ValidateTransaction(t models.Transaction) error {
	if t.FromPlayerID == "" || t.ToPlayerID == "" {
		return ErrMissingPlayer
	}
	if t.FromPlayerID == t.ToPlayerID {
		return ErrSelfTransaction
	}
	if t.Amount <= 0 {
		return ErrNonPositiveAmount
	}
	if t.Amount > MaxAmount {
		return ErrAmountTooLarge
	}
	return nil
}

// ValidateReferences checks that every id names one of players.
// Only new records are checked; historical records may reference deleted players.
func ValidateReferences(players []models.Player, ids ...string) error {
	idx := newPlayerIndex(players)
	for _, id := range ids {
		if _, ok := idx.resolvePlayer(id); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
		}
	}
	return nil
}
