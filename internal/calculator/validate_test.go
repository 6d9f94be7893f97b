package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/mmynk/pokerledger/internal/models"
)

func TestComputeSessionBalance(t *testing.T) {
	tests := []struct {
		name    string
		results []models.PlayerGameResult
		want    int64
	}{
		{name: "empty session", want: 0},
		{
			name:    "balanced",
			results: []models.PlayerGameResult{result("a", 100, 150), result("b", 100, 50)},
			want:    0,
		},
		{
			name: "cash-out short",
			results: []models.PlayerGameResult{
				result("a", 100, 150), result("b", 100, 90), result("c", 100, 50),
			},
			want: -10,
		},
		{
			name:    "cash-out over",
			results: []models.PlayerGameResult{result("a", 50, 80), result("b", 50, 30)},
			want:    10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeSessionBalance(tt.results); got != tt.want {
				t.Errorf("ComputeSessionBalance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateSession(t *testing.T) {
	tests := []struct {
		name    string
		results []models.PlayerGameResult
		wantErr error
	}{
		{
			name:    "balanced two-player session",
			results: []models.PlayerGameResult{result("a", 100, 150), result("b", 100, 50)},
		},
		{
			name:    "balanced with zero buy-in",
			results: []models.PlayerGameResult{result("a", 0, 0), result("b", 0, 0)},
		},
		{
			name:    "one player",
			results: []models.PlayerGameResult{result("a", 100, 100)},
			wantErr: ErrTooFewPlayers,
		},
		{
			name:    "no players",
			wantErr: ErrTooFewPlayers,
		},
		{
			name: "unbalanced",
			results: []models.PlayerGameResult{
				result("a", 100, 150), result("b", 100, 90), result("c", 100, 50),
			},
			wantErr: ErrUnbalancedSession,
		},
		{
			name:    "duplicate player",
			results: []models.PlayerGameResult{result("a", 100, 150), result("a", 100, 50)},
			wantErr: ErrDuplicatePlayer,
		},
		{
			name:    "missing player id",
			results: []models.PlayerGameResult{result("", 100, 150), result("b", 100, 50)},
			wantErr: ErrMissingPlayer,
		},
		{
			name:    "negative amount",
			results: []models.PlayerGameResult{result("a", -100, 0), result("b", 0, -100)},
			wantErr: ErrNegativeAmount,
		},
		{
			name: "amounts that wrap around int64",
			results: []models.PlayerGameResult{
				result("a", 0, math.MaxInt64), result("b", 0, math.MaxInt64), result("c", 0, 2),
			},
			wantErr: ErrAmountTooLarge,
		},
		{
			name:    "amount above max",
			results: []models.PlayerGameResult{result("a", MaxAmount+1, 0), result("b", 0, MaxAmount+1)},
			wantErr: ErrAmountTooLarge,
		},
		{
			name:    "amount at max",
			results: []models.PlayerGameResult{result("a", MaxAmount, 0), result("b", 0, MaxAmount)},
		},
		{
			name: "tampered net",
			results: []models.PlayerGameResult{
				{PlayerID: "a", BuyIn: 100, CashOut: 150, Net: 60},
				result("b", 100, 50),
			},
			wantErr: ErrNetMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSession(tt.results)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateSession() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSession() error = %v, want %v", err, tt.wantErr)
			}
			if !IsValidation(err) {
				t.Errorf("IsValidation(%v) = false, want true", err)
			}
		})
	}
}

func TestCheckedSessionTotals(t *testing.T) {
	buyIn, cashOut, err := CheckedSessionTotals([]models.PlayerGameResult{
		result("a", 100, 150), result("b", 100, 50),
	})
	if err != nil || buyIn != 200 || cashOut != 200 {
		t.Errorf("CheckedSessionTotals() = %d, %d, %v, want 200, 200, nil", buyIn, cashOut, err)
	}

	overflowing := [][]models.PlayerGameResult{
		{result("a", 0, math.MaxInt64), result("b", 0, math.MaxInt64), result("c", 0, 2)},
		{result("a", math.MaxInt64, 0), result("b", 1, 0)},
		{result("a", math.MaxInt64, 0), {PlayerID: "b", CashOut: -2}},
	}
	for _, results := range overflowing {
		if _, _, err := CheckedSessionTotals(results); !errors.Is(err, ErrAmountTooLarge) {
			t.Errorf("CheckedSessionTotals(%v) error = %v, want %v", results, err, ErrAmountTooLarge)
		}
	}
}

func TestValidateSession_UnbalancedMessage(t *testing.T) {
	err := ValidateSession([]models.PlayerGameResult{
		result("a", 100, 150), result("b", 100, 90), result("c", 100, 50),
	})
	want := "session does not balance: diff -10 (buy-in 300, cash-out 290)"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestValidateTransaction(t *testing.T) {
	tests := []struct {
		name    string
		tx      models.Transaction
		wantErr error
	}{
		{name: "valid", tx: models.Transaction{FromPlayerID: "a", ToPlayerID: "b", Amount: 20}},
		{name: "self payment", tx: models.Transaction{FromPlayerID: "a", ToPlayerID: "a", Amount: 20}, wantErr: ErrSelfTransaction},
		{name: "zero amount", tx: models.Transaction{FromPlayerID: "a", ToPlayerID: "b"}, wantErr: ErrNonPositiveAmount},
		{name: "negative amount", tx: models.Transaction{FromPlayerID: "a", ToPlayerID: "b", Amount: -5}, wantErr: ErrNonPositiveAmount},
		{name: "missing payer", tx: models.Transaction{ToPlayerID: "b", Amount: 5}, wantErr: ErrMissingPlayer},
		{name: "missing receiver", tx: models.Transaction{FromPlayerID: "a", Amount: 5}, wantErr: ErrMissingPlayer},
		{name: "amount above max", tx: models.Transaction{FromPlayerID: "a", ToPlayerID: "b", Amount: MaxAmount + 1}, wantErr: ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransaction(tt.tx)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTransaction() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReferences(t *testing.T) {
	players := []models.Player{alice, bob}

	if err := ValidateReferences(players, "a", "b"); err != nil {
		t.Errorf("ValidateReferences() error = %v, want nil", err)
	}
	if err := ValidateReferences(players); err != nil {
		t.Errorf("ValidateReferences() with no ids error = %v, want nil", err)
	}

	err := ValidateReferences(players, "a", "ghost")
	if !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("ValidateReferences() error = %v, want %v", err, ErrUnknownPlayer)
	}
}

func TestValidatePlayerName(t *testing.T) {
	if err := ValidatePlayerName("  Alice "); err != nil {
		t.Errorf("ValidatePlayerName() error = %v, want nil", err)
	}
	if err := ValidatePlayerName("   "); err != ErrEmptyPlayerName {
		t.Errorf("ValidatePlayerName() error = %v, want %v", err, ErrEmptyPlayerName)
	}
}

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrUnbalancedSession, "unbalanced"},
		{ValidateSession([]models.PlayerGameResult{result("a", 1, 1), result("a", 1, 1)}), "duplicate_player"},
		{ErrSelfTransaction, "self_transaction"},
		{ErrAmountTooLarge, "amount_too_large"},
		{errors.New("disk full"), "unknown"},
		{nil, "unknown"},
	}

	for _, tt := range tests {
		if got := Reason(tt.err); got != tt.want {
			t.Errorf("Reason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
