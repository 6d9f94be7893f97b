package models

// Transaction represents a direct payment between two players.
// FromPlayerID pays ToPlayerID: the payer's balance improves by Amount and the
// receiver's outstanding credit shrinks by Amount.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// FromPlayerID is the player who paid (debtor settling up).
	FromPlayerID string

	// ToPlayerID is the player who received the payment (creditor being paid).
	ToPlayerID string

	// Amount is the payment amount. Always positive.
	Amount int64

	// Date is the Unix timestamp when the payment was recorded.
	Date int64
}
