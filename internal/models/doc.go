// Package models defines the core domain models for the poker ledger.
//
// # Models
//
//   - Player: someone who sits at the table
//   - GameSession: one played session with a result per participant
//   - PlayerGameResult: buy-in, cash-out and derived net for one player in one session
//   - Transaction: a direct payment between two players outside of a session
//
// # Design Principles
//
//  1. **Integer money**: all amounts are whole currency units (int64), no floats
//  2. **References by value**: results and transactions hold player IDs, never pointers,
//     so a player can be deleted while historical records still mention them
//  3. **Append-only history**: sessions and transactions are never edited in place,
//     only created or deleted as a whole
//  4. **Derived fields are stored**: Net is persisted next to BuyIn and CashOut and
//     must always equal CashOut - BuyIn
package models
