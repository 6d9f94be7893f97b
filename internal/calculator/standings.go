// Package calculator implements the ledger engine: pure functions that turn players,
// game sessions and settlement transactions into per-player balances and standings.
//
// Nothing in this package performs I/O or keeps state between calls. Callers pass a
// full snapshot and get a freshly computed result back.
package calculator

import (
	"cmp"
	"slices"

	"github.com/mmynk/pokerledger/internal/models"
)

// PlayerStat is one row of the standings.
type PlayerStat struct {
	PlayerID    string
	Name        string
	Net         int64 // Positive = owed money, Negative = owes money
	GamesPlayed int
	Wins        int
	WinRate     int // 0-100
}

// Summary is the aggregate view of a snapshot.
type Summary struct {
	Standings []PlayerStat

	// Best and Worst are nil when there are no players.
	Best  *PlayerStat
	Worst *PlayerStat

	TotalMoneyMoved int64
	GameCount       int
	Warnings        []IntegrityWarning
}

// playerIndex resolves player IDs to their position in the input slice.
type playerIndex map[string]int

func newPlayerIndex(players []models.Player) playerIndex {
	idx := make(playerIndex, len(players))
	for i, p := range players {
		if _, exists := idx[p.ID]; !exists {
			idx[p.ID] = i
		}
	}
	return idx
}

// resolvePlayer returns the position of the player with the given ID, or false if
// the player no longer exists.
func (idx playerIndex) resolvePlayer(id string) (int, bool) {
	i, ok := idx[id]
	return i, ok
}

// ComputeStandings computes a ranked list of per-player statistics.
//
// Algorithm:
//   - For each session: a player's first result in it adds its net, counts one game
//     and counts one win when net > 0
//   - For each transaction: payer's net improves by amount, receiver's net decreases
//   - Win rate: wins/games as a whole percentage, .5 rounds up
//   - Sort: descending by net, ties keep the order of players
//
// Results and transactions that reference unknown players are skipped. A player ID
// listed more than once yields one row per entry, all with the same figures.
func ComputeStandings(players []models.Player, games []models.GameSession, transactions []models.Transaction) []PlayerStat {
	stats := make([]PlayerStat, len(players))
	for i, p := range players {
		stats[i] = PlayerStat{PlayerID: p.ID, Name: p.Name}
	}
	if len(players) == 0 {
		return stats
	}

	idx := newPlayerIndex(players)

	// lastGame[i] holds 1 + the index of the last session counted for player i
	lastGame := make([]int, len(players))
	for gi, game := range games {
		for _, r := range game.Results {
			i, ok := idx.resolvePlayer(r.PlayerID)
			if !ok || lastGame[i] == gi+1 {
				continue
			}
			lastGame[i] = gi + 1

			stats[i].Net += r.Net
			stats[i].GamesPlayed++
			if r.Net > 0 {
				stats[i].Wins++
			}
		}
	}

	for _, t := range transactions {
		if i, ok := idx.resolvePlayer(t.FromPlayerID); ok {
			stats[i].Net += t.Amount
		}
		if i, ok := idx.resolvePlayer(t.ToPlayerID); ok {
			stats[i].Net -= t.Amount
		}
	}

	// Rows repeating an earlier ID share its figures.
	for i, p := range players {
		if first := idx[p.ID]; first != i {
			stats[i] = stats[first]
			stats[i].Name = p.Name
		}
	}

	for i := range stats {
		stats[i].WinRate = WinRate(stats[i].Wins, stats[i].GamesPlayed)
	}

	sortByNetDesc(stats)

	return stats
}

// WinRate returns wins/games as a percentage rounded to the nearest integer,
// with halves rounded up. It returns 0 when games is 0.
func WinRate(wins, games int) int {
	if games <= 0 || wins <= 0 {
		return 0
	}
	if wins >= games {
		return 100
	}
	return (wins*200 + games) / (2 * games)
}

// ComputeTotalMoneyMoved sums every buy-in of every session, including results of
// players that have since been deleted.
func ComputeTotalMoneyMoved(games []models.GameSession) int64 {
	var total int64
	for _, game := range games {
		for _, r := range game.Results {
			total += r.BuyIn
		}
	}
	return total
}

// Summarize computes standings plus the dashboard aggregates for a snapshot.
func Summarize(players []models.Player, games []models.GameSession, transactions []models.Transaction) Summary {
	standings := ComputeStandings(players, games, transactions)

	summary := Summary{
		Standings:       standings,
		TotalMoneyMoved: ComputeTotalMoneyMoved(games),
		GameCount:       len(games),
		Warnings:        FindDanglingReferences(players, games, transactions),
	}
	if len(standings) > 0 {
		best := standings[0]
		worst := standings[len(standings)-1]
		summary.Best = &best
		summary.Worst = &worst
	}
	return summary
}

func sortByNetDesc(stats []PlayerStat) {
	slices.SortStableFunc(stats, func(a, b PlayerStat) int {
		return cmp.Compare(b.Net, a.Net)
	})
}

func sortByNetAsc(stats []PlayerStat) {
	slices.SortStableFunc(stats, func(a, b PlayerStat) int {
		return cmp.Compare(a.Net, b.Net)
	})
}
