package calculator

// DebtEdge represents a payment that would settle part of the standings.
type DebtEdge struct {
	FromID string // Player who owes
	From   string
	ToID   string // Player who is owed
	To     string
	Amount int64
}

// SimplifyDebts suggests the payments that bring every balance in standings to zero.
// Recording each edge as a transaction from From to To settles the pair.
//
// Algorithm:
//   - Creditors (net > 0) are taken largest first, debtors (net < 0) most negative first
//   - Greedy matching: each step settles min(debt, credit) between the current pair
//   - Stops when either side runs out (standings with dangling references may not sum to zero)
//
// standings is not modified.
func SimplifyDebts(standings []PlayerStat) []DebtEdge {
	var creditors []PlayerStat
	var debtors []PlayerStat
	for _, s := range standings {
		if s.Net > 0 {
			creditors = append(creditors, s)
		} else if s.Net < 0 {
			debtors = append(debtors, s)
		}
	}
	sortByNetDesc(creditors)
	sortByNetAsc(debtors)

	remainingDebt := make([]int64, len(debtors))
	for i, d := range debtors {
		remainingDebt[i] = -d.Net // Make positive
	}
	remainingCredit := make([]int64, len(creditors))
	for j, c := range creditors {
		remainingCredit[j] = c.Net
	}

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := min(remainingDebt[i], remainingCredit[j])
		if amount > 0 {
			edges = append(edges, DebtEdge{
				FromID: debtors[i].PlayerID,
				From:   debtors[i].Name,
				ToID:   creditors[j].PlayerID,
				To:     creditors[j].Name,
				Amount: amount,
			})
		}

		remainingDebt[i] -= amount
		remainingCredit[j] -= amount

		if remainingDebt[i] == 0 {
			i++
		}
		if remainingCredit[j] == 0 {
			j++
		}
	}

	return edges
}
