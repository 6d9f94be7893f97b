package service

import (
	"github.com/mmynk/pokerledger/internal/calculator"
	"github.com/mmynk/pokerledger/internal/models"
	"github.com/mmynk/pokerledger/pkg/api"
)

func playerToAPI(p models.Player) *api.Player {
	return &api.Player{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

func gameToAPI(g models.GameSession) *api.Game {
	results := make([]*api.PlayerResult, len(g.Results))
	for i, r := range g.Results {
		results[i] = &api.PlayerResult{
			PlayerID: r.PlayerID,
			BuyIn:    r.BuyIn,
			CashOut:  r.CashOut,
			Net:      r.Net,
		}
	}
	return &api.Game{
		ID:      g.ID,
		Date:    g.Date,
		Results: results,
	}
}

func transactionToAPI(t models.Transaction) *api.Transaction {
	return &api.Transaction{
		ID:           t.ID,
		FromPlayerID: t.FromPlayerID,
		ToPlayerID:   t.ToPlayerID,
		Amount:       t.Amount,
		Date:         t.Date,
	}
}

func statToAPI(s calculator.PlayerStat) *api.PlayerStat {
	return &api.PlayerStat{
		PlayerID:    s.PlayerID,
		Name:        s.Name,
		Net:         s.Net,
		GamesPlayed: int32(s.GamesPlayed),
		Wins:        int32(s.Wins),
		WinRate:     int32(s.WinRate),
	}
}

// resultsFromAPI converts entered rows into results with Net derived.
// Nil rows are skipped.
func resultsFromAPI(in []*api.ResultInput) []models.PlayerGameResult {
	results := make([]models.PlayerGameResult, 0, len(in))
	for _, r := range in {
		if r == nil {
			continue
		}
		results = append(results, models.NewPlayerGameResult(r.PlayerID, r.BuyIn, r.CashOut))
	}
	return results
}
