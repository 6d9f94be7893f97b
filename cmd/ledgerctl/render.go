package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/mmynk/pokerledger/pkg/api"
)

const dateLayout = "2006-01-02 15:04"

func formatDate(unix int64) string {
	return time.Unix(unix, 0).Format(dateLayout)
}

// formatNet renders a signed amount, green when positive and red when negative.
func formatNet(net int64) string {
	switch {
	case net > 0:
		return pterm.Green(fmt.Sprintf("%+d", net))
	case net < 0:
		return pterm.Red(fmt.Sprintf("%+d", net))
	default:
		return "0"
	}
}

// playerName returns the name for id, or the id itself for deleted players.
func playerName(players []*api.Player, id string) string {
	for _, p := range players {
		if p.ID == id {
			return p.Name
		}
	}
	return id + " (deleted)"
}

// statSummary renders a best/worst entry, or "-" when absent.
func statSummary(s *api.PlayerStat) string {
	if s == nil {
		return "-"
	}
	return fmt.Sprintf("%s %s", s.Name, formatNet(s.Net))
}

func renderPlayers(players []*api.Player) error {
	if len(players) == 0 {
		pterm.Info.Println("No players yet")
		return nil
	}
	data := pterm.TableData{{"Name", "ID", "Added"}}
	for _, p := range players {
		data = append(data, []string{p.Name, p.ID, formatDate(p.CreatedAt)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func renderBalance(b *api.CheckSessionBalanceResponse) {
	msg := fmt.Sprintf("buy-in %d, cash-out %d, diff %+d", b.TotalBuyIn, b.TotalCashOut, b.Diff)
	if b.Balanced {
		pterm.Success.Println("Balanced: " + msg)
		return
	}
	pterm.Warning.Println("Not balanced: " + msg)
}

func renderGames(players []*api.Player, games []*api.Game) error {
	if len(games) == 0 {
		pterm.Info.Println("No games recorded")
		return nil
	}
	data := pterm.TableData{{"Date", "Game", "Player", "Buy-in", "Cash-out", "Net"}}
	for _, g := range games {
		for i, r := range g.Results {
			date, id := "", ""
			if i == 0 {
				date, id = formatDate(g.Date), g.ID
			}
			data = append(data, []string{
				date,
				id,
				playerName(players, r.PlayerID),
				strconv.FormatInt(r.BuyIn, 10),
				strconv.FormatInt(r.CashOut, 10),
				formatNet(r.Net),
			})
		}
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func renderTransactions(players []*api.Player, transactions []*api.Transaction) error {
	if len(transactions) == 0 {
		pterm.Info.Println("No payments recorded")
		return nil
	}
	data := pterm.TableData{{"Date", "From", "To", "Amount", "ID"}}
	for _, t := range transactions {
		data = append(data, []string{
			formatDate(t.Date),
			playerName(players, t.FromPlayerID),
			playerName(players, t.ToPlayerID),
			strconv.FormatInt(t.Amount, 10),
			t.ID,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func renderStandings(s *api.GetStandingsResponse) error {
	if len(s.Standings) > 0 {
		data := pterm.TableData{{"#", "Player", "Net", "Games", "Wins", "Win rate"}}
		for i, st := range s.Standings {
			data = append(data, []string{
				strconv.Itoa(i + 1),
				st.Name,
				formatNet(st.Net),
				strconv.Itoa(int(st.GamesPlayed)),
				strconv.Itoa(int(st.Wins)),
				fmt.Sprintf("%d%%", st.WinRate),
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
	} else {
		pterm.Info.Println("No players yet")
	}

	summary := []string{
		fmt.Sprintf("Games played:      %d", s.GameCount),
		fmt.Sprintf("Total money moved: %d", s.TotalMoneyMoved),
		fmt.Sprintf("Best:              %s", statSummary(s.Best)),
		fmt.Sprintf("Worst:             %s", statSummary(s.Worst)),
	}
	pterm.DefaultBox.WithTitle("Summary").Println(strings.Join(summary, "\n"))

	for _, w := range s.Warnings {
		pterm.Warning.Printfln("%s %s references deleted player %s", w.Kind, w.RecordID, w.PlayerID)
	}
	return nil
}

func renderDebts(debts []*api.Debt) error {
	if len(debts) == 0 {
		pterm.Success.Println("Everyone is settled up")
		return nil
	}
	data := pterm.TableData{{"From", "To", "Amount"}}
	for _, d := range debts {
		data = append(data, []string{d.FromName, d.ToName, strconv.FormatInt(d.Amount, 10)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
