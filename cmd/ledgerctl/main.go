// Command ledgerctl is a terminal client for the poker ledger server.
//
// Usage:
//
//	ledgerctl [-addr http://localhost:8080] <command> [args]
//
// Players can be named by ID or by name (case-insensitive). Game results are
// given as player=buyIn:cashOut, for example:
//
//	ledgerctl record-game alice=100:150 bob=100:50
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/pterm/pterm"

	"github.com/mmynk/pokerledger/pkg/api"
	"github.com/mmynk/pokerledger/pkg/api/apiconnect"
)

var (
	errUsage         = errors.New("usage")
	errPlayerUnknown = errors.New("no player matches")
	errPlayerAmbig   = errors.New("more than one player matches")
)

type command struct {
	args  string
	help  string
	run   func(ctx context.Context, c *cli, args []string) error
	nargs int // minimum number of arguments
}

var commands = map[string]command{
	"players":      {"", "list players", cmdPlayers, 0},
	"add-player":   {"<name>", "add a player", cmdAddPlayer, 1},
	"rm-player":    {"<player>", "delete a player (history is kept)", cmdRmPlayer, 1},
	"check-game":   {"<player=buyIn:cashOut>...", "preview whether a game balances", cmdCheckGame, 1},
	"record-game":  {"<player=buyIn:cashOut>...", "record a game", cmdRecordGame, 2},
	"games":        {"", "list games, newest first", cmdGames, 0},
	"rm-game":      {"<game-id>", "delete a game", cmdRmGame, 1},
	"pay":          {"<from> <to> <amount>", "record a payment", cmdPay, 3},
	"transactions": {"", "list payments, newest first", cmdTransactions, 0},
	"rm-tx":        {"<transaction-id>", "delete a payment", cmdRmTx, 1},
	"standings":    {"", "show standings and totals", cmdStandings, 0},
	"settle":       {"", "suggest payments that settle all balances", cmdSettle, 0},
}

type cli struct {
	client apiconnect.LedgerServiceClient
}

func main() {
	addr := flag.String("addr", envOr("LEDGER_ADDR", "http://localhost:8080"), "ledger server base URL")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	// Create a new slog logger with the default PTerm logger
	logger := pterm.DefaultLogger
	if *debug {
		logger = *logger.WithLevel(pterm.LogLevelDebug)
	}
	slog.SetDefault(slog.New(pterm.NewSlogHandler(&logger)))

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	c := &cli{
		client: apiconnect.NewLedgerServiceClient(&http.Client{Timeout: *timeout}, *addr),
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	slog.Debug("Running command", "command", flag.Arg(0), "addr", *addr)
	if err := c.run(ctx, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			usage()
			os.Exit(2)
		}
		pterm.Error.Println(describe(err))
		os.Exit(1)
	}
}

func (c *cli) run(ctx context.Context, args []string) error {
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	if len(args)-1 < cmd.nargs {
		return fmt.Errorf("%w: %s %s", errUsage, args[0], cmd.args)
	}
	return cmd.run(ctx, c, args[1:])
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <command> [args]\n\nCommands:\n", os.Args[0])
	writeCommands(os.Stderr)
	fmt.Fprintf(os.Stderr, "\nFlags:\n")
	flag.PrintDefaults()
}

// writeCommands lists the commands in name order.
func writeCommands(w io.Writer) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		fmt.Fprintf(w, "  %-13s %-28s %s\n", name, commands[name].args, commands[name].help)
	}
}

// describe turns Connect errors into a one-line message.
func describe(err error) string {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return fmt.Sprintf("%s (%s)", connectErr.Message(), connectErr.Code())
	}
	return err.Error()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *cli) listPlayers(ctx context.Context) ([]*api.Player, error) {
	resp, err := c.client.ListPlayers(ctx, connect.NewRequest(&api.ListPlayersRequest{}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Players, nil
}

// resolvePlayer finds a player by exact ID, then by case-insensitive name.
func resolvePlayer(players []*api.Player, ref string) (*api.Player, error) {
	for _, p := range players {
		if p.ID == ref {
			return p, nil
		}
	}

	var match *api.Player
	for _, p := range players {
		if strings.EqualFold(p.Name, ref) {
			if match != nil {
				return nil, fmt.Errorf("%w: %q", errPlayerAmbig, ref)
			}
			match = p
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q", errPlayerUnknown, ref)
	}
	return match, nil
}

// parseResultArgs parses player=buyIn:cashOut arguments, resolving each player.
func parseResultArgs(players []*api.Player, args []string) ([]*api.ResultInput, error) {
	results := make([]*api.ResultInput, 0, len(args))
	for _, arg := range args {
		ref, amounts, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%q: expected player=buyIn:cashOut", arg)
		}
		in, out, ok := strings.Cut(amounts, ":")
		if !ok {
			return nil, fmt.Errorf("%q: expected player=buyIn:cashOut", arg)
		}

		buyIn, err := strconv.ParseInt(in, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: invalid buy-in: %w", arg, err)
		}
		cashOut, err := strconv.ParseInt(out, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: invalid cash-out: %w", arg, err)
		}

		player, err := resolvePlayer(players, ref)
		if err != nil {
			return nil, err
		}
		results = append(results, &api.ResultInput{PlayerID: player.ID, BuyIn: buyIn, CashOut: cashOut})
	}
	return results, nil
}

func cmdPlayers(ctx context.Context, c *cli, _ []string) error {
	players, err := c.listPlayers(ctx)
	if err != nil {
		return err
	}
	return renderPlayers(players)
}

func cmdAddPlayer(ctx context.Context, c *cli, args []string) error {
	resp, err := c.client.CreatePlayer(ctx, connect.NewRequest(&api.CreatePlayerRequest{
		Name: strings.Join(args, " "),
	}))
	if err != nil {
		return err
	}
	pterm.Success.Printfln("Added %s (%s)", resp.Msg.Player.Name, resp.Msg.Player.ID)
	return nil
}

func cmdRmPlayer(ctx context.Context, c *cli, args []string) error {
	players, err := c.listPlayers(ctx)
	if err != nil {
		return err
	}
	player, err := resolvePlayer(players, args[0])
	if err != nil {
		return err
	}
	if _, err := c.client.DeletePlayer(ctx, connect.NewRequest(&api.DeletePlayerRequest{PlayerID: player.ID})); err != nil {
		return err
	}
	pterm.Success.Printfln("Deleted %s", player.Name)
	return nil
}

func cmdCheckGame(ctx context.Context, c *cli, args []string) error {
	players, err := c.listPlayers(ctx)
	if err != nil {
		return err
	}
	results, err := parseResultArgs(players, args)
	if err != nil {
		return err
	}
	resp, err := c.client.CheckSessionBalance(ctx, connect.NewRequest(&api.CheckSessionBalanceRequest{Results: results}))
	if err != nil {
		return err
	}
	renderBalance(resp.Msg)
	return nil
}

func cmdRecordGame(ctx context.Context, c *cli, args []string) error {
	players, err := c.listPlayers(ctx)
	if err != nil {
		return err
	}
	results, err := parseResultArgs(players, args)
	if err != nil {
		return err
	}
	resp, err := c.client.RecordGame(ctx, connect.NewRequest(&api.RecordGameRequest{Results: results}))
	if err != nil {
		return err
	}
	pterm.Success.Printfln("Recorded game %s", resp.Msg.Game.ID)
	return renderGames(players, []*api.Game{resp.Msg.Game})
}

func cmdGames(ctx context.Context, c *cli, _ []string) error {
	players, err := c.listPlayers(ctx)
	if err != nil {
		return err
	}
	resp, err := c.client.ListGames(ctx, connect.NewRequest(&api.ListGamesRequest{}))
	if err != nil {
		return err
	}
	return renderGames(players, resp.Msg.Games)
}

func cmdRmGame(ctx context.Context, c *cli, args []string) error {
	if _, err := c.client.DeleteGame(ctx, connect.NewRequest(&api.DeleteGameRequest{GameID: args[0]})); err != nil {
		return err
	}
	pterm.Success.Printfln("Deleted game %s", args[0])
	return nil
}

func cmdPay(ctx context.Context, c *cli, args []string) error {
	players, err := c.listPlayers(ctx)
	if err != nil {
		return err
	}
	from, err := resolvePlayer(players, args[0])
	if err != nil {
		return err
	}
	to, err := resolvePlayer(players, args[1])
	if err != nil {
		return err
	}
	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[2], err)
	}

	resp, err := c.client.RecordTransaction(ctx, connect.NewRequest(&api.RecordTransactionRequest{
		FromPlayerID: from.ID,
		ToPlayerID:   to.ID,
		Amount:       amount,
	}))
	if err != nil {
		return err
	}
	pterm.Success.Printfln("%s paid %s %d (%s)", from.Name, to.Name, amount, resp.Msg.Transaction.ID)
	return nil
}

func cmdTransactions(ctx context.Context, c *cli, _ []string) error {
	players, err := c.listPlayers(ctx)
	if err != nil {
		return err
	}
	resp, err := c.client.ListTransactions(ctx, connect.NewRequest(&api.ListTransactionsRequest{}))
	if err != nil {
		return err
	}
	return renderTransactions(players, resp.Msg.Transactions)
}

func cmdRmTx(ctx context.Context, c *cli, args []string) error {
	if _, err := c.client.DeleteTransaction(ctx, connect.NewRequest(&api.DeleteTransactionRequest{TransactionID: args[0]})); err != nil {
		return err
	}
	pterm.Success.Printfln("Deleted transaction %s", args[0])
	return nil
}

func cmdStandings(ctx context.Context, c *cli, _ []string) error {
	resp, err := c.client.GetStandings(ctx, connect.NewRequest(&api.GetStandingsRequest{}))
	if err != nil {
		return err
	}
	return renderStandings(resp.Msg)
}

func cmdSettle(ctx context.Context, c *cli, _ []string) error {
	resp, err := c.client.SuggestSettlements(ctx, connect.NewRequest(&api.SuggestSettlementsRequest{}))
	if err != nil {
		return err
	}
	return renderDebts(resp.Msg.Debts)
}
