package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/pokerledger/internal/calculator"
	"github.com/mmynk/pokerledger/internal/common/clock"
	"github.com/mmynk/pokerledger/internal/common/uuid"
	"github.com/mmynk/pokerledger/internal/metrics"
	"github.com/mmynk/pokerledger/internal/models"
	"github.com/mmynk/pokerledger/internal/storage"
	"github.com/mmynk/pokerledger/pkg/api"
	"github.com/mmynk/pokerledger/pkg/api/apiconnect"
)

var (
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilStore  = errors.New("store cannot be nil")
)

// Config holds the dependencies of a LedgerService.
// Only Store is required.
type Config struct {
	Store   storage.Store
	Clock   clock.Clock
	IDs     uuid.UUID
	Metrics *metrics.Metrics
}

// LedgerService implements the Connect LedgerService.
//
// Every write goes through the calculator's validation gate first; nothing is
// persisted for a rejected request. Reads load a fresh snapshot per call.
type LedgerService struct {
	apiconnect.UnimplementedLedgerServiceHandler
	store   storage.Store
	clock   clock.Clock
	ids     uuid.UUID
	metrics *metrics.Metrics
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(cfg *Config) (*LedgerService, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	s := &LedgerService{
		store:   cfg.Store,
		clock:   cfg.Clock,
		ids:     cfg.IDs,
		metrics: cfg.Metrics,
	}
	if s.clock == nil {
		s.clock = &clock.DefaultClock{}
	}
	if s.ids == nil {
		s.ids = uuid.New()
	}
	if s.metrics == nil {
		s.metrics = metrics.New(prometheus.NewRegistry())
	}
	return s, nil
}

// toConnectError maps ledger errors onto Connect codes.
func toConnectError(err error) *connect.Error {
	switch {
	case calculator.IsValidation(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// reject counts a validation failure and converts it for the caller.
func (s *LedgerService) reject(procedure string, err error) *connect.Error {
	reason := calculator.Reason(err)
	s.metrics.ValidationRejections.WithLabelValues(reason).Inc()
	slog.Warn(procedure+" rejected", "reason", reason, "error", err)
	return toConnectError(err)
}

// CreatePlayer adds a player. The name is trimmed and must not be empty.
func (s *LedgerService) CreatePlayer(ctx context.Context, req *connect.Request[api.CreatePlayerRequest]) (*connect.Response[api.CreatePlayerResponse], error) {
	slog.Info("CreatePlayer request received", "name", req.Msg.Name)

	name := strings.TrimSpace(req.Msg.Name)
	if err := calculator.ValidatePlayerName(name); err != nil {
		return nil, s.reject("CreatePlayer", err)
	}

	player := &models.Player{
		ID:        s.ids.NewUUID(),
		Name:      name,
		CreatedAt: s.clock.Now().Unix(),
	}
	if err := s.store.CreatePlayer(ctx, player); err != nil {
		slog.Error("CreatePlayer failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Player created", "player_id", player.ID)

	return connect.NewResponse(&api.CreatePlayerResponse{
		Player: playerToAPI(*player),
	}), nil
}

// ListPlayers returns all players in creation order.
func (s *LedgerService) ListPlayers(ctx context.Context, req *connect.Request[api.ListPlayersRequest]) (*connect.Response[api.ListPlayersResponse], error) {
	slog.Info("ListPlayers request received")

	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		slog.Error("ListPlayers failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Player, len(players))
	for i, p := range players {
		out[i] = playerToAPI(p)
	}

	slog.Info("ListPlayers successful", "count", len(players))

	return connect.NewResponse(&api.ListPlayersResponse{Players: out}), nil
}

// DeletePlayer removes a player. Games and transactions that mention the player
// are kept and show up as integrity warnings in the standings.
func (s *LedgerService) DeletePlayer(ctx context.Context, req *connect.Request[api.DeletePlayerRequest]) (*connect.Response[api.DeletePlayerResponse], error) {
	slog.Info("DeletePlayer request received", "player_id", req.Msg.PlayerID)

	if err := s.store.DeletePlayer(ctx, req.Msg.PlayerID); err != nil {
		slog.Error("DeletePlayer failed", "player_id", req.Msg.PlayerID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Player deleted", "player_id", req.Msg.PlayerID)

	return connect.NewResponse(&api.DeletePlayerResponse{}), nil
}

// CheckSessionBalance previews the totals of a game being entered. It never
// fails and never writes.
func (s *LedgerService) CheckSessionBalance(ctx context.Context, req *connect.Request[api.CheckSessionBalanceRequest]) (*connect.Response[api.CheckSessionBalanceResponse], error) {
	results := resultsFromAPI(req.Msg.Results)
	buyIn, cashOut := calculator.SessionTotals(results)
	diff := calculator.ComputeSessionBalance(results)
	_, _, overflow := calculator.CheckedSessionTotals(results)

	slog.Debug("CheckSessionBalance", "results_count", len(results), "diff", diff, "overflow", overflow != nil)

	return connect.NewResponse(&api.CheckSessionBalanceResponse{
		TotalBuyIn:   buyIn,
		TotalCashOut: cashOut,
		Diff:         diff,
		Balanced:     diff == 0 && overflow == nil,
	}), nil
}

// RecordGame validates and stores a new session.
func (s *LedgerService) RecordGame(ctx context.Context, req *connect.Request[api.RecordGameRequest]) (*connect.Response[api.RecordGameResponse], error) {
	slog.Info("RecordGame request received", "results_count", len(req.Msg.Results))

	game := &models.GameSession{
		Results: resultsFromAPI(req.Msg.Results),
	}
	if err := calculator.ValidateSession(game.Results); err != nil {
		return nil, s.reject("RecordGame", err)
	}

	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		slog.Error("RecordGame failed to load players", "error", err)
		return nil, toConnectError(err)
	}
	if err := calculator.ValidateReferences(players, game.PlayerIDs()...); err != nil {
		return nil, s.reject("RecordGame", err)
	}

	game.ID = s.ids.NewUUID()
	game.Date = s.clock.Now().Unix()
	if err := s.store.CreateGame(ctx, game); err != nil {
		slog.Error("RecordGame failed", "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.GamesRecorded.Inc()

	slog.Info("Game recorded", "game_id", game.ID, "players", len(game.Results))

	return connect.NewResponse(&api.RecordGameResponse{Game: gameToAPI(*game)}), nil
}

// ListGames returns all sessions, newest first.
func (s *LedgerService) ListGames(ctx context.Context, req *connect.Request[api.ListGamesRequest]) (*connect.Response[api.ListGamesResponse], error) {
	slog.Info("ListGames request received")

	games, err := s.store.ListGames(ctx)
	if err != nil {
		slog.Error("ListGames failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Game, len(games))
	for i, g := range games {
		out[i] = gameToAPI(g)
	}

	slog.Info("ListGames successful", "count", len(games))

	return connect.NewResponse(&api.ListGamesResponse{Games: out}), nil
}

// DeleteGame removes a session and its results.
func (s *LedgerService) DeleteGame(ctx context.Context, req *connect.Request[api.DeleteGameRequest]) (*connect.Response[api.DeleteGameResponse], error) {
	slog.Info("DeleteGame request received", "game_id", req.Msg.GameID)

	if err := s.store.DeleteGame(ctx, req.Msg.GameID); err != nil {
		slog.Error("DeleteGame failed", "game_id", req.Msg.GameID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Game deleted", "game_id", req.Msg.GameID)

	return connect.NewResponse(&api.DeleteGameResponse{}), nil
}

// RecordTransaction validates and stores a payment between two players.
func (s *LedgerService) RecordTransaction(ctx context.Context, req *connect.Request[api.RecordTransactionRequest]) (*connect.Response[api.RecordTransactionResponse], error) {
	slog.Info("RecordTransaction request received",
		"from_player_id", req.Msg.FromPlayerID,
		"to_player_id", req.Msg.ToPlayerID,
		"amount", req.Msg.Amount,
	)

	t := &models.Transaction{
		FromPlayerID: req.Msg.FromPlayerID,
		ToPlayerID:   req.Msg.ToPlayerID,
		Amount:       req.Msg.Amount,
	}
	if err := calculator.ValidateTransaction(*t); err != nil {
		return nil, s.reject("RecordTransaction", err)
	}

	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		slog.Error("RecordTransaction failed to load players", "error", err)
		return nil, toConnectError(err)
	}
	if err := calculator.ValidateReferences(players, t.FromPlayerID, t.ToPlayerID); err != nil {
		return nil, s.reject("RecordTransaction", err)
	}

	t.ID = s.ids.NewUUID()
	t.Date = s.clock.Now().Unix()
	if err := s.store.CreateTransaction(ctx, t); err != nil {
		slog.Error("RecordTransaction failed", "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.TransactionsRecorded.Inc()

	slog.Info("Transaction recorded", "transaction_id", t.ID)

	return connect.NewResponse(&api.RecordTransactionResponse{Transaction: transactionToAPI(*t)}), nil
}

// ListTransactions returns all transactions, newest first.
func (s *LedgerService) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	slog.Info("ListTransactions request received")

	transactions, err := s.store.ListTransactions(ctx)
	if err != nil {
		slog.Error("ListTransactions failed", "error", err)
		return nil, toConnectError(err)
	}

	// Stores keep recorded order
	slices.Reverse(transactions)

	out := make([]*api.Transaction, len(transactions))
	for i, t := range transactions {
		out[i] = transactionToAPI(t)
	}

	slog.Info("ListTransactions successful", "count", len(transactions))

	return connect.NewResponse(&api.ListTransactionsResponse{Transactions: out}), nil
}

// DeleteTransaction removes a transaction.
func (s *LedgerService) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	slog.Info("DeleteTransaction request received", "transaction_id", req.Msg.TransactionID)

	if err := s.store.DeleteTransaction(ctx, req.Msg.TransactionID); err != nil {
		slog.Error("DeleteTransaction failed", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Transaction deleted", "transaction_id", req.Msg.TransactionID)

	return connect.NewResponse(&api.DeleteTransactionResponse{}), nil
}

// GetStandings computes standings and dashboard totals from the current ledger.
func (s *LedgerService) GetStandings(ctx context.Context, req *connect.Request[api.GetStandingsRequest]) (*connect.Response[api.GetStandingsResponse], error) {
	slog.Info("GetStandings request received")

	summary, err := s.summarize(ctx)
	if err != nil {
		slog.Error("GetStandings failed", "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.GetStandingsResponse{
		Standings:       make([]*api.PlayerStat, len(summary.Standings)),
		TotalMoneyMoved: summary.TotalMoneyMoved,
		GameCount:       int32(summary.GameCount),
	}
	for i, st := range summary.Standings {
		resp.Standings[i] = statToAPI(st)
	}
	if summary.Best != nil {
		resp.Best = statToAPI(*summary.Best)
	}
	if summary.Worst != nil {
		resp.Worst = statToAPI(*summary.Worst)
	}
	for _, w := range summary.Warnings {
		resp.Warnings = append(resp.Warnings, &api.IntegrityWarning{
			Kind:     w.Kind,
			RecordID: w.RecordID,
			PlayerID: w.PlayerID,
		})
	}

	slog.Info("GetStandings successful",
		"players", len(resp.Standings),
		"games", resp.GameCount,
		"warnings", len(resp.Warnings),
	)

	return connect.NewResponse(resp), nil
}

// SuggestSettlements returns the payments that would bring every balance to zero.
func (s *LedgerService) SuggestSettlements(ctx context.Context, req *connect.Request[api.SuggestSettlementsRequest]) (*connect.Response[api.SuggestSettlementsResponse], error) {
	slog.Info("SuggestSettlements request received")

	summary, err := s.summarize(ctx)
	if err != nil {
		slog.Error("SuggestSettlements failed", "error", err)
		return nil, toConnectError(err)
	}

	edges := calculator.SimplifyDebts(summary.Standings)
	debts := make([]*api.Debt, len(edges))
	for i, e := range edges {
		debts[i] = &api.Debt{
			FromPlayerID: e.FromID,
			FromName:     e.From,
			ToPlayerID:   e.ToID,
			ToName:       e.To,
			Amount:       e.Amount,
		}
	}

	slog.Info("SuggestSettlements successful", "debts", len(debts))

	return connect.NewResponse(&api.SuggestSettlementsResponse{Debts: debts}), nil
}

// summarize loads a snapshot and runs the engine over it, reporting any dangling
// references it finds.
func (s *LedgerService) summarize(ctx context.Context) (calculator.Summary, error) {
	snap, err := storage.LoadSnapshot(ctx, s.store)
	if err != nil {
		return calculator.Summary{}, err
	}

	summary := calculator.Summarize(snap.Players, snap.Games, snap.Transactions)

	s.metrics.IntegrityWarnings.Set(float64(len(summary.Warnings)))
	for _, w := range summary.Warnings {
		slog.Warn("Record references a deleted player",
			"kind", w.Kind,
			"record_id", w.RecordID,
			"player_id", w.PlayerID,
		)
	}
	return summary, nil
}
