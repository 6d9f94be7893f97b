// Package apiconnect wires the messages of package api to Connect handlers and clients.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/pokerledger/pkg/api"
)

const (
	// LedgerServiceName is the fully-qualified name of the LedgerService service.
	LedgerServiceName = "pokerledger.v1.LedgerService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	LedgerServiceCreatePlayerProcedure        = "/pokerledger.v1.LedgerService/CreatePlayer"
	LedgerServiceListPlayersProcedure         = "/pokerledger.v1.LedgerService/ListPlayers"
	LedgerServiceDeletePlayerProcedure        = "/pokerledger.v1.LedgerService/DeletePlayer"
	LedgerServiceCheckSessionBalanceProcedure = "/pokerledger.v1.LedgerService/CheckSessionBalance"
	LedgerServiceRecordGameProcedure          = "/pokerledger.v1.LedgerService/RecordGame"
	LedgerServiceListGamesProcedure           = "/pokerledger.v1.LedgerService/ListGames"
	LedgerServiceDeleteGameProcedure          = "/pokerledger.v1.LedgerService/DeleteGame"
	LedgerServiceRecordTransactionProcedure   = "/pokerledger.v1.LedgerService/RecordTransaction"
	LedgerServiceListTransactionsProcedure    = "/pokerledger.v1.LedgerService/ListTransactions"
	LedgerServiceDeleteTransactionProcedure   = "/pokerledger.v1.LedgerService/DeleteTransaction"
	LedgerServiceGetStandingsProcedure        = "/pokerledger.v1.LedgerService/GetStandings"
	LedgerServiceSuggestSettlementsProcedure  = "/pokerledger.v1.LedgerService/SuggestSettlements"
)

// LedgerServiceHandler is an implementation of the pokerledger.v1.LedgerService service.
type LedgerServiceHandler interface {
	CreatePlayer(context.Context, *connect.Request[api.CreatePlayerRequest]) (*connect.Response[api.CreatePlayerResponse], error)
	ListPlayers(context.Context, *connect.Request[api.ListPlayersRequest]) (*connect.Response[api.ListPlayersResponse], error)
	DeletePlayer(context.Context, *connect.Request[api.DeletePlayerRequest]) (*connect.Response[api.DeletePlayerResponse], error)
	CheckSessionBalance(context.Context, *connect.Request[api.CheckSessionBalanceRequest]) (*connect.Response[api.CheckSessionBalanceResponse], error)
	RecordGame(context.Context, *connect.Request[api.RecordGameRequest]) (*connect.Response[api.RecordGameResponse], error)
	ListGames(context.Context, *connect.Request[api.ListGamesRequest]) (*connect.Response[api.ListGamesResponse], error)
	DeleteGame(context.Context, *connect.Request[api.DeleteGameRequest]) (*connect.Response[api.DeleteGameResponse], error)
	RecordTransaction(context.Context, *connect.Request[api.RecordTransactionRequest]) (*connect.Response[api.RecordTransactionResponse], error)
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error)
	GetStandings(context.Context, *connect.Request[api.GetStandingsRequest]) (*connect.Response[api.GetStandingsResponse], error)
	SuggestSettlements(context.Context, *connect.Request[api.SuggestSettlementsRequest]) (*connect.Response[api.SuggestSettlementsResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
//
// The JSON codec is always installed; opts are applied after it.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	handlers := map[string]http.Handler{
		LedgerServiceCreatePlayerProcedure:        connect.NewUnaryHandler(LedgerServiceCreatePlayerProcedure, svc.CreatePlayer, opts...),
		LedgerServiceListPlayersProcedure:         connect.NewUnaryHandler(LedgerServiceListPlayersProcedure, svc.ListPlayers, opts...),
		LedgerServiceDeletePlayerProcedure:        connect.NewUnaryHandler(LedgerServiceDeletePlayerProcedure, svc.DeletePlayer, opts...),
		LedgerServiceCheckSessionBalanceProcedure: connect.NewUnaryHandler(LedgerServiceCheckSessionBalanceProcedure, svc.CheckSessionBalance, opts...),
		LedgerServiceRecordGameProcedure:          connect.NewUnaryHandler(LedgerServiceRecordGameProcedure, svc.RecordGame, opts...),
		LedgerServiceListGamesProcedure:           connect.NewUnaryHandler(LedgerServiceListGamesProcedure, svc.ListGames, opts...),
		LedgerServiceDeleteGameProcedure:          connect.NewUnaryHandler(LedgerServiceDeleteGameProcedure, svc.DeleteGame, opts...),
		LedgerServiceRecordTransactionProcedure:   connect.NewUnaryHandler(LedgerServiceRecordTransactionProcedure, svc.RecordTransaction, opts...),
		LedgerServiceListTransactionsProcedure:    connect.NewUnaryHandler(LedgerServiceListTransactionsProcedure, svc.ListTransactions, opts...),
		LedgerServiceDeleteTransactionProcedure:   connect.NewUnaryHandler(LedgerServiceDeleteTransactionProcedure, svc.DeleteTransaction, opts...),
		LedgerServiceGetStandingsProcedure:        connect.NewUnaryHandler(LedgerServiceGetStandingsProcedure, svc.GetStandings, opts...),
		LedgerServiceSuggestSettlementsProcedure:  connect.NewUnaryHandler(LedgerServiceSuggestSettlementsProcedure, svc.SuggestSettlements, opts...),
	}

	return "/" + LedgerServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// IsLedgerServicePath reports whether path is routed to the LedgerService.
func IsLedgerServicePath(path string) bool {
	return strings.HasPrefix(path, "/"+LedgerServiceName+"/")
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func unimplemented(procedure string) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New(strings.TrimPrefix(procedure, "/")+" is not implemented"))
}

func (UnimplementedLedgerServiceHandler) CreatePlayer(context.Context, *connect.Request[api.CreatePlayerRequest]) (*connect.Response[api.CreatePlayerResponse], error) {
	return nil, unimplemented(LedgerServiceCreatePlayerProcedure)
}

func (UnimplementedLedgerServiceHandler) ListPlayers(context.Context, *connect.Request[api.ListPlayersRequest]) (*connect.Response[api.ListPlayersResponse], error) {
	return nil, unimplemented(LedgerServiceListPlayersProcedure)
}

func (UnimplementedLedgerServiceHandler) DeletePlayer(context.Context, *connect.Request[api.DeletePlayerRequest]) (*connect.Response[api.DeletePlayerResponse], error) {
	return nil, unimplemented(LedgerServiceDeletePlayerProcedure)
}

func (UnimplementedLedgerServiceHandler) CheckSessionBalance(context.Context, *connect.Request[api.CheckSessionBalanceRequest]) (*connect.Response[api.CheckSessionBalanceResponse], error) {
	return nil, unimplemented(LedgerServiceCheckSessionBalanceProcedure)
}

func (UnimplementedLedgerServiceHandler) RecordGame(context.Context, *connect.Request[api.RecordGameRequest]) (*connect.Response[api.RecordGameResponse], error) {
	return nil, unimplemented(LedgerServiceRecordGameProcedure)
}

func (UnimplementedLedgerServiceHandler) ListGames(context.Context, *connect.Request[api.ListGamesRequest]) (*connect.Response[api.ListGamesResponse], error) {
	return nil, unimplemented(LedgerServiceListGamesProcedure)
}

func (UnimplementedLedgerServiceHandler) DeleteGame(context.Context, *connect.Request[api.DeleteGameRequest]) (*connect.Response[api.DeleteGameResponse], error) {
	return nil, unimplemented(LedgerServiceDeleteGameProcedure)
}

func (UnimplementedLedgerServiceHandler) RecordTransaction(context.Context, *connect.Request[api.RecordTransactionRequest]) (*connect.Response[api.RecordTransactionResponse], error) {
	return nil, unimplemented(LedgerServiceRecordTransactionProcedure)
}

func (UnimplementedLedgerServiceHandler) ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	return nil, unimplemented(LedgerServiceListTransactionsProcedure)
}

func (UnimplementedLedgerServiceHandler) DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	return nil, unimplemented(LedgerServiceDeleteTransactionProcedure)
}

func (UnimplementedLedgerServiceHandler) GetStandings(context.Context, *connect.Request[api.GetStandingsRequest]) (*connect.Response[api.GetStandingsResponse], error) {
	return nil, unimplemented(LedgerServiceGetStandingsProcedure)
}

func (UnimplementedLedgerServiceHandler) SuggestSettlements(context.Context, *connect.Request[api.SuggestSettlementsRequest]) (*connect.Response[api.SuggestSettlementsResponse], error) {
	return nil, unimplemented(LedgerServiceSuggestSettlementsProcedure)
}
