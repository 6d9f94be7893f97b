package apiconnect

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/pokerledger/pkg/api"
)

// LedgerServiceClient is a client for the pokerledger.v1.LedgerService service.
type LedgerServiceClient interface {
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

// NewLedgerServiceClient constructs a client for the pokerledger.v1.LedgerService service.
// Requests are sent with the Connect protocol using the JSON codec.
//
// The URL supplied here should be the base URL for the server (for example,
// http://localhost:8080).
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &ledgerServiceClient{
		createPlayer:        connect.NewClient[api.CreatePlayerRequest, api.CreatePlayerResponse](httpClient, baseURL+LedgerServiceCreatePlayerProcedure, opts...),
		listPlayers:         connect.NewClient[api.ListPlayersRequest, api.ListPlayersResponse](httpClient, baseURL+LedgerServiceListPlayersProcedure, opts...),
		deletePlayer:        connect.NewClient[api.DeletePlayerRequest, api.DeletePlayerResponse](httpClient, baseURL+LedgerServiceDeletePlayerProcedure, opts...),
		checkSessionBalance: connect.NewClient[api.CheckSessionBalanceRequest, api.CheckSessionBalanceResponse](httpClient, baseURL+LedgerServiceCheckSessionBalanceProcedure, opts...),
		recordGame:          connect.NewClient[api.RecordGameRequest, api.RecordGameResponse](httpClient, baseURL+LedgerServiceRecordGameProcedure, opts...),
		listGames:           connect.NewClient[api.ListGamesRequest, api.ListGamesResponse](httpClient, baseURL+LedgerServiceListGamesProcedure, opts...),
		deleteGame:          connect.NewClient[api.DeleteGameRequest, api.DeleteGameResponse](httpClient, baseURL+LedgerServiceDeleteGameProcedure, opts...),
		recordTransaction:   connect.NewClient[api.RecordTransactionRequest, api.RecordTransactionResponse](httpClient, baseURL+LedgerServiceRecordTransactionProcedure, opts...),
		listTransactions:    connect.NewClient[api.ListTransactionsRequest, api.ListTransactionsResponse](httpClient, baseURL+LedgerServiceListTransactionsProcedure, opts...),
		deleteTransaction:   connect.NewClient[api.DeleteTransactionRequest, api.DeleteTransactionResponse](httpClient, baseURL+LedgerServiceDeleteTransactionProcedure, opts...),
		getStandings:        connect.NewClient[api.GetStandingsRequest, api.GetStandingsResponse](httpClient, baseURL+LedgerServiceGetStandingsProcedure, opts...),
		suggestSettlements:  connect.NewClient[api.SuggestSettlementsRequest, api.SuggestSettlementsResponse](httpClient, baseURL+LedgerServiceSuggestSettlementsProcedure, opts...),
	}
}

// ledgerServiceClient implements LedgerServiceClient.
type ledgerServiceClient struct {
	createPlayer        *connect.Client[api.CreatePlayerRequest, api.CreatePlayerResponse]
	listPlayers         *connect.Client[api.ListPlayersRequest, api.ListPlayersResponse]
	deletePlayer        *connect.Client[api.DeletePlayerRequest, api.DeletePlayerResponse]
	checkSessionBalance *connect.Client[api.CheckSessionBalanceRequest, api.CheckSessionBalanceResponse]
	recordGame          *connect.Client[api.RecordGameRequest, api.RecordGameResponse]
	listGames           *connect.Client[api.ListGamesRequest, api.ListGamesResponse]
	deleteGame          *connect.Client[api.DeleteGameRequest, api.DeleteGameResponse]
	recordTransaction   *connect.Client[api.RecordTransactionRequest, api.RecordTransactionResponse]
	listTransactions    *connect.Client[api.ListTransactionsRequest, api.ListTransactionsResponse]
	deleteTransaction   *connect.Client[api.DeleteTransactionRequest, api.DeleteTransactionResponse]
	getStandings        *connect.Client[api.GetStandingsRequest, api.GetStandingsResponse]
	suggestSettlements  *connect.Client[api.SuggestSettlementsRequest, api.SuggestSettlementsResponse]
}

func (c *ledgerServiceClient) CreatePlayer(ctx context.Context, req *connect.Request[api.CreatePlayerRequest]) (*connect.Response[api.CreatePlayerResponse], error) {
	return c.createPlayer.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListPlayers(ctx context.Context, req *connect.Request[api.ListPlayersRequest]) (*connect.Response[api.ListPlayersResponse], error) {
	return c.listPlayers.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeletePlayer(ctx context.Context, req *connect.Request[api.DeletePlayerRequest]) (*connect.Response[api.DeletePlayerResponse], error) {
	return c.deletePlayer.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CheckSessionBalance(ctx context.Context, req *connect.Request[api.CheckSessionBalanceRequest]) (*connect.Response[api.CheckSessionBalanceResponse], error) {
	return c.checkSessionBalance.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RecordGame(ctx context.Context, req *connect.Request[api.RecordGameRequest]) (*connect.Response[api.RecordGameResponse], error) {
	return c.recordGame.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListGames(ctx context.Context, req *connect.Request[api.ListGamesRequest]) (*connect.Response[api.ListGamesResponse], error) {
	return c.listGames.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteGame(ctx context.Context, req *connect.Request[api.DeleteGameRequest]) (*connect.Response[api.DeleteGameResponse], error) {
	return c.deleteGame.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RecordTransaction(ctx context.Context, req *connect.Request[api.RecordTransactionRequest]) (*connect.Response[api.RecordTransactionResponse], error) {
	return c.recordTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	return c.deleteTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetStandings(ctx context.Context, req *connect.Request[api.GetStandingsRequest]) (*connect.Response[api.GetStandingsResponse], error) {
	return c.getStandings.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) SuggestSettlements(ctx context.Context, req *connect.Request[api.SuggestSettlementsRequest]) (*connect.Response[api.SuggestSettlementsResponse], error) {
	return c.suggestSettlements.CallUnary(ctx, req)
}
