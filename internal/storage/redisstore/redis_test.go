package redisstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mmynk/pokerledger/internal/models"
	"github.com/mmynk/pokerledger/internal/storage"
)

type RedisStoreTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	store  *Store
	ctx    context.Context
}

func (s *RedisStoreTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})
	s.ctx = context.Background()

	store, err := NewRedis(s.ctx, &Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.store = store
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(s.ctx, nil)
	s.Require().Error(err)

	_, err = NewRedis(s.ctx, &Config{})
	s.Require().Error(err)
}

func (s *RedisStoreTestSuite) TestCreateAndListPlayers() {
	alice := &models.Player{Name: "Alice"}
	bob := &models.Player{ID: "bob-id", Name: "Bob", CreatedAt: 42}

	s.Require().NoError(s.store.CreatePlayer(s.ctx, alice))
	s.Require().NoError(s.store.CreatePlayer(s.ctx, bob))

	s.NotEmpty(alice.ID)
	s.NotZero(alice.CreatedAt)
	s.True(s.mr.Exists(playerKeyPrefix + alice.ID))

	players, err := s.store.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal(*alice, players[0])
	s.Equal(models.Player{ID: "bob-id", Name: "Bob", CreatedAt: 42}, players[1])
}

func (s *RedisStoreTestSuite) TestListEmpty() {
	players, err := s.store.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.NotNil(players)
	s.Empty(players)

	games, err := s.store.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)

	transactions, err := s.store.ListTransactions(s.ctx)
	s.Require().NoError(err)
	s.Empty(transactions)
}

func (s *RedisStoreTestSuite) TestGamesNewestFirst() {
	first := &models.GameSession{
		Date: 100,
		Results: []models.PlayerGameResult{
			models.NewPlayerGameResult("a", 100, 150),
			models.NewPlayerGameResult("b", 100, 50),
		},
	}
	second := &models.GameSession{
		Date: 200,
		Results: []models.PlayerGameResult{
			models.NewPlayerGameResult("a", 20, 0),
			models.NewPlayerGameResult("b", 20, 40),
		},
	}
	s.Require().NoError(s.store.CreateGame(s.ctx, first))
	s.Require().NoError(s.store.CreateGame(s.ctx, second))

	games, err := s.store.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal(second.ID, games[0].ID)
	s.Equal(first.ID, games[1].ID)
	s.Equal(first.Results, games[1].Results)
}

func (s *RedisStoreTestSuite) TestTransactionsInRecordedOrder() {
	t1 := &models.Transaction{FromPlayerID: "b", ToPlayerID: "a", Amount: 20}
	t2 := &models.Transaction{FromPlayerID: "a", ToPlayerID: "b", Amount: 5}
	s.Require().NoError(s.store.CreateTransaction(s.ctx, t1))
	s.Require().NoError(s.store.CreateTransaction(s.ctx, t2))

	transactions, err := s.store.ListTransactions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(transactions, 2)
	s.Equal(*t1, transactions[0])
	s.Equal(*t2, transactions[1])
}

func (s *RedisStoreTestSuite) TestDeleteRemovesRecordAndListEntry() {
	player := &models.Player{Name: "Alice"}
	s.Require().NoError(s.store.CreatePlayer(s.ctx, player))

	s.Require().NoError(s.store.DeletePlayer(s.ctx, player.ID))
	s.False(s.mr.Exists(playerKeyPrefix + player.ID))

	players, err := s.store.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *RedisStoreTestSuite) TestDeletePlayerKeepsHistory() {
	player := &models.Player{Name: "Alice"}
	s.Require().NoError(s.store.CreatePlayer(s.ctx, player))
	s.Require().NoError(s.store.CreateGame(s.ctx, &models.GameSession{
		Results: []models.PlayerGameResult{
			models.NewPlayerGameResult(player.ID, 10, 0),
			models.NewPlayerGameResult("b", 10, 20),
		},
	}))

	s.Require().NoError(s.store.DeletePlayer(s.ctx, player.ID))

	games, err := s.store.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(player.ID, games[0].Results[0].PlayerID)
}

func (s *RedisStoreTestSuite) TestDeleteUnknownReturnsNotFound() {
	s.ErrorIs(s.store.DeletePlayer(s.ctx, "missing"), storage.ErrNotFound)
	s.ErrorIs(s.store.DeleteGame(s.ctx, "missing"), storage.ErrNotFound)
	s.ErrorIs(s.store.DeleteTransaction(s.ctx, "missing"), storage.ErrNotFound)
}

func (s *RedisStoreTestSuite) TestListSkipsVanishedRecords() {
	alice := &models.Player{Name: "Alice"}
	bob := &models.Player{Name: "Bob"}
	s.Require().NoError(s.store.CreatePlayer(s.ctx, alice))
	s.Require().NoError(s.store.CreatePlayer(s.ctx, bob))

	// Record removed behind the store's back
	s.mr.Del(playerKeyPrefix + alice.ID)

	players, err := s.store.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal("Bob", players[0].Name)
}

func (s *RedisStoreTestSuite) TestLoadSnapshot() {
	s.Require().NoError(s.store.CreatePlayer(s.ctx, &models.Player{Name: "Alice"}))
	s.Require().NoError(s.store.CreateTransaction(s.ctx, &models.Transaction{FromPlayerID: "a", ToPlayerID: "b", Amount: 1}))

	snap, err := storage.LoadSnapshot(s.ctx, s.store)
	s.Require().NoError(err)
	s.Len(snap.Players, 1)
	s.Empty(snap.Games)
	s.Len(snap.Transactions, 1)
}
