package apiconnect

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/pokerledger/pkg/api"
)

func TestCodec(t *testing.T) {
	var c Codec

	data, err := c.Marshal(&api.CreatePlayerRequest{Name: "Alice"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"name":"Alice"}` {
		t.Errorf("Marshal = %s", data)
	}

	var req api.DeletePlayerRequest
	if err := c.Unmarshal(nil, &req); err != nil {
		t.Errorf("Expected empty payload to decode, got %v", err)
	}
	if err := c.Unmarshal([]byte(`{"player_id":`), &req); err == nil {
		t.Error("Expected error for truncated payload")
	}
}

type stubLedger struct {
	UnimplementedLedgerServiceHandler
}

func (stubLedger) CreatePlayer(_ context.Context, req *connect.Request[api.CreatePlayerRequest]) (*connect.Response[api.CreatePlayerResponse], error) {
	return connect.NewResponse(&api.CreatePlayerResponse{
		Player: &api.Player{ID: "p1", Name: req.Msg.Name},
	}), nil
}

func TestHandlerAndClient(t *testing.T) {
	path, handler := NewLedgerServiceHandler(stubLedger{})
	if path != "/pokerledger.v1.LedgerService/" {
		t.Errorf("path = %q", path)
	}
	server := httptest.NewServer(handler)
	defer server.Close()

	client := NewLedgerServiceClient(server.Client(), server.URL)
	ctx := context.Background()

	resp, err := client.CreatePlayer(ctx, connect.NewRequest(&api.CreatePlayerRequest{Name: "Alice"}))
	if err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	if resp.Msg.Player.ID != "p1" || resp.Msg.Player.Name != "Alice" {
		t.Errorf("Unexpected player: %+v", resp.Msg.Player)
	}

	_, err = client.ListGames(ctx, connect.NewRequest(&api.ListGamesRequest{}))
	if connect.CodeOf(err) != connect.CodeUnimplemented {
		t.Errorf("Expected Unimplemented, got %v", err)
	}
}

func TestHandlerPlainJSON(t *testing.T) {
	_, handler := NewLedgerServiceHandler(stubLedger{})

	req := httptest.NewRequest("POST", LedgerServiceCreatePlayerProcedure, strings.NewReader(`{"name":"Bob"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `"name":"Bob"`) {
		t.Errorf("Unexpected body: %s", rec.Body)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/pokerledger.v1.LedgerService/Nope", nil))
	if rec.Code != 404 {
		t.Errorf("Expected 404 for unknown procedure, got %d", rec.Code)
	}
}

func TestIsLedgerServicePath(t *testing.T) {
	if !IsLedgerServicePath(LedgerServiceGetStandingsProcedure) {
		t.Error("Expected procedure path to match")
	}
	if IsLedgerServicePath("/index.html") {
		t.Error("Expected static path not to match")
	}
}
