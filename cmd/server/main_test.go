package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/pokerledger/internal/config"
	"github.com/mmynk/pokerledger/internal/metrics"
	"github.com/mmynk/pokerledger/internal/service"
	"github.com/mmynk/pokerledger/pkg/api"
	"github.com/mmynk/pokerledger/pkg/api/apiconnect"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:           8080,
		StoreDriver:    config.DriverSQLite,
		DBPath:         filepath.Join(t.TempDir(), "ledger.db"),
		MetricsEnabled: true,
	}
}

func startServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	store, err := openStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("openStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc, err := service.NewLedgerService(&service.Config{Store: store, Metrics: m})
	if err != nil {
		t.Fatalf("NewLedgerService failed: %v", err)
	}

	handler, err := newHandler(cfg, svc, m, reg)
	if err != nil {
		t.Fatalf("newHandler failed: %v", err)
	}

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading %s failed: %v", url, err)
	}
	return resp.StatusCode, string(body)
}

func TestServer_RoutesAndMetrics(t *testing.T) {
	server := startServer(t, testConfig(t))

	client := apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL)
	if _, err := client.CreatePlayer(context.Background(), connect.NewRequest(&api.CreatePlayerRequest{Name: "Alice"})); err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}

	if code, body := get(t, server.URL+"/healthz"); code != http.StatusOK || body != "ok" {
		t.Errorf("/healthz = %d %q", code, body)
	}

	code, body := get(t, server.URL+"/metrics")
	if code != http.StatusOK {
		t.Fatalf("/metrics status = %d", code)
	}
	if !strings.Contains(body, `pokerledger_rpc_duration_seconds_count{code="ok",procedure="/pokerledger.v1.LedgerService/CreatePlayer"} 1`) {
		t.Errorf("expected CreatePlayer observation in metrics, got:\n%s", body)
	}
}

func TestServer_MetricsDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.MetricsEnabled = false
	server := startServer(t, cfg)

	if code, _ := get(t, server.URL+"/metrics"); code != http.StatusNotFound {
		t.Errorf("expected 404 for /metrics, got %d", code)
	}
}

func TestServer_StaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("ledger home"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(t)
	cfg.StaticPath = dir
	server := startServer(t, cfg)

	if _, body := get(t, server.URL+"/app.js"); body != "console.log(1)" {
		t.Errorf("/app.js = %q", body)
	}
	if _, body := get(t, server.URL+"/games/123"); body != "ledger home" {
		t.Errorf("expected index.html fallback, got %q", body)
	}
}

func TestOpenStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig(t)
	cfg.StoreDriver = config.DriverRedis
	cfg.RedisAddr = mr.Addr()

	server := startServer(t, cfg)
	client := apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL)

	if _, err := client.CreatePlayer(context.Background(), connect.NewRequest(&api.CreatePlayerRequest{Name: "Bob"})); err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	resp, err := client.ListPlayers(context.Background(), connect.NewRequest(&api.ListPlayersRequest{}))
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}
	if len(resp.Msg.Players) != 1 || resp.Msg.Players[0].Name != "Bob" {
		t.Errorf("unexpected players: %+v", resp.Msg.Players)
	}
}
