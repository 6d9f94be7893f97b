package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/pokerledger/internal/config"
	"github.com/mmynk/pokerledger/internal/metrics"
	"github.com/mmynk/pokerledger/internal/middleware"
	"github.com/mmynk/pokerledger/internal/service"
	"github.com/mmynk/pokerledger/internal/storage"
	"github.com/mmynk/pokerledger/internal/storage/redisstore"
	"github.com/mmynk/pokerledger/internal/storage/sqlite"
	"github.com/mmynk/pokerledger/pkg/api/apiconnect"
	"github.com/mmynk/pokerledger/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup()
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	svc, err := service.NewLedgerService(&service.Config{
		Store:   store,
		Metrics: m,
	})
	if err != nil {
		return fmt.Errorf("failed to create ledger service: %w", err)
	}

	handler, err := newHandler(cfg, svc, m, reg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr: cfg.Addr(),
		// Wrap with h2c for HTTP/2 without TLS (required for Connect)
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// openStore creates the storage backend named by cfg.StoreDriver.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		store, err := redisstore.NewRedis(pingCtx, &redisstore.Config{RedisClient: client})
		if err != nil {
			client.Close()
			return nil, err
		}
		slog.Info("Storage initialized", "driver", cfg.StoreDriver, "address", cfg.RedisAddr, "db", cfg.RedisDB)
		return store, nil
	default:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "driver", cfg.StoreDriver, "database", cfg.DBPath)
		return store, nil
	}
}

// newHandler builds the HTTP routes: the Connect service, health and metrics
// endpoints, and optionally a static file directory.
func newHandler(cfg *config.Config, svc apiconnect.LedgerServiceHandler, m *metrics.Metrics, gatherer prometheus.Gatherer) (http.Handler, error) {
	mux := http.NewServeMux()

	// Register Connect service
	path, ledgerHandler := apiconnect.NewLedgerServiceHandler(svc,
		connect.WithInterceptors(middleware.LoggingInterceptor(m)),
	)
	mux.Handle(path, ledgerHandler)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		mux.Handle("/metrics", metrics.Handler(gatherer))
	}

	if cfg.StaticPath != "" {
		staticHandler, err := newStaticHandler(cfg.StaticPath)
		if err != nil {
			return nil, err
		}
		mux.Handle("/", staticHandler)
	}

	// Add logging and CORS middleware
	return middleware.Logging(middleware.CORS(mux)), nil
}

// newStaticHandler serves files from dir, falling back to index.html for unknown paths.
func newStaticHandler(dir string) (http.Handler, error) {
	staticDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiconnect.IsLedgerServicePath(r.URL.Path) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))

		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	}), nil
}
