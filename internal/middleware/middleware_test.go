package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/pokerledger/internal/metrics"
)

func TestCORS(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	t.Run("preflight is answered directly", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if called {
			t.Error("Expected preflight not to reach the next handler")
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Allow-Origin = %q, want *", got)
		}
	})

	t.Run("other methods pass through", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		if !called {
			t.Error("Expected POST to reach the next handler")
		}
	})
}

func TestLoggingInterceptorRecordsDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	interceptor := LoggingInterceptor(m)

	ok := interceptor(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&struct{}{}), nil
	})
	failing := interceptor(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("missing"))
	})

	req := connect.NewRequest(&struct{}{})
	if _, err := ok(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := failing(context.Background(), req); connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("Expected NotFound to pass through, got %v", err)
	}

	if got := testutil.CollectAndCount(m.RPCDuration); got != 2 {
		t.Errorf("Expected 2 label sets observed, got %d", got)
	}
}

func TestLoggingInterceptorNilMetrics(t *testing.T) {
	next := LoggingInterceptor(nil)(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, errors.New("boom")
	})
	if _, err := next(context.Background(), connect.NewRequest(&struct{}{})); err == nil {
		t.Error("Expected error to be returned")
	}
}
