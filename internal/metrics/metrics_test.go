package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.GamesRecorded.Inc()
	m.ValidationRejections.WithLabelValues("unbalanced").Inc()
	m.ValidationRejections.WithLabelValues("unbalanced").Inc()
	m.IntegrityWarnings.Set(3)

	if got := testutil.ToFloat64(m.GamesRecorded); got != 1 {
		t.Errorf("GamesRecorded = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ValidationRejections.WithLabelValues("unbalanced")); got != 2 {
		t.Errorf("ValidationRejections[unbalanced] = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.IntegrityWarnings); got != 3 {
		t.Errorf("IntegrityWarnings = %v, want 3", got)
	}
}

func TestNewRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	defer func() {
		if recover() == nil {
			t.Error("Expected second registration on the same registry to panic")
		}
	}()
	New(reg)
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.TransactionsRecorded.Inc()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "pokerledger_transactions_recorded_total 1") {
		t.Errorf("Expected transactions counter in output, got:\n%s", body)
	}
}
