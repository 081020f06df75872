package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rogerio-castellano/inventory-store/internal/inventory"
)

func TestObserveInventory(t *testing.T) {
	c := New()
	inv := inventory.FromItems(
		inventory.Item{Name: "apple", Quantity: 7},
		inventory.Item{Name: "kiwi", Quantity: 2},
	)

	c.ObserveInventory(inv, 5)

	if got := testutil.ToFloat64(c.items); got != 2 {
		t.Errorf("expected 2 items, got %v", got)
	}
	if got := testutil.ToFloat64(c.units); got != 9 {
		t.Errorf("expected 9 units, got %v", got)
	}
	if got := testutil.ToFloat64(c.lowStock); got != 1 {
		t.Errorf("expected 1 low stock item, got %v", got)
	}
}

func TestCountMutation(t *testing.T) {
	c := New()
	c.CountMutation("add", "ok")
	c.CountMutation("add", "ok")
	c.CountMutation("remove", "missing")

	if got := testutil.ToFloat64(c.mutations.WithLabelValues("add", "ok")); got != 2 {
		t.Errorf("expected 2 adds, got %v", got)
	}
	if got := testutil.ToFloat64(c.mutations.WithLabelValues("remove", "missing")); got != 1 {
		t.Errorf("expected 1 missing remove, got %v", got)
	}
}

func TestMiddlewareAndHandler(t *testing.T) {
	c := New()
	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/items/{item}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Method(http.MethodGet, "/metrics", c.Handler())

	req := httptest.NewRequest(http.MethodGet, "/items/apple", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues("GET", "/items/{item}", "418")); got != 1 {
		t.Errorf("expected 1 request recorded by route pattern, got %v", got)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Errorf("expected exposition to contain http_requests_total")
	}
}
