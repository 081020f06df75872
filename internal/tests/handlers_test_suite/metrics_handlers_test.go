package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/inventory-store/internal/http"
	handler "github.com/rogerio-castellano/inventory-store/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-store/internal/inventory"
	"github.com/rogerio-castellano/inventory-store/internal/metrics"
	"github.com/rogerio-castellano/inventory-store/internal/repo"
)

func TestDashboardMetricsHandler(t *testing.T) {
	r := setupTestServer()
	t.Cleanup(clearAll)

	// 2 of 3 items below the threshold
	addItem(r, "keyboard", 10)
	addItem(r, "mouse", 1)
	addItem(r, "monitor", 2)

	// 3 more movements for mouse
	for range 3 {
		if w := addItem(r, "mouse", 1); w.Code != http.StatusOK {
			t.Fatalf("failed to add: %d", w.Code)
		}
	}

	w := get(r, "/metrics/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var m repo.Metrics
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("failed to decode metrics: %v", err)
	}

	if m.TotalItems != 3 {
		t.Errorf("expected 3 items, got %v", m.TotalItems)
	}
	if m.TotalUnits != 10+4+2 {
		t.Errorf("expected 16 units, got %v", m.TotalUnits)
	}
	if m.TotalMovements != 6 {
		t.Errorf("expected 6 movements, got %v", m.TotalMovements)
	}
	if m.LowStockCount != 2 {
		t.Errorf("expected 2 low stock items, got %v", m.LowStockCount)
	}
	if m.LowStockThreshold != testThreshold {
		t.Errorf("expected threshold %d, got %v", testThreshold, m.LowStockThreshold)
	}

	mp := m.MostMovedItem
	if mp.Name != "mouse" {
		t.Errorf("expected mouse as most moved, got %v", mp.Name)
	}
	if mp.MovementCount != 4 {
		t.Errorf("expected 4 movements, got %v", mp.MovementCount)
	}
}

func TestPrometheusMetricsEndpoint(t *testing.T) {
	collector := metrics.New()
	srv := handler.NewServer(handler.Options{
		Inventory:   inventory.FromItems(inventory.Item{Name: "apple", Quantity: 3}),
		Repository:  repo.NewInMemoryInventoryRepository(),
		Collector:   collector,
		LowStockMin: testThreshold,
	})
	r := api.NewRouter(srv, api.RouterOptions{Collector: collector})

	addItem(r, "banana", 10)
	removeItem(r, "grape", 1)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		"inventory_items 2",
		"inventory_units 13",
		"inventory_low_stock_items 1",
		`inventory_mutations_total{operation="add",result="ok"} 1`,
		`inventory_mutations_total{operation="remove",result="missing"} 1`,
		`http_requests_total{endpoint="/items/{item}/add",method="POST",status="200"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected exposition to contain %q", want)
		}
	}
}
