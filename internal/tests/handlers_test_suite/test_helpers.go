package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"

	api "github.com/rogerio-castellano/inventory-store/internal/http"
	handler "github.com/rogerio-castellano/inventory-store/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-store/internal/inventory"
	"github.com/rogerio-castellano/inventory-store/internal/metrics"
	"github.com/rogerio-castellano/inventory-store/internal/repo"
)

const testThreshold = inventory.DefaultLowStockThreshold

var (
	inventoryRepo *repo.InMemoryInventoryRepository
	movementRepo  *repo.InMemoryMovementRepository
	server        *handler.Server
)

// setupTestServer builds a router over a fresh inventory seeded with items.
func setupTestServer(items ...inventory.Item) http.Handler {
	inventoryRepo = repo.NewInMemoryInventoryRepository()
	movementRepo = repo.NewInMemoryMovementRepository()
	server = handler.NewServer(handler.Options{
		Inventory:   inventory.FromItems(items...),
		Repository:  inventoryRepo,
		Movements:   movementRepo,
		Collector:   metrics.New(),
		LowStockMin: testThreshold,
	})
	return api.NewRouter(server, api.RouterOptions{})
}

func clearAll() {
	inventoryRepo.Clear()
	movementRepo.Clear()
	server.Replace(inventory.New())
}

type failingRepository struct{}

func (failingRepository) Load() (*inventory.Inventory, repo.LoadStatus, error) {
	return nil, repo.LoadFailed, errors.New("disk unavailable")
}

func (failingRepository) Save(*inventory.Inventory) error {
	return errors.New("disk unavailable")
}

func addItem(r http.Handler, item string, qty int) *httptest.ResponseRecorder {
	return postQuantity(r, fmt.Sprintf("/items/%s/add", url.PathEscape(item)), qty)
}

func removeItem(r http.Handler, item string, qty int) *httptest.ResponseRecorder {
	return postQuantity(r, fmt.Sprintf("/items/%s/remove", url.PathEscape(item)), qty)
}

func postQuantity(r http.Handler, path string, qty int) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.QuantityRequest{Quantity: qty})
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
