package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/inventory-store/internal/inventory"
)

// GetItemsHandler lists every item in insertion order.
// @Summary List all items in insertion order
// @Tags items
// @Produce json
// @Success 200 {object} ItemsResult
// @Router /items [get]
func (s *Server) GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	items := s.inv.Items()
	s.mu.Unlock()

	response := ItemsResult{
		Data: make([]ItemResponse, len(items)),
		Meta: Meta{TotalCount: len(items)},
	}
	for i, it := range items {
		response.Data[i] = ItemResponse{
			Item:     it.Name,
			Quantity: it.Quantity,
			LowStock: it.Quantity < s.threshold,
		}
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		s.log.Errorw("Failed to write JSON response", "error", err)
	}
}

// GetItemHandler returns the stock of one item. Unknown items report zero.
// @Summary Get the stock of an item
// @Tags items
// @Produce json
// @Param item path string true "Item name"
// @Success 200 {object} ItemResponse
// @Router /items/{item} [get]
func (s *Server) GetItemHandler(w http.ResponseWriter, r *http.Request) {
	item := itemParam(r)

	s.mu.Lock()
	qty, ok := s.inv.Get(item)
	s.mu.Unlock()

	resp := ItemResponse{Item: item, Quantity: qty}
	if ok {
		resp.LowStock = qty < s.threshold
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		s.log.Errorw("Failed to write JSON response", "error", err)
	}
}

// AddItemHandler adds the requested quantity to an item, creating it if needed.
// @Summary Add stock to an item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item path string true "Item name"
// @Param quantity body QuantityRequest true "Quantity to add"
// @Success 200 {object} ItemResponse
// @Failure 400 {array} ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /items/{item}/add [post]
func (s *Server) AddItemHandler(w http.ResponseWriter, r *http.Request) {
	item := itemParam(r)

	req, ok := s.readQuantity(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.inv.Clone()
	before := s.store.Get(item)
	if err := s.store.Add(item, req.Quantity); err != nil {
		s.countMutation("add", "invalid")
		if errors.Is(err, inventory.ErrEmptyItemName) {
			http.Error(w, "item name cannot be empty", http.StatusBadRequest)
			return
		}
		http.Error(w, "could not add item", http.StatusInternalServerError)
		return
	}

	if err := s.commit(previous); err != nil {
		s.countMutation("add", "error")
		http.Error(w, "could not save inventory", http.StatusInternalServerError)
		return
	}
	s.countMutation("add", "ok")

	after := s.store.Get(item)
	s.logMovement(r, item, after-before)
	s.writeItem(w, item)
}

// RemoveItemHandler takes the requested quantity out of an item's stock.
// @Summary Remove stock from an item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item path string true "Item name"
// @Param quantity body QuantityRequest true "Quantity to remove"
// @Success 200 {object} ItemResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Item not found"
// @Failure 500 {string} string "Internal error"
// @Router /items/{item}/remove [post]
func (s *Server) RemoveItemHandler(w http.ResponseWriter, r *http.Request) {
	item := itemParam(r)

	req, ok := s.readQuantity(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.inv.Clone()
	before := s.store.Get(item)
	if !s.store.Remove(item, req.Quantity) {
		s.countMutation("remove", "missing")
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	if err := s.commit(previous); err != nil {
		s.countMutation("remove", "error")
		http.Error(w, "could not save inventory", http.StatusInternalServerError)
		return
	}
	s.countMutation("remove", "ok")

	after := s.store.Get(item)
	s.logMovement(r, item, after-before)
	s.writeItem(w, item)
}

// GetLowStockHandler lists items strictly below the threshold query
// parameter, or below the configured threshold when it is absent.
// @Summary List items below a threshold
// @Tags items
// @Produce json
// @Param threshold query int false "Exclusive upper bound"
// @Success 200 {object} LowStockResult
// @Failure 400 {string} string "Invalid threshold"
// @Router /low-stock [get]
func (s *Server) GetLowStockHandler(w http.ResponseWriter, r *http.Request) {
	threshold := s.threshold
	if str := r.URL.Query().Get("threshold"); str != "" {
		v, err := strconv.Atoi(str)
		if err != nil {
			http.Error(w, "invalid threshold format", http.StatusBadRequest)
			return
		}
		if v < 0 {
			http.Error(w, "threshold must be zero or positive", http.StatusBadRequest)
			return
		}
		threshold = v
	}

	s.mu.Lock()
	names := s.store.LowStock(threshold)
	s.mu.Unlock()

	if err := writeJSON(w, http.StatusOK, LowStockResult{Threshold: threshold, Items: names}); err != nil {
		s.log.Errorw("Failed to write JSON response", "error", err)
	}
}

func (s *Server) readQuantity(w http.ResponseWriter, r *http.Request) (QuantityRequest, bool) {
	var req QuantityRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return req, false
	}

	if validationErrors := validateQuantity(req); len(validationErrors) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return req, false
	}
	return req, true
}

// writeItem must be called with mu held.
func (s *Server) writeItem(w http.ResponseWriter, item string) {
	qty, ok := s.inv.Get(item)
	resp := ItemResponse{Item: item, Quantity: qty}
	if ok {
		resp.LowStock = qty < s.threshold
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		s.log.Errorw("Failed to write JSON response", "error", err)
	}
}
