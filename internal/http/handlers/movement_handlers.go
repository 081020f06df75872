package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rogerio-castellano/inventory-store/internal/models"
	"github.com/rogerio-castellano/inventory-store/internal/repo"
)

// GetMovementsHandler returns the movement log of an item, filtered by the
// optional since/until (RFC3339) and paginated by offset/limit. Items that
// were removed keep their history.
// @Summary Get item movement logs
// @Tags movements
// @Produce json
// @Param item path string true "Item name"
// @Param since query string false "Filter movements from this timestamp (RFC3339)"
// @Param until query string false "Filter movements until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /items/{item}/movements [get]
func (s *Server) GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	item := itemParam(r)

	since, until, err := parseDateRange(r)
	if err != nil {
		s.log.Debugw("Invalid date range", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var limit, offset *int

	limitStr := r.URL.Query().Get("limit")
	if limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil {
			limit = &v
		} else {
			http.Error(w, "invalid limit format", http.StatusBadRequest)
			return
		}
	}

	if limit != nil && *limit <= 0 {
		http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
		return
	}

	offsetStr := r.URL.Query().Get("offset")
	if offsetStr != "" {
		if v, err := strconv.Atoi(offsetStr); err == nil {
			offset = &v
		} else {
			http.Error(w, "invalid offset format", http.StatusBadRequest)
			return
		}
	}

	if offset != nil && *offset < 0 {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}

	movements, total, err := s.findMovements(item, repo.MovementFilter{Since: since, Until: until, Offset: offset, Limit: limit})
	if err != nil {
		s.log.Errorw("Could not retrieve movements", "item", item, "error", err)
		http.Error(w, "could not retrieve movements", http.StatusInternalServerError)
		return
	}

	response := MovementsSearchResult{
		Data: make([]MovementResponse, len(movements)),
		Meta: Meta{TotalCount: total},
	}
	for i, m := range movements {
		response.Data[i] = toMovementResponse(m)
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		s.log.Errorw("Failed to write JSON response", "error", err)
	}
}

// ExportMovementsHandler streams an item's movement log as csv or json.
// @Summary Export item movement logs
// @Tags movements
// @Produce text/csv
// @Produce json
// @Param item path string true "Item name"
// @Param format query string true "Export format (csv or json)"
// @Param since query string false "Filter from timestamp (RFC3339)"
// @Param until query string false "Filter until timestamp (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Router /items/{item}/movements/export [get]
func (s *Server) ExportMovementsHandler(w http.ResponseWriter, r *http.Request) {
	item := itemParam(r)

	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	since, until, err := parseDateRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	movements, _, err := s.findMovements(item, repo.MovementFilter{Since: since, Until: until})
	if err != nil {
		http.Error(w, "could not retrieve movements", http.StatusInternalServerError)
		return
	}

	switch format {
	case "json":
		data := make([]MovementResponse, len(movements))
		for i, m := range movements {
			data[i] = toMovementResponse(m)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="movements.json"`)
		json.NewEncoder(w).Encode(data)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="movements.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "item", "delta", "created_at"})
		for _, m := range movements {
			_ = csvWriter.Write([]string{
				strconv.Itoa(m.ID),
				m.Item,
				strconv.Itoa(m.Delta),
				m.CreatedAt.Format(time.RFC3339),
			})
		}
		csvWriter.Flush()
	}
}

func (s *Server) findMovements(item string, mf repo.MovementFilter) ([]models.Movement, int, error) {
	if s.movements == nil {
		return []models.Movement{}, 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.movements.GetByItem(item, mf)
}

func parseDateRange(r *http.Request) (since, until *time.Time, err error) {
	sinceStr := fixQueryTimezone(r.URL.Query().Get("since"))
	untilStr := fixQueryTimezone(r.URL.Query().Get("until"))

	if sinceStr != "" {
		ts, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			return nil, nil, errors.New("invalid since date format")
		}
		since = &ts
	}
	if untilStr != "" {
		ts, err := time.Parse(time.RFC3339, untilStr)
		if err != nil {
			return nil, nil, errors.New("invalid until date format")
		}
		until = &ts
	}
	return since, until, nil
}

// fixQueryTimezone restores the '+' of a timezone offset that query decoding
// turned into a space, e.g. 2025-07-03T17:44:03 02:00.
func fixQueryTimezone(s string) string {
	if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
		return s[:len(s)-6] + "+" + s[len(s)-5:]
	}
	return s
}

func toMovementResponse(m models.Movement) MovementResponse {
	return MovementResponse{
		ID:        m.ID,
		Item:      m.Item,
		Delta:     m.Delta,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}
