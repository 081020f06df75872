package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/inventory-store/internal/exchange"
)

// ImportItemsHandler applies a multipart CSV upload (field "file") to the
// inventory. The mode query parameter is "add" (default) or "replace".
// @Summary Import items from a CSV file
// @Tags exchange
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file with item and quantity columns"
// @Param mode query string false "Import mode (add or replace)"
// @Success 200 {object} ImportItemsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /import [post]
func (s *Server) ImportItemsHandler(w http.ResponseWriter, r *http.Request) {
	mode, err := exchange.ParseImportMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := exchange.ReadCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.inv.Clone()
	result := exchange.Import(s.store, rows, mode)

	if result.Imported > 0 {
		if err := s.commit(previous); err != nil {
			s.countMutation("import", "error")
			http.Error(w, "could not save inventory", http.StatusInternalServerError)
			return
		}
		for _, it := range s.inv.Items() {
			before, _ := previous.Get(it.Name)
			s.logMovement(r, it.Name, it.Quantity-before)
		}
		for _, name := range previous.Names() {
			if _, ok := s.inv.Get(name); !ok {
				before, _ := previous.Get(name)
				s.logMovement(r, name, -before)
			}
		}
	}
	s.countMutation("import", "ok")

	err = writeJSON(w, http.StatusOK, ImportItemsResult{
		ImportedItemsCount: result.Imported,
		Errors:             result.Errors,
	})
	if err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}

// ExportItemsHandler writes the inventory as csv, json or yaml, chosen by
// the format query parameter (json by default).
// @Summary Export the inventory
// @Tags exchange
// @Produce json
// @Param format query string false "Export format (csv, json or yaml)"
// @Success 200 {file} file
// @Failure 400 {string} string "Unknown format"
// @Router /export [get]
func (s *Server) ExportItemsHandler(w http.ResponseWriter, r *http.Request) {
	str := r.URL.Query().Get("format")
	if str == "" {
		str = string(exchange.FormatJSON)
	}
	format, err := exchange.ParseFormat(str)
	if err != nil {
		http.Error(w, exchange.ErrUnknownFormat.Error(), http.StatusBadRequest)
		return
	}

	inv := s.Snapshot()

	switch format {
	case exchange.FormatCSV:
		w.Header().Set("Content-Type", "text/csv")
	case exchange.FormatYAML:
		w.Header().Set("Content-Type", "application/yaml")
	default:
		w.Header().Set("Content-Type", "application/json")
	}
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.`+string(format)+`"`)

	if err := exchange.Export(w, inv, format); err != nil {
		s.log.Errorw("Failed to export inventory", "format", format, "error", err)
	}
}
