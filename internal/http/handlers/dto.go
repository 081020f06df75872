package handlers

import "github.com/rogerio-castellano/inventory-store/internal/exchange"

type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

type ItemResponse struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	LowStock bool   `json:"low_stock,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ItemsResult struct {
	Data []ItemResponse `json:"data"`
	Meta Meta           `json:"meta,omitempty"`
}

type LowStockResult struct {
	Threshold int      `json:"threshold"`
	Items     []string `json:"items"`
}

type MovementResponse struct {
	ID        int    `json:"id"`
	Item      string `json:"item"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type ImportItemsResult struct {
	ImportedItemsCount int                 `json:"imported"`
	Errors             []exchange.RowError `json:"errors"`
}
