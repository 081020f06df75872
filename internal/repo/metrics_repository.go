package repo

import "github.com/rogerio-castellano/inventory-store/internal/inventory"

type MostMovedItem struct {
	Name          string `json:"name"`
	MovementCount int    `json:"movement_count"`
}

type Metrics struct {
	TotalItems        int           `json:"total_items"`
	TotalUnits        int           `json:"total_units"`
	TotalMovements    int           `json:"total_movements"`
	LowStockCount     int           `json:"low_stock_count"`
	LowStockThreshold int           `json:"low_stock_threshold"`
	MostMovedItem     MostMovedItem `json:"most_moved_item"`
}

// ComputeMetrics summarizes inv. Movement figures stay zero when movements is nil.
func ComputeMetrics(inv *inventory.Inventory, movements MovementRepository, threshold int) (Metrics, error) {
	m := Metrics{
		TotalItems:        inv.Len(),
		TotalUnits:        inv.TotalUnits(),
		LowStockCount:     len(inv.Below(threshold)),
		LowStockThreshold: threshold,
	}

	if movements == nil {
		return m, nil
	}

	for _, name := range inv.Names() {
		_, count, err := movements.GetByItem(name, MovementFilter{})
		if err != nil {
			return m, err
		}
		m.TotalMovements += count
		if count > m.MostMovedItem.MovementCount {
			m.MostMovedItem.Name = name
			m.MostMovedItem.MovementCount = count
		}
	}

	return m, nil
}
