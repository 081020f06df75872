// Package report renders inventories as plain text for the console.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rogerio-castellano/inventory-store/internal/inventory"
	"github.com/rogerio-castellano/inventory-store/internal/repo"
)

const (
	header = "--- Items Report ---"
	footer = "--------------------"
)

// PrintItems writes every item as "<item> -> <qty>" between a header and a
// footer, or "Inventory is empty." when there is nothing to list.
func PrintItems(w io.Writer, inv *inventory.Inventory) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n%s\n", header)
	if inv == nil || inv.Len() == 0 {
		fmt.Fprintln(bw, "Inventory is empty.")
	} else {
		for _, it := range inv.Items() {
			fmt.Fprintf(bw, "%s -> %d\n", it.Name, it.Quantity)
		}
	}
	fmt.Fprintf(bw, "%s\n\n", footer)
	return bw.Flush()
}

// PrintLowStock writes the names below threshold on a single line.
func PrintLowStock(w io.Writer, names []string, threshold int) error {
	_, err := fmt.Fprintf(w, "Low items (below %d): [%s]\n", threshold, strings.Join(names, ", "))
	return err
}

// PrintQuantity writes the stock of a single item.
func PrintQuantity(w io.Writer, item string, qty int) error {
	_, err := fmt.Fprintf(w, "%s stock: %d\n", item, qty)
	return err
}

// PrintMetrics writes a short summary of m.
func PrintMetrics(w io.Writer, m repo.Metrics) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Items: %d\n", m.TotalItems)
	fmt.Fprintf(bw, "Units: %d\n", m.TotalUnits)
	fmt.Fprintf(bw, "Low stock (below %d): %d\n", m.LowStockThreshold, m.LowStockCount)
	if m.MostMovedItem.Name != "" {
		fmt.Fprintf(bw, "Most moved: %s (%d movements)\n", m.MostMovedItem.Name, m.MostMovedItem.MovementCount)
	}
	return bw.Flush()
}
