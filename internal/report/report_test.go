package report

import (
	"bytes"
	"testing"

	"github.com/rogerio-castellano/inventory-store/internal/inventory"
	"github.com/rogerio-castellano/inventory-store/internal/repo"
)

func TestPrintItems(t *testing.T) {
	tests := []struct {
		name     string
		inv      *inventory.Inventory
		expected string
	}{
		{
			name: "Items in insertion order",
			inv: inventory.FromItems(
				inventory.Item{Name: "banana", Quantity: 20},
				inventory.Item{Name: "apple", Quantity: 7},
			),
			expected: "\n--- Items Report ---\nbanana -> 20\napple -> 7\n--------------------\n\n",
		},
		{
			name:     "Empty inventory",
			inv:      inventory.New(),
			expected: "\n--- Items Report ---\nInventory is empty.\n--------------------\n\n",
		},
		{
			name:     "Nil inventory",
			inv:      nil,
			expected: "\n--- Items Report ---\nInventory is empty.\n--------------------\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := PrintItems(&buf, tt.inv); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestPrintLowStock(t *testing.T) {
	var buf bytes.Buffer
	_ = PrintLowStock(&buf, []string{"a", "c"}, 5)
	if buf.String() != "Low items (below 5): [a, c]\n" {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	_ = PrintLowStock(&buf, []string{}, 5)
	if buf.String() != "Low items (below 5): []\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestPrintMetrics(t *testing.T) {
	var buf bytes.Buffer
	_ = PrintMetrics(&buf, repo.Metrics{TotalItems: 2, TotalUnits: 27, LowStockCount: 1, LowStockThreshold: 5})

	expected := "Items: 2\nUnits: 27\nLow stock (below 5): 1\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}
