package commands

import (
	"fmt"

	"github.com/rogerio-castellano/inventory-store/internal/inventory"
	"github.com/rogerio-castellano/inventory-store/internal/report"
	"github.com/spf13/cobra"
)

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a short scenario against the inventory file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, r, err := a.load()
			if err != nil {
				return err
			}
			store := a.store(inv)
			out := cmd.OutOrStdout()

			_ = store.Add("apple", 10)
			_ = store.Add("banana", 20)
			_ = store.Add("", 10) // rejected and logged
			store.Remove("apple", 3)
			store.Remove("orange", 1) // unknown, logged

			fmt.Fprintf(out, "Apple stock: %d\n", store.Get("apple"))
			if err := report.PrintLowStock(out, store.LowStock(inventory.DefaultLowStockThreshold), inventory.DefaultLowStockThreshold); err != nil {
				return err
			}
			if err := report.PrintItems(out, inv); err != nil {
				return err
			}
			if err := r.Save(inv); err != nil {
				return err
			}
			fmt.Fprintln(out, "Script finished safely.")
			return nil
		},
	}
}
