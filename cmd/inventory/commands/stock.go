package commands

import (
	"fmt"
	"strconv"

	"github.com/rogerio-castellano/inventory-store/internal/report"
	"github.com/spf13/cobra"
)

func newAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <item> <quantity>",
		Short: "Add stock of an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			inv, r, err := a.load()
			if err != nil {
				return err
			}
			store := a.store(inv)
			if err := store.Add(args[0], qty); err != nil {
				return err
			}
			if err := r.Save(inv); err != nil {
				return err
			}
			return report.PrintQuantity(cmd.OutOrStdout(), args[0], store.Get(args[0]))
		},
	}
}

func newRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item> <quantity>",
		Short: "Remove stock of an item, deleting it when depleted",
		Long: `Remove takes quantity out of an item's stock. When the quantity reaches
or exceeds the current stock the item is deleted. Removing an unknown item
only logs a warning.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			inv, r, err := a.load()
			if err != nil {
				return err
			}
			store := a.store(inv)
			if !store.Remove(args[0], qty) {
				return nil
			}
			if err := r.Save(inv); err != nil {
				return err
			}
			return report.PrintQuantity(cmd.OutOrStdout(), args[0], store.Get(args[0]))
		},
	}
}

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <item>",
		Short: "Print the stock of an item (0 when unknown)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, _, err := a.load()
			if err != nil {
				return err
			}
			return report.PrintQuantity(cmd.OutOrStdout(), args[0], a.store(inv).Get(args[0]))
		},
	}
}

func newLowCommand(a *app) *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "low",
		Short: "List items below the low stock threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = a.cfg.Inventory.LowStockThreshold
			}
			if threshold < 0 {
				return fmt.Errorf("threshold must be zero or positive")
			}

			inv, _, err := a.load()
			if err != nil {
				return err
			}
			return report.PrintLowStock(cmd.OutOrStdout(), a.store(inv).LowStock(threshold), threshold)
		},
	}

	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "Exclusive upper bound (default from config)")
	return cmd
}

func parseQuantity(s string) (int, error) {
	qty, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}
	return qty, nil
}
