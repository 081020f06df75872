package commands

import (
	"github.com/rogerio-castellano/inventory-store/internal/report"
	"github.com/rogerio-castellano/inventory-store/internal/repo"
	"github.com/spf13/cobra"
)

func newReportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print every item and its quantity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, _, err := a.load()
			if err != nil {
				return err
			}
			return report.PrintItems(cmd.OutOrStdout(), inv)
		},
	}
}

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print item, unit and low stock totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, _, err := a.load()
			if err != nil {
				return err
			}
			m, err := repo.ComputeMetrics(inv, nil, a.cfg.Inventory.LowStockThreshold)
			if err != nil {
				return err
			}
			return report.PrintMetrics(cmd.OutOrStdout(), m)
		},
	}
}
