package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rogerio-castellano/inventory-store/internal/inventory"
	"github.com/rogerio-castellano/inventory-store/internal/repo"
	"github.com/rogerio-castellano/inventory-store/internal/report"
	"github.com/rogerio-castellano/inventory-store/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCommand(a *app) *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print low stock items every time the inventory file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = a.cfg.Inventory.LowStockThreshold
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.watch(ctx, cmd, threshold)
		},
	}

	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "Exclusive upper bound (default from config)")
	return cmd
}

func (a *app) watch(ctx context.Context, cmd *cobra.Command, threshold int) error {
	inv, r, err := a.load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.PrintLowStock(out, inv.Below(threshold), threshold); err != nil {
		return err
	}

	w := watch.New(r.Path(), r, a.cfg.Watch.Debounce, func(inv *inventory.Inventory, status repo.LoadStatus) {
		_ = report.PrintLowStock(out, inv.Below(threshold), threshold)
	}, a.log.WithComponent("watch"))
	return w.Run(ctx)
}
