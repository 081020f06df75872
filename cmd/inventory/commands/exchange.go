package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rogerio-castellano/inventory-store/internal/exchange"
	"github.com/spf13/cobra"
)

func newImportCommand(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Apply a CSV file of item,quantity rows to the inventory",
		Long: `Import reads a CSV file whose header names an item (or name) column and a
quantity column. In add mode quantities are added to current stock; in replace
mode they overwrite it, and a quantity of 0 deletes the item. Invalid rows are
reported and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			importMode, err := exchange.ParseImportMode(mode)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open CSV: %w", err)
			}
			defer f.Close()

			rows, err := exchange.ReadCSV(f)
			if err != nil {
				return err
			}

			inv, r, err := a.load()
			if err != nil {
				return err
			}
			result := exchange.Import(a.store(inv), rows, importMode)
			if result.Imported > 0 {
				if err := r.Save(inv); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d rows.\n", result.Imported)
			for _, rowErr := range result.Errors {
				fmt.Fprintln(out, rowErr.Error())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(exchange.ModeAdd), "Import mode (add, replace)")
	return cmd
}

func newExportCommand(a *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the inventory as csv, json or yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := exchange.ParseFormat(format)
			if err != nil {
				return err
			}

			inv, _, err := a.load()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer file.Close()
				w = file
			}
			return exchange.Export(w, inv, f)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(exchange.FormatJSON), "Output format (csv, json, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
