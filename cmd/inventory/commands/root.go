package commands

import (
	"fmt"

	"github.com/rogerio-castellano/inventory-store/internal/config"
	"github.com/rogerio-castellano/inventory-store/internal/inventory"
	"github.com/rogerio-castellano/inventory-store/internal/logger"
	"github.com/rogerio-castellano/inventory-store/internal/repo"
	"github.com/spf13/cobra"
)

// app carries the state shared by every command once the root pre-run has
// loaded configuration.
type app struct {
	configPath string
	file       string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *logger.Logger
}

// NewRootCommand creates the inventory command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "inventory",
		Short: "Track item quantities in a JSON file",
		Long: `inventory keeps an ordered list of items and their quantities in a JSON file.
Stock can be added, removed, queried, reported, imported, exported and served over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Close()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (yaml, json or toml)")
	flags.StringVarP(&a.file, "file", "f", "", "Inventory file (default inventory.json)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format (console, json)")

	rootCmd.AddCommand(newAddCommand(a))
	rootCmd.AddCommand(newRemoveCommand(a))
	rootCmd.AddCommand(newGetCommand(a))
	rootCmd.AddCommand(newLowCommand(a))
	rootCmd.AddCommand(newReportCommand(a))
	rootCmd.AddCommand(newSummaryCommand(a))
	rootCmd.AddCommand(newImportCommand(a))
	rootCmd.AddCommand(newExportCommand(a))
	rootCmd.AddCommand(newWatchCommand(a))
	rootCmd.AddCommand(newServeCommand(a))
	rootCmd.AddCommand(newTokenCommand(a))
	rootCmd.AddCommand(newDemoCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.file != "" {
		cfg.Inventory.File = a.file
	}
	if a.logLevel != "" {
		cfg.Logger.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logger.Format = a.logFormat
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.log = log
	return nil
}

func (a *app) repository() *repo.FileInventoryRepository {
	return repo.NewFileInventoryRepository(a.cfg.Inventory.File, a.log.WithComponent("repo"))
}

// load reads the inventory file. Missing and corrupt files start empty.
func (a *app) load() (*inventory.Inventory, *repo.FileInventoryRepository, error) {
	r := a.repository()
	inv, _, err := r.Load()
	if err != nil {
		return nil, nil, err
	}
	return inv, r, nil
}

func (a *app) store(inv *inventory.Inventory) *inventory.Store {
	return inventory.NewStore(inv, a.log.WithComponent("store"))
}
