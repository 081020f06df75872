package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/inventory-store/internal/auth"
	"github.com/rogerio-castellano/inventory-store/internal/db"
	api "github.com/rogerio-castellano/inventory-store/internal/http"
	"github.com/rogerio-castellano/inventory-store/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-store/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-store/internal/inventory"
	"github.com/rogerio-castellano/inventory-store/internal/metrics"
	"github.com/rogerio-castellano/inventory-store/internal/repo"
	"github.com/rogerio-castellano/inventory-store/internal/watch"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	var addr string
	var memory, watchFile bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the inventory over HTTP",
		Long: `Serve exposes the inventory as a JSON API. Every successful change is written
to the inventory file before the response is sent. Prometheus metrics are
served on /metrics and the API description on /swagger/.

When database.url is configured the movement log is kept in Postgres instead
of memory. When server.jwt_secret is configured the mutating routes require a
bearer token issued by the token command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx, addr, memory, watchFile)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	cmd.Flags().BoolVar(&memory, "memory", false, "Keep the inventory in memory only")
	cmd.Flags().BoolVar(&watchFile, "watch", false, "Reload the inventory when the file is edited externally")
	return cmd
}

func (a *app) serve(ctx context.Context, addr string, memory, watchFile bool) error {
	log := a.log.WithComponent("http")

	var inventoryRepo repo.InventoryRepository
	var inv *inventory.Inventory
	fileRepo := a.repository()
	if memory {
		inventoryRepo = repo.NewInMemoryInventoryRepository()
		inv = inventory.New()
	} else {
		loaded, _, err := fileRepo.Load()
		if err != nil {
			return err
		}
		inventoryRepo = fileRepo
		inv = loaded
	}

	movements, closeMovements, err := a.movementRepository(ctx)
	if err != nil {
		return err
	}
	defer closeMovements()

	var issuer *auth.TokenIssuer
	if a.cfg.Server.JWTSecret != "" {
		issuer, err = auth.NewTokenIssuer(a.cfg.Server.JWTSecret, a.cfg.Server.TokenTTL)
		if err != nil {
			return err
		}
	}

	collector := metrics.New()
	srv := handlers.NewServer(handlers.Options{
		Inventory:   inv,
		Repository:  inventoryRepo,
		Movements:   movements,
		Collector:   collector,
		LowStockMin: a.cfg.Inventory.LowStockThreshold,
		Logger:      a.log.WithComponent("store"),
	})

	limiter := rl.New(a.cfg.Server.RateLimit, a.cfg.Server.RateBurst)
	go limiter.StartVisitorCleanupLoop(ctx, time.Minute, 5*time.Minute)

	if watchFile && !memory {
		w := watch.New(fileRepo.Path(), fileRepo, a.cfg.Watch.Debounce, func(inv *inventory.Inventory, status repo.LoadStatus) {
			srv.Replace(inv)
		}, a.log.WithComponent("watch"))
		go func() {
			if err := w.Run(ctx); err != nil {
				log.Errorw("File watcher stopped", "error", err)
			}
		}()
	}

	httpServer := &http.Server{
		Addr: addr,
		Handler: api.NewRouter(srv, api.RouterOptions{
			Limiter:   limiter,
			Collector: collector,
			Logger:    log,
			Auth:      issuer,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("Server running", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// movementRepository opens the Postgres movement log when a database URL is
// configured and falls back to memory otherwise.
func (a *app) movementRepository(ctx context.Context) (repo.MovementRepository, func(), error) {
	if a.cfg.Database.URL == "" {
		return repo.NewInMemoryMovementRepository(), func() {}, nil
	}

	conn, err := db.Connect(ctx, a.cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	a.log.WithComponent("db").Info("Movement log stored in Postgres")
	return repo.NewPostgresMovementRepository(conn), func() { conn.Close() }, nil
}
