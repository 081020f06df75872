package handlers

import (
	"net/http"
	"sync"

	"github.com/rogerio-castellano/inventory-store/internal/auth"
	"github.com/rogerio-castellano/inventory-store/internal/inventory"
	"github.com/rogerio-castellano/inventory-store/internal/metrics"
	"github.com/rogerio-castellano/inventory-store/internal/repo"
	"go.uber.org/zap"
)

// Options wires a Server to its collaborators. Movements and Collector may be nil.
type Options struct {
	Inventory   *inventory.Inventory
	Repository  repo.InventoryRepository
	Movements   repo.MovementRepository
	Collector   *metrics.Collector
	LowStockMin int
	Logger      *zap.SugaredLogger
}

// Server serves one inventory. Every request holds mu, and every successful
// mutation is written through the repository before the response is sent.
type Server struct {
	mu        sync.Mutex
	inv       *inventory.Inventory
	store     *inventory.Store
	repo      repo.InventoryRepository
	movements repo.MovementRepository
	collector *metrics.Collector
	threshold int
	log       *zap.SugaredLogger
}

// NewServer builds a Server from opts. A nil Logger discards logs and a nil
// Inventory starts empty.
func NewServer(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	inv := opts.Inventory
	if inv == nil {
		inv = inventory.New()
	}

	s := &Server{
		repo:      opts.Repository,
		movements: opts.Movements,
		collector: opts.Collector,
		threshold: opts.LowStockMin,
		log:       log,
	}
	s.reset(inv)
	return s
}

// Replace swaps the served inventory, for example after the file changed on disk.
func (s *Server) Replace(inv *inventory.Inventory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(inv)
}

// Snapshot returns a copy of the served inventory.
func (s *Server) Snapshot() *inventory.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Clone()
}

func (s *Server) reset(inv *inventory.Inventory) {
	s.inv = inv
	s.store = inventory.NewStore(inv, s.log)
	s.observe()
}

func (s *Server) observe() {
	if s.collector != nil {
		s.collector.ObserveInventory(s.inv, s.threshold)
	}
}

func (s *Server) countMutation(operation, result string) {
	if s.collector != nil {
		s.collector.CountMutation(operation, result)
	}
}

// commit persists the inventory after a mutation. On failure the previous
// state is restored so memory and file stay in agreement.
func (s *Server) commit(previous *inventory.Inventory) error {
	if s.repo != nil {
		if err := s.repo.Save(s.inv); err != nil {
			s.log.Errorw("Failed to save inventory", "error", err)
			s.reset(previous)
			return err
		}
	}
	s.observe()
	return nil
}

// logMovement records delta for item. The token subject, if any, goes to the log.
func (s *Server) logMovement(r *http.Request, item string, delta int) {
	if s.movements == nil || delta == 0 {
		return
	}
	if err := s.movements.Log(item, delta); err != nil {
		s.log.Warnw("Failed to log movement", "item", item, "error", err)
		return
	}
	s.log.Debugw("Movement recorded", "item", item, "delta", delta, "subject", auth.SubjectFromContext(r.Context()))
}
