package inventory

import (
	"errors"

	"go.uber.org/zap"
)

// DefaultLowStockThreshold is the threshold used when none is configured.
const DefaultLowStockThreshold = 5

// ErrEmptyItemName is returned by Add and Set when the item name is empty.
var ErrEmptyItemName = errors.New("item name cannot be empty")

// Store applies the stock mutation rules to an Inventory.
type Store struct {
	inv *Inventory
	log *zap.SugaredLogger
}

// NewStore wraps inv. A nil inv starts an empty inventory and a nil log
// discards every record.
func NewStore(inv *Inventory, log *zap.SugaredLogger) *Store {
	if inv == nil {
		inv = New()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{inv: inv, log: log}
}

// Inventory returns the underlying inventory.
func (s *Store) Inventory() *Inventory {
	return s.inv
}

// Add increments the stock of item by qty, creating the entry at zero first.
// A negative qty is applied as is.
func (s *Store) Add(item string, qty int) error {
	if item == "" {
		s.log.Error("Cannot add an item with an empty name.")
		return ErrEmptyItemName
	}

	current, _ := s.inv.Get(item)
	s.inv.Set(item, current+qty)
	s.log.Infof("Added %d of %s", qty, item)

	if current+qty <= 0 {
		s.log.Warnf("Stock of %s is now %d.", item, current+qty)
	}
	return nil
}

// Remove takes qty of item out of stock. When qty reaches or exceeds the
// current stock the item is deleted. It reports whether the item existed.
func (s *Store) Remove(item string, qty int) bool {
	current, ok := s.inv.Get(item)
	if !ok {
		s.log.Warnf("Attempted to remove '%s' but it does not exist in stock.", item)
		return false
	}

	if current > qty {
		s.inv.Set(item, current-qty)
		s.log.Infof("Removed %d of %s. New stock: %d", qty, item, current-qty)
		return true
	}

	s.inv.Delete(item)
	s.log.Infof("Removed all stock of %s.", item)
	return true
}

// Set replaces the stock of item with qty. A qty of zero or less deletes it.
func (s *Store) Set(item string, qty int) error {
	if item == "" {
		s.log.Error("Cannot set an item with an empty name.")
		return ErrEmptyItemName
	}

	if qty <= 0 {
		if s.inv.Delete(item) {
			s.log.Infof("Removed all stock of %s.", item)
		}
		return nil
	}

	s.inv.Set(item, qty)
	s.log.Infof("Set stock of %s to %d", item, qty)
	return nil
}

// Get returns the stock of item, or 0 when it is not tracked.
func (s *Store) Get(item string) int {
	q, _ := s.inv.Get(item)
	return q
}

// LowStock returns the items whose stock is strictly below threshold.
func (s *Store) LowStock(threshold int) []string {
	return s.inv.Below(threshold)
}
