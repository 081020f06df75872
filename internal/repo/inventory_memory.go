package repo

import "github.com/rogerio-castellano/inventory-store/internal/inventory"

// InMemoryInventoryRepository is an in-memory implementation of InventoryRepository.
type InMemoryInventoryRepository struct {
	saved *inventory.Inventory
	saves int
}

// NewInMemoryInventoryRepository creates a new instance of InMemoryInventoryRepository.
func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{}
}

// Load returns a copy of the last saved inventory.
func (r *InMemoryInventoryRepository) Load() (*inventory.Inventory, LoadStatus, error) {
	if r.saved == nil {
		return inventory.New(), LoadMissing, nil
	}
	return r.saved.Clone(), LoadOK, nil
}

// Save keeps a copy of inv.
func (r *InMemoryInventoryRepository) Save(inv *inventory.Inventory) error {
	if inv == nil {
		inv = inventory.New()
	}
	r.saved = inv.Clone()
	r.saves++
	return nil
}

// Saves returns how many times Save was called.
func (r *InMemoryInventoryRepository) Saves() int {
	return r.saves
}

// Clear forgets the saved inventory and resets the save count.
func (r *InMemoryInventoryRepository) Clear() {
	r.saved = nil
	r.saves = 0
}
