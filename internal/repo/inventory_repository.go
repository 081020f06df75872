package repo

import "github.com/rogerio-castellano/inventory-store/internal/inventory"

// DefaultInventoryFile is the file used when no path is configured.
const DefaultInventoryFile = "inventory.json"

// LoadStatus tells a caller why Load returned the inventory it did.
type LoadStatus int

const (
	// LoadOK means the inventory was read from storage.
	LoadOK LoadStatus = iota
	// LoadMissing means nothing was stored yet; the inventory is empty.
	LoadMissing
	// LoadCorrupt means the stored data could not be decoded; the inventory is empty.
	LoadCorrupt
	// LoadFailed means storage could not be read; an error is returned with it.
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadCorrupt:
		return "corrupt"
	case LoadFailed:
		return "failed"
	}
	return "unknown"
}

// InventoryRepository defines the interface for inventory persistence.
type InventoryRepository interface {
	Load() (*inventory.Inventory, LoadStatus, error)
	Save(inv *inventory.Inventory) error
}
