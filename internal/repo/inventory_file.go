package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rogerio-castellano/inventory-store/internal/inventory"
	"go.uber.org/zap"
)

// FileInventoryRepository stores an inventory as an indented JSON object in a single file.
type FileInventoryRepository struct {
	path string
	log  *zap.SugaredLogger
}

// NewFileInventoryRepository creates a repository for path, falling back to
// DefaultInventoryFile when path is empty.
func NewFileInventoryRepository(path string, log *zap.SugaredLogger) *FileInventoryRepository {
	if path == "" {
		path = DefaultInventoryFile
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &FileInventoryRepository{path: path, log: log}
}

// Path returns the file the repository reads and writes.
func (r *FileInventoryRepository) Path() string {
	return r.path
}

// Load reads the inventory file. A missing or undecodable file yields an
// empty inventory and no error; the status tells the two apart.
func (r *FileInventoryRepository) Load() (*inventory.Inventory, LoadStatus, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Warnf("File '%s' not found. Starting with empty inventory.", r.path)
			return inventory.New(), LoadMissing, nil
		}
		return nil, LoadFailed, fmt.Errorf("failed to read inventory: %w", err)
	}

	inv := inventory.New()
	if err := json.Unmarshal(data, inv); err != nil {
		r.log.Errorw(fmt.Sprintf("Could not decode JSON from %s. Starting fresh.", r.path), "error", err)
		return inventory.New(), LoadCorrupt, nil
	}

	r.log.Infof("Data loaded successfully from %s.", r.path)
	return inv, LoadOK, nil
}

// Save overwrites the file with inv using four-space indentation.
func (r *FileInventoryRepository) Save(inv *inventory.Inventory) error {
	if inv == nil {
		inv = inventory.New()
	}

	data, err := json.MarshalIndent(inv, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}

	r.log.Infof("Data saved successfully to %s.", r.path)
	return nil
}
