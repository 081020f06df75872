package repo

import (
	"time"

	"github.com/rogerio-castellano/inventory-store/internal/models"
)

type InMemoryMovementRepository struct {
	movements []models.Movement
	now       func() time.Time
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
		now:       time.Now,
	}
}

// AddMovement records a movement with an explicit timestamp.
func (r *InMemoryMovementRepository) AddMovement(item string, delta int, createdAt time.Time) {
	r.movements = append(r.movements, models.Movement{
		ID:        len(r.movements) + 1,
		Item:      item,
		Delta:     delta,
		CreatedAt: createdAt.UTC(),
	})
}

// Log inserts a new stock movement
func (r *InMemoryMovementRepository) Log(item string, delta int) error {
	r.AddMovement(item, delta, r.now())
	return nil
}

// GetByItem returns the movements of an item, optionally filtered by date range and paginated.
// The second result is the number of movements matching the date range.
func (r *InMemoryMovementRepository) GetByItem(item string, mf MovementFilter) ([]models.Movement, int, error) {
	filtered := []models.Movement{}
	for _, m := range r.movements {
		if m.Item != item {
			continue
		}
		if (mf.Since != nil && m.CreatedAt.Before(*mf.Since)) ||
			(mf.Until != nil && m.CreatedAt.After(*mf.Until)) {
			continue
		}
		filtered = append(filtered, m)
	}

	if mf.Offset != nil && *mf.Offset > len(filtered) {
		return []models.Movement{}, len(filtered), nil
	}

	start := 0
	if mf.Offset != nil {
		start = clamp(*mf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if mf.Limit != nil && *mf.Limit > 0 {
		end = clamp(start+*mf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

// Clear removes every logged movement.
func (r *InMemoryMovementRepository) Clear() {
	r.movements = []models.Movement{}
}
