package repo

import (
	"github.com/rogerio-castellano/inventory-store/internal/models"
)

type MovementRepository interface {
	Log(item string, delta int) error
	GetByItem(item string, mf MovementFilter) ([]models.Movement, int, error)
}
