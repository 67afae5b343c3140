package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para el ledger de
// movimientos (append-only: no hay update ni delete).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListBySKU(sku int64, limit, offset int) ([]*entity.StockMovement, error)
}
