package memory

import (
	"sync"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo ledger append-only en memoria.
type StockMovementRepo struct {
	mu        sync.RWMutex
	movements []entity.StockMovement
}

// NewStockMovementRepository construye el ledger vacío.
func NewStockMovementRepository() *StockMovementRepo {
	return &StockMovementRepo{}
}

// Create agrega un movimiento al ledger.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, *movement)
	return nil
}

// ListBySKU devuelve los movimientos de un producto, más recientes primero.
func (r *StockMovementRepo) ListBySKU(sku int64, limit, offset int) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].SKU == sku {
			cp := r.movements[i]
			matched = append(matched, &cp)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

// Len devuelve el largo del ledger (útil en tests de atomicidad).
func (r *StockMovementRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.movements)
}

func (r *StockMovementRepo) snapshot() []entity.StockMovement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := make([]entity.StockMovement, len(r.movements))
	copy(cp, r.movements)
	return cp
}

func (r *StockMovementRepo) restore(s []entity.StockMovement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = s
}
