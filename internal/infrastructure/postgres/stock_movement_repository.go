package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del ledger append-only sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create agrega un movimiento al ledger.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, sku, type, quantity, date, batch, expiration_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.SKU, movement.Type, movement.Quantity,
		movement.Date, movement.Batch, movement.ExpirationDate, movement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListBySKU devuelve los movimientos de un producto, más recientes primero.
func (r *StockMovementRepo) ListBySKU(sku int64, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, sku, type, quantity, date, batch, expiration_date, created_by
		FROM stock_movements WHERE sku = $1
		ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, sku, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.SKU, &m.Type, &m.Quantity, &m.Date,
			&m.Batch, &m.ExpirationDate, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
