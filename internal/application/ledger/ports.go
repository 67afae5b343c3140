package ledger

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del ledger: o se
// aplican cantidad y movimiento juntos, o no se aplica nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// CacheSignal notifica al cache externo que el estado autoritativo cambió.
// Es best-effort: la implementación nunca propaga fallos al caller y no
// bloquea la operación que la dispara.
type CacheSignal interface {
	OnStateChanged(ctx context.Context)
}
