package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner emula la transacción de BD sobre los repos en memoria: ejecuta fn
// bajo un lock global y, si fn falla, restaura el estado previo (equivalente
// al rollback). Nunca queda una mutación parcial visible.
type TxRunner struct {
	mu       sync.Mutex
	products *ProductRepo
	ledger   *StockMovementRepo
}

// NewTxRunner construye el runner sobre los repos dados.
func NewTxRunner(products *ProductRepo, movements *StockMovementRepo) *TxRunner {
	return &TxRunner{products: products, ledger: movements}
}

// Run ejecuta fn de forma atómica sobre los repos en memoria.
func (r *TxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	productSnap := r.products.snapshot()
	ledgerSnap := r.ledger.snapshot()

	if err := fn(r.ledger, r.products); err != nil {
		r.products.restore(productSnap)
		r.ledger.restore(ledgerSnap)
		return err
	}
	return nil
}
