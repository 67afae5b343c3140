package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// RegisterMovementUseCase aplica movimientos de stock de forma transaccional:
// valida, muta la cantidad del producto y agrega el movimiento al ledger como
// una sola unidad. Serializa por SKU para evitar lost updates en la
// verificación de stock de las salidas; sobre PostgreSQL el bloqueo de fila
// (SELECT FOR UPDATE) cubre además instancias concurrentes del repositorio.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	cache    CacheSignal

	locks sync.Map // SKU -> *sync.Mutex
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, cache CacheSignal) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, cache: cache}
}

// MovementInputDTO entrada para registrar un movimiento. La fecha no se
// acepta del caller: la autoridad del timestamp es el ledger.
type MovementInputDTO struct {
	SKU            int64
	Type           string // INBOUND | OUTBOUND
	Quantity       int64
	Batch          string
	ExpirationDate *time.Time
	CreatedBy      string
}

// RegisterMovement valida el movimiento contra el producto destino, aplica el
// cambio de cantidad (INBOUND suma, OUTBOUND resta con verificación de stock)
// y persiste el movimiento, todo dentro de una transacción. Ante cualquier
// fallo no queda mutación parcial. Tras el commit dispara la señal de
// invalidación de cache.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (*entity.StockMovement, error) {
	switch input.Type {
	case entity.MovementTypeINBOUND, entity.MovementTypeOUTBOUND:
	default:
		return nil, domain.ErrInvalidInput
	}

	mu := uc.lockFor(input.SKU)
	mu.Lock()
	defer mu.Unlock()

	now := time.Now()
	var applied *entity.StockMovement

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto dentro de la transacción
		product, err := productRepo.GetBySKUForUpdate(input.SKU)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		mov := &entity.StockMovement{
			ID:             uuid.New().String(),
			SKU:            input.SKU,
			Type:           input.Type,
			Quantity:       input.Quantity,
			Date:           now,
			Batch:          input.Batch,
			ExpirationDate: input.ExpirationDate,
			CreatedBy:      input.CreatedBy,
		}

		// Validación pura, antes de cualquier mutación
		if err := inventory.ValidateMovement(product, mov, now); err != nil {
			return err
		}

		newQuantity := product.Quantity
		if input.Type == entity.MovementTypeINBOUND {
			newQuantity += mov.Quantity
		} else {
			if product.Quantity < mov.Quantity {
				return domain.ErrInsufficientStock
			}
			newQuantity -= mov.Quantity
		}

		if err := productRepo.UpdateQuantity(input.SKU, newQuantity); err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		applied = mov
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.OnStateChanged(ctx)
	return applied, nil
}

func (uc *RegisterMovementUseCase) lockFor(sku int64) *sync.Mutex {
	v, _ := uc.locks.LoadOrStore(sku, &sync.Mutex{})
	return v.(*sync.Mutex)
}
