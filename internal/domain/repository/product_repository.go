package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetBySKU y GetBySKUForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetBySKU(sku int64) (*entity.Product, error)
	// GetBySKUForUpdate bloquea la fila del producto dentro de la transacción
	// actual (SELECT FOR UPDATE). Fuera de una transacción equivale a GetBySKU.
	GetBySKUForUpdate(sku int64) (*entity.Product, error)
	GetAll() ([]*entity.Product, error)
	GetBelowMinimumStock() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity actualiza solo las existencias (usado por el ledger).
	UpdateQuantity(sku int64, quantity int64) error
	Delete(sku int64) error
}
