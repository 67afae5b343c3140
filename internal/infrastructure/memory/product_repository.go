// Package memory provee adaptadores de persistencia en memoria (mapas con
// guarda de concurrencia explícita). Se inyectan en tests y entornos sin DB;
// reemplazan cualquier colección mutable global.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo en memoria.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[int64]entity.Product
}

// NewProductRepository construye el catálogo vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{products: make(map[int64]entity.Product)}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.SKU]; ok {
		return domain.ErrDuplicate
	}
	r.products[product.SKU] = *product
	return nil
}

// GetBySKU devuelve una copia del producto o (nil, nil) si no existe.
func (r *ProductRepo) GetBySKU(sku int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[sku]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetBySKUForUpdate en memoria equivale a GetBySKU: la exclusión la aporta el
// TxRunner (lock global durante la transacción).
func (r *ProductRepo) GetBySKUForUpdate(sku int64) (*entity.Product, error) {
	return r.GetBySKU(sku)
}

// GetAll devuelve el catálogo ordenado por SKU.
func (r *ProductRepo) GetAll() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SKU < list[j].SKU })
	return list, nil
}

// GetBelowMinimumStock devuelve los productos con cantidad < stock mínimo.
func (r *ProductRepo) GetBelowMinimumStock() ([]*entity.Product, error) {
	all, _ := r.GetAll()
	var out []*entity.Product
	for _, p := range all {
		if p.Quantity < p.MinimumQuantity {
			out = append(out, p)
		}
	}
	return out, nil
}

// Update reemplaza los datos del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.SKU]; !ok {
		return domain.ErrNotFound
	}
	r.products[product.SKU] = *product
	return nil
}

// UpdateQuantity actualiza solo las existencias.
func (r *ProductRepo) UpdateQuantity(sku int64, quantity int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[sku]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	r.products[sku] = p
	return nil
}

// Delete elimina un producto.
func (r *ProductRepo) Delete(sku int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, sku)
	return nil
}

// snapshot copia el estado actual (para rollback del TxRunner en memoria).
func (r *ProductRepo) snapshot() map[int64]entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := make(map[int64]entity.Product, len(r.products))
	for k, v := range r.products {
		cp[k] = v
	}
	return cp
}

func (r *ProductRepo) restore(s map[int64]entity.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = s
}
