// Package catalog implementa los casos de uso CRUD del catálogo de productos.
// Las existencias (Quantity) solo cambian vía el ledger de movimientos.
package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// CacheSignal notifica al cache externo que el catálogo cambió (best-effort).
type CacheSignal interface {
	OnStateChanged(ctx context.Context)
}

// ProductUseCase casos de uso del catálogo.
type ProductUseCase struct {
	repo  repository.ProductRepository
	cache CacheSignal
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, cache CacheSignal) *ProductUseCase {
	return &ProductUseCase{repo: repo, cache: cache}
}

// Create valida y persiste un producto nuevo. CreatedAt lo fija el servidor.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU <= 0 || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	switch entity.Category(in.Category) {
	case entity.CategorySTANDARD, entity.CategoryPERISHABLE:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) || in.Quantity < 0 || in.MinimumQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		SKU:             in.SKU,
		Name:            in.Name,
		Category:        entity.Category(in.Category),
		UnitPrice:       in.UnitPrice,
		Quantity:        in.Quantity,
		MinimumQuantity: in.MinimumQuantity,
		CreatedAt:       now,
		LotNumber:       in.LotNumber,
		ExpirationDate:  in.ExpirationDate,
	}
	if !inventory.ValidateProduct(product, now) {
		return nil, domain.ErrInvalidProductFields
	}

	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.cache.OnStateChanged(ctx)
	return dto.ToProductResponse(product), nil
}

// GetBySKU obtiene un producto. Devuelve ErrNotFound si no existe.
func (uc *ProductUseCase) GetBySKU(sku int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(product), nil
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	items := dto.ToProductList(list)
	return &dto.ProductListResponse{Total: len(items), Items: items}, nil
}

// Update actualiza campos del producto. No permite modificar Quantity
// (se maneja vía movimientos) ni la categoría.
func (uc *ProductUseCase) Update(ctx context.Context, sku int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.UnitPrice = *in.UnitPrice
	}
	if in.MinimumQuantity != nil {
		if *in.MinimumQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinimumQuantity = *in.MinimumQuantity
	}
	if in.LotNumber != nil {
		product.LotNumber = *in.LotNumber
	}
	if in.ExpirationDate != nil {
		product.ExpirationDate = in.ExpirationDate
	}
	if !inventory.ValidateProduct(product, time.Now()) {
		return nil, domain.ErrInvalidProductFields
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.cache.OnStateChanged(ctx)
	return dto.ToProductResponse(product), nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(ctx context.Context, sku int64) error {
	product, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(sku); err != nil {
		return err
	}
	uc.cache.OnStateChanged(ctx)
	return nil
}
