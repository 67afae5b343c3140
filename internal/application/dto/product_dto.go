package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU             int64           `json:"sku"`
	Name            string          `json:"name"`
	Category        string          `json:"category"` // STANDARD | PERISHABLE
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        int64           `json:"quantity"`
	MinimumQuantity int64           `json:"minimum_quantity"`
	LotNumber       string          `json:"lot_number,omitempty"`
	ExpirationDate  *time.Time      `json:"expiration_date,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:sku. Campos nil no se tocan.
// Quantity no es actualizable: las existencias solo cambian vía movimientos.
type UpdateProductRequest struct {
	Name            *string          `json:"name,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	MinimumQuantity *int64           `json:"minimum_quantity,omitempty"`
	LotNumber       *string          `json:"lot_number,omitempty"`
	ExpirationDate  *time.Time       `json:"expiration_date,omitempty"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	SKU             int64           `json:"sku"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        int64           `json:"quantity"`
	MinimumQuantity int64           `json:"minimum_quantity"`
	CreatedAt       time.Time       `json:"created_at"`
	LotNumber       string          `json:"lot_number,omitempty"`
	ExpirationDate  *time.Time      `json:"expiration_date,omitempty"`
}

// ProductListResponse respuesta de listados de productos.
type ProductListResponse struct {
	Total int               `json:"total"`
	Items []ProductResponse `json:"items"`
}

// ToProductResponse convierte la entidad a su representación HTTP.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		SKU:             p.SKU,
		Name:            p.Name,
		Category:        string(p.Category),
		UnitPrice:       p.UnitPrice,
		Quantity:        p.Quantity,
		MinimumQuantity: p.MinimumQuantity,
		CreatedAt:       p.CreatedAt,
		LotNumber:       p.LotNumber,
		ExpirationDate:  p.ExpirationDate,
	}
}

// ToProductList convierte un slice de entidades.
func ToProductList(list []*entity.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items
}
