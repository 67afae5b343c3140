package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `sku, name, category, unit_price, quantity, minimum_quantity, created_at, lot_number, expiration_date`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.SKU, product.Name, string(product.Category), product.UnitPrice,
		product.Quantity, product.MinimumQuantity, product.CreatedAt,
		product.LotNumber, product.ExpirationDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetBySKU obtiene un producto por SKU. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetBySKU(sku int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(query, sku)
}

// GetBySKUForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Dentro de la transacción del TxRunner serializa movimientos concurrentes
// sobre el mismo SKU.
func (r *ProductRepo) GetBySKUForUpdate(sku int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1 FOR UPDATE`
	return r.scanOne(query, sku)
}

// GetAll devuelve el catálogo completo.
func (r *ProductRepo) GetAll() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY sku`
	return r.scanMany(query)
}

// GetBelowMinimumStock devuelve los productos con cantidad < stock mínimo.
func (r *ProductRepo) GetBelowMinimumStock() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE quantity < minimum_quantity ORDER BY sku`
	return r.scanMany(query)
}

// Update actualiza un producto. No toca quantity: eso es del ledger (UpdateQuantity).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, unit_price = $3, minimum_quantity = $4, lot_number = $5, expiration_date = $6
		WHERE sku = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.SKU, product.Name, product.UnitPrice, product.MinimumQuantity,
		product.LotNumber, product.ExpirationDate,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza solo las existencias (usado por el ledger dentro de su transacción).
func (r *ProductRepo) UpdateQuantity(sku int64, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2 WHERE sku = $1`,
		sku, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// Delete elimina un producto por SKU.
func (r *ProductRepo) Delete(sku int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE sku = $1`, sku)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	var cat string
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.SKU, &p.Name, &cat, &p.UnitPrice, &p.Quantity, &p.MinimumQuantity,
		&p.CreatedAt, &p.LotNumber, &p.ExpirationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Category = entity.Category(cat)
	return &p, nil
}

func (r *ProductRepo) scanMany(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var cat string
		if err := rows.Scan(&p.SKU, &p.Name, &cat, &p.UnitPrice, &p.Quantity, &p.MinimumQuantity,
			&p.CreatedAt, &p.LotNumber, &p.ExpirationDate); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Category = entity.Category(cat)
		list = append(list, &p)
	}
	return list, rows.Err()
}
