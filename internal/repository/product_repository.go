package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopapi/internal/domain"
	"github.com/nikolayk812/shopapi/internal/port"
)

var (
	ErrNotFound = errors.New("not found")
)

const productColumns = `id, name, description, price, is_on_sale, sale_price, current_stock, image_url, created_date, last_updated_date`

type productRepository struct {
	pool *pgxpool.Pool
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *productRepository) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	var p domain.Product

	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, productID)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, fmt.Errorf("scanProduct: %w", ErrNotFound)
		}
		return p, fmt.Errorf("scanProduct: %w", err)
	}

	return p, nil
}

// SearchProducts pushes filtering to SQL. Ordering is left to the caller,
// which sorts the filtered set in memory.
func (r *productRepository) SearchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("filter.Validate: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products`

	var (
		conditions []string
		args       []any
	)

	if filter.Name != "" {
		args = append(args, "%"+strings.ToLower(filter.Name)+"%")
		conditions = append(conditions, fmt.Sprintf("LOWER(name) LIKE $%d", len(args)))
	}

	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("price >= $%d", len(args)))
	}

	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
	}

	if filter.IsOnSale != nil {
		args = append(args, *filter.IsOnSale)
		conditions = append(conditions, fmt.Sprintf("is_on_sale = $%d", len(args)))
	}

	if filter.InStock != nil && *filter.InStock {
		conditions = append(conditions, "current_stock > 0")
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *productRepository) InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	var p domain.Product

	row := r.pool.QueryRow(ctx,
		`INSERT INTO products (name, description, price, is_on_sale, sale_price, current_stock, image_url, created_date, last_updated_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+productColumns,
		product.Name, product.Description, product.Price, product.IsOnSale, product.SalePrice,
		product.CurrentStock, product.ImageURL, product.CreatedDate, product.LastUpdatedDate)

	p, err := scanProduct(row)
	if err != nil {
		return p, fmt.Errorf("scanProduct: %w", err)
	}

	return p, nil
}

// UpdateProduct replaces all mutable fields, created_date stays untouched.
func (r *productRepository) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	var p domain.Product

	row := r.pool.QueryRow(ctx,
		`UPDATE products
		 SET name = $2, description = $3, price = $4, is_on_sale = $5, sale_price = $6,
		     current_stock = $7, image_url = $8, last_updated_date = $9
		 WHERE id = $1
		 RETURNING `+productColumns,
		product.ID, product.Name, product.Description, product.Price, product.IsOnSale,
		product.SalePrice, product.CurrentStock, product.ImageURL, product.LastUpdatedDate)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, fmt.Errorf("scanProduct: %w", ErrNotFound)
		}
		return p, fmt.Errorf("scanProduct: %w", err)
	}

	return p, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, productID int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProduct: %w", ErrNotFound)
	}

	return nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product

	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.IsOnSale, &p.SalePrice,
		&p.CurrentStock, &p.ImageURL, &p.CreatedDate, &p.LastUpdatedDate)
	if err != nil {
		return p, err
	}

	return p, nil
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var products []domain.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanProduct: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return products, nil
}
