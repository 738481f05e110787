package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/krupasawant/SoleSense/internal/models"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetAll returns all products ordered by name.
func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	const q = `SELECT * FROM products ORDER BY name`

	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1 LIMIT 1`

	var p models.Product
	if err := r.db.GetContext(ctx, &p, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new product and fills in its assigned id and timestamps.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	const q = `
        INSERT INTO products (name, price, category, image_url, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, q,
		product.Name,
		product.Price,
		product.Category,
		product.ImageURL,
		product.IsActive,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// Update updates an existing product by id.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	const q = `
        UPDATE products
        SET name = $1, price = $2, category = $3, image_url = $4,
            is_active = $5, updated_at = NOW()
        WHERE id = $6
        RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, q,
		product.Name,
		product.Price,
		product.Category,
		product.ImageURL,
		product.IsActive,
		product.ID,
	).Scan(&product.UpdatedAt)
	if err == sql.ErrNoRows {
		return sql.ErrNoRows
	}
	return err
}

// Delete deletes a product by id. Variants cascade; order items keep their
// rows with the variant reference set to NULL.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM products WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListCategories returns the category column of every product, NULLs
// included, for the dashboard's category distribution.
func (r *ProductRepository) ListCategories(ctx context.Context) ([]*string, error) {
	const q = `SELECT category FROM products`

	var categories []*string
	if err := r.db.SelectContext(ctx, &categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}
