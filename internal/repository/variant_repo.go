package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/krupasawant/SoleSense/internal/models"
)

// VariantRepository handles data access for product variants. It only shapes
// requests against the store; stock rules live in the service layer.
type VariantRepository struct {
	db *sqlx.DB
}

// NewVariantRepository creates a new VariantRepository.
func NewVariantRepository(db *sqlx.DB) *VariantRepository {
	return &VariantRepository{db: db}
}

// ListWithProductName returns every variant's stock joined with its product
// name. The name is NULL when the owning product row is gone.
func (r *VariantRepository) ListWithProductName(ctx context.Context) ([]models.VariantStock, error) {
	const q = `
        SELECT v.stock, p.name AS product_name
        FROM product_variants v
        LEFT JOIN products p ON p.id = v.product_id`

	var rows []models.VariantStock
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByProductID returns the variants of a product ordered by size.
func (r *VariantRepository) GetByProductID(ctx context.Context, productID int64) ([]models.Variant, error) {
	const q = `SELECT * FROM product_variants WHERE product_id = $1 ORDER BY size`

	var variants []models.Variant
	if err := r.db.SelectContext(ctx, &variants, q, productID); err != nil {
		return nil, err
	}
	return variants, nil
}

// GetStock returns the current stock of a single variant.
func (r *VariantRepository) GetStock(ctx context.Context, id int64) (int, error) {
	const q = `SELECT stock FROM product_variants WHERE id = $1`

	var stock int
	if err := r.db.GetContext(ctx, &stock, q, id); err != nil {
		if err == sql.ErrNoRows {
			return 0, sql.ErrNoRows
		}
		return 0, err
	}
	return stock, nil
}

// SetStock writes the stock of a single variant. Used by the stepper's
// read-modify-write path; no compare-and-swap, last write wins.
func (r *VariantRepository) SetStock(ctx context.Context, id int64, stock int) error {
	const q = `UPDATE product_variants SET stock = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q, id, stock)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpsertBatch writes a set of variant rows in one statement, inserting or
// updating each row keyed by the (product_id, size) unique constraint.
func (r *VariantRepository) UpsertBatch(ctx context.Context, rows []models.VariantUpsert) error {
	if len(rows) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(rows))
	args := make([]interface{}, 0, len(rows)*3)
	for i, row := range rows {
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3))
		args = append(args, row.ProductID, row.Size, row.Stock)
	}

	q := fmt.Sprintf(`
        INSERT INTO product_variants (product_id, size, stock)
        VALUES %s
        ON CONFLICT (product_id, size) DO UPDATE SET
            stock = EXCLUDED.stock,
            updated_at = NOW()`,
		strings.Join(placeholders, ", "))

	_, err := r.db.ExecContext(ctx, q, args...)
	return err
}
