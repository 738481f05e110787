package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/krupasawant/SoleSense/internal/models"
)

// OrderRepository handles read access for orders and their items. Orders are
// created by the storefront, not by this service, so there is no write path.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// ListWithItems returns every order newest-first, each carrying its items in
// insertion order. Item rows resolve size and product name through the
// variant→product chain; both are NULL when the variant was deleted.
func (r *OrderRepository) ListWithItems(ctx context.Context) ([]models.OrderWithItems, error) {
	const ordersQ = `
        SELECT id, user_id, total_amount, status, created_at, shipping_address
        FROM orders
        ORDER BY created_at DESC`

	var orders []models.Order
	if err := r.db.SelectContext(ctx, &orders, ordersQ); err != nil {
		return nil, err
	}

	const itemsQ = `
        SELECT oi.id, oi.order_id, oi.variant_id, oi.quantity, oi.price,
               v.size AS size, p.name AS product_name
        FROM order_items oi
        LEFT JOIN product_variants v ON v.id = oi.variant_id
        LEFT JOIN products p ON p.id = v.product_id
        ORDER BY oi.order_id, oi.id`

	var items []models.OrderItem
	if err := r.db.SelectContext(ctx, &items, itemsQ); err != nil {
		return nil, err
	}

	byOrder := make(map[int64][]models.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	result := make([]models.OrderWithItems, 0, len(orders))
	for _, o := range orders {
		result = append(result, models.OrderWithItems{
			Order: o,
			Items: byOrder[o.ID],
		})
	}
	return result, nil
}

// ListStatuses returns the status column of every order.
func (r *OrderRepository) ListStatuses(ctx context.Context) ([]string, error) {
	const q = `SELECT status FROM orders`

	var statuses []string
	if err := r.db.SelectContext(ctx, &statuses, q); err != nil {
		return nil, err
	}
	return statuses, nil
}

// ListSoldItems returns every order line's quantity joined with the product
// name through the variant chain, for the sales ranking.
func (r *OrderRepository) ListSoldItems(ctx context.Context) ([]models.SoldItem, error) {
	const q = `
        SELECT oi.quantity, p.name AS product_name
        FROM order_items oi
        LEFT JOIN product_variants v ON v.id = oi.variant_id
        LEFT JOIN products p ON p.id = v.product_id
        ORDER BY oi.id`

	var items []models.SoldItem
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}
