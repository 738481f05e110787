package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer order header. Status is an open string enum as stored
// ("pending", "shipped", "delivered", ...); no server-side whitelist.
type Order struct {
	ID              int64           `db:"id" json:"id"`
	UserID          string          `db:"user_id" json:"userId"`
	TotalAmount     decimal.Decimal `db:"total_amount" json:"totalAmount"`
	Status          string          `db:"status" json:"status"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
	ShippingAddress string          `db:"shipping_address" json:"shippingAddress"`
}

// OrderItem is a line of an order. VariantID is nil when the variant was
// deleted after the sale; ProductName and Size come from the variant→product
// join and are nil when that chain is broken.
type OrderItem struct {
	ID          int64           `db:"id" json:"id"`
	OrderID     int64           `db:"order_id" json:"orderId"`
	VariantID   *int64          `db:"variant_id" json:"variantId,omitempty"`
	Quantity    int             `db:"quantity" json:"quantity"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Size        *string         `db:"size" json:"-"`
	ProductName *string         `db:"product_name" json:"-"`
}

// OrderWithItems groups an order with its items in store return order.
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// SoldItem is an order line reduced to what the sales ranking needs.
type SoldItem struct {
	Quantity    int     `db:"quantity"`
	ProductName *string `db:"product_name"`
}
