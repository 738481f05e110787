package models

import "github.com/shopspring/decimal"

// FallbackLabel is shown when an item's variant or product can no longer be
// resolved (e.g. the variant was deleted after the sale).
const FallbackLabel = "N/A"

// OrderView is a display-ready order row. Items is never nil: an order with
// no items keeps an empty slice so it still renders.
type OrderView struct {
	ID              int64           `json:"id"`
	UserID          string          `json:"userId"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"createdAt"`
	ShippingAddress string          `json:"shippingAddress"`
	Items           []OrderItemView `json:"items"`
}

// OrderItemView is one flattened order line with resolved display fields.
type OrderItemView struct {
	ProductName string          `json:"productName"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
