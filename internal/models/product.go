package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog entry.
// Category and ImageURL are nullable: blank input is normalized to NULL
// before writing, never persisted as an empty string.
type Product struct {
	ID        int64           `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Category  *string         `db:"category" json:"category,omitempty"`
	ImageURL  *string         `db:"image_url" json:"imageUrl,omitempty"`
	IsActive  bool            `db:"is_active" json:"isActive"`
	CreatedAt time.Time       `db:"created_at" json:"-"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}
