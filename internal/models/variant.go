package models

import "time"

// Sizes is the fixed size universe for product variants. An edit naming a
// size outside this set is rejected before any write is issued.
var Sizes = []string{"6", "7", "8"}

// IsValidSize reports whether size belongs to the fixed universe.
func IsValidSize(size string) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Variant is a per-size stock-keeping unit of a product.
// (product_id, size) is unique and acts as the upsert conflict key.
type Variant struct {
	ID        int64     `db:"id" json:"id"`
	ProductID int64     `db:"product_id" json:"productId"`
	Size      string    `db:"size" json:"size"`
	Stock     int       `db:"stock" json:"stock"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// VariantUpsert is the write payload for a single variant row, keyed by
// (product_id, size).
type VariantUpsert struct {
	ProductID int64  `json:"productId"`
	Size      string `json:"size"`
	Stock     int    `json:"stock"`
}

// VariantStock is a variant stock reading joined with the owning product's
// name. ProductName is nil when the join found no product.
type VariantStock struct {
	Stock       int     `db:"stock"`
	ProductName *string `db:"product_name"`
}
