package models

// Derived dashboard views. These are computed per request from store reads
// and never persisted or cached across requests.

// StockByProduct is the total stock across all variants of one product.
type StockByProduct struct {
	ProductName string `json:"productName"`
	TotalStock  int    `json:"totalStock"`
}

// CategoryCount is the number of products in one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// StatusCount is the number of orders in one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// TopProduct is a sales ranking entry: cumulative quantity sold per product.
type TopProduct struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// DashboardSummary bundles the four dashboard aggregates. Sections whose
// underlying read failed are present but empty.
type DashboardSummary struct {
	Stock       []StockByProduct `json:"stock"`
	Categories  []CategoryCount  `json:"categories"`
	Statuses    []StatusCount    `json:"statuses"`
	TopProducts []TopProduct     `json:"topProducts"`
}
