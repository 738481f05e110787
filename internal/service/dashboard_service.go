package service

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/krupasawant/SoleSense/internal/models"
)

const (
	// UnknownProduct buckets rows whose product name could not be resolved.
	// They are counted rather than dropped so aggregate totals stay equal to
	// the raw input totals.
	UnknownProduct = "Unknown"

	// Uncategorized buckets products without a category.
	Uncategorized = "Uncategorized"

	// TopProductLimit caps the sales ranking length.
	TopProductLimit = 10
)

// DashboardService computes the dashboard aggregates from store reads.
type DashboardService struct {
	products ProductStore
	variants VariantStore
	orders   OrderStore
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(products ProductStore, variants VariantStore, orders OrderStore) *DashboardService {
	return &DashboardService{products: products, variants: variants, orders: orders}
}

// Summary fetches and aggregates all four dashboard sections. The reads are
// independent and run concurrently; a failed read is logged and leaves its
// section empty without affecting the others.
func (s *DashboardService) Summary(ctx context.Context) *models.DashboardSummary {
	summary := &models.DashboardSummary{
		Stock:       []models.StockByProduct{},
		Categories:  []models.CategoryCount{},
		Statuses:    []models.StatusCount{},
		TopProducts: []models.TopProduct{},
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		rows, err := s.variants.ListWithProductName(ctx)
		if err != nil {
			log.Error().Err(err).Msg("dashboard: stock fetch failed")
			return
		}
		summary.Stock = AggregateStock(rows)
	}()

	go func() {
		defer wg.Done()
		categories, err := s.products.ListCategories(ctx)
		if err != nil {
			log.Error().Err(err).Msg("dashboard: category fetch failed")
			return
		}
		summary.Categories = CountCategories(categories)
	}()

	go func() {
		defer wg.Done()
		statuses, err := s.orders.ListStatuses(ctx)
		if err != nil {
			log.Error().Err(err).Msg("dashboard: status fetch failed")
			return
		}
		summary.Statuses = CountStatuses(statuses)
	}()

	go func() {
		defer wg.Done()
		items, err := s.orders.ListSoldItems(ctx)
		if err != nil {
			log.Error().Err(err).Msg("dashboard: top products fetch failed")
			return
		}
		summary.TopProducts = TopProducts(items, TopProductLimit)
	}()

	wg.Wait()
	return summary
}

// AggregateStock groups variant stock by product name. Rows with no
// resolvable name are summed under UnknownProduct, so the sum over all
// buckets equals the sum over the input. Buckets appear in first-encounter
// order.
func AggregateStock(rows []models.VariantStock) []models.StockByProduct {
	totals := map[string]int{}
	var names []string

	for _, row := range rows {
		name := UnknownProduct
		if row.ProductName != nil {
			name = *row.ProductName
		}
		if _, seen := totals[name]; !seen {
			names = append(names, name)
		}
		totals[name] += row.Stock
	}

	result := make([]models.StockByProduct, 0, len(names))
	for _, name := range names {
		result = append(result, models.StockByProduct{ProductName: name, TotalStock: totals[name]})
	}
	return result
}

// CountCategories counts products per category, bucketing NULL categories
// under Uncategorized.
func CountCategories(categories []*string) []models.CategoryCount {
	counts := map[string]int{}
	var keys []string

	for _, c := range categories {
		name := Uncategorized
		if c != nil {
			name = *c
		}
		if _, seen := counts[name]; !seen {
			keys = append(keys, name)
		}
		counts[name]++
	}

	result := make([]models.CategoryCount, 0, len(keys))
	for _, k := range keys {
		result = append(result, models.CategoryCount{Category: k, Count: counts[k]})
	}
	return result
}

// CountStatuses counts orders per status string as stored.
func CountStatuses(statuses []string) []models.StatusCount {
	counts := map[string]int{}
	var keys []string

	for _, s := range statuses {
		if _, seen := counts[s]; !seen {
			keys = append(keys, s)
		}
		counts[s]++
	}

	result := make([]models.StatusCount, 0, len(keys))
	for _, k := range keys {
		result = append(result, models.StatusCount{Status: k, Count: counts[k]})
	}
	return result
}

// TopProducts sums sold quantity per product name and returns the top n by
// descending quantity. Unresolvable names count under UnknownProduct. Ties
// keep first-encounter order (stable sort).
func TopProducts(items []models.SoldItem, n int) []models.TopProduct {
	totals := map[string]int{}
	var names []string

	for _, item := range items {
		name := UnknownProduct
		if item.ProductName != nil {
			name = *item.ProductName
		}
		if _, seen := totals[name]; !seen {
			names = append(names, name)
		}
		totals[name] += item.Quantity
	}

	ranked := make([]models.TopProduct, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, models.TopProduct{ProductName: name, Quantity: totals[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
