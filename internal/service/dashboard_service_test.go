package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krupasawant/SoleSense/internal/models"
)

func TestAggregateStock(t *testing.T) {
	rows := []models.VariantStock{
		{Stock: 5, ProductName: strPtr("Runner")},
		{Stock: 3, ProductName: strPtr("Runner")},
		{Stock: 7, ProductName: strPtr("Classic")},
		{Stock: 2, ProductName: nil},
		{Stock: 4, ProductName: nil},
	}

	result := AggregateStock(rows)

	require.Len(t, result, 3)
	assert.Equal(t, models.StockByProduct{ProductName: "Runner", TotalStock: 8}, result[0])
	assert.Equal(t, models.StockByProduct{ProductName: "Classic", TotalStock: 7}, result[1])
	assert.Equal(t, models.StockByProduct{ProductName: UnknownProduct, TotalStock: 6}, result[2])
}

// Conservation: the sum over all buckets equals the sum over the raw input,
// whatever the mix of resolved and missing names.
func TestAggregateStock_Conservation(t *testing.T) {
	tests := []struct {
		name string
		rows []models.VariantStock
	}{
		{"empty", nil},
		{"all named", []models.VariantStock{
			{Stock: 1, ProductName: strPtr("A")},
			{Stock: 2, ProductName: strPtr("B")},
			{Stock: 3, ProductName: strPtr("A")},
		}},
		{"all unknown", []models.VariantStock{
			{Stock: 10, ProductName: nil},
			{Stock: 20, ProductName: nil},
		}},
		{"mixed with zeros", []models.VariantStock{
			{Stock: 0, ProductName: strPtr("A")},
			{Stock: 5, ProductName: nil},
			{Stock: 0, ProductName: nil},
			{Stock: 9, ProductName: strPtr("B")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := 0
			for _, r := range tt.rows {
				input += r.Stock
			}

			output := 0
			for _, b := range AggregateStock(tt.rows) {
				output += b.TotalStock
			}

			assert.Equal(t, input, output)
		})
	}
}

func TestCountCategories(t *testing.T) {
	categories := []*string{
		strPtr("Sneakers"),
		nil,
		strPtr("Boots"),
		strPtr("Sneakers"),
		nil,
	}

	result := CountCategories(categories)

	require.Len(t, result, 3)
	assert.Equal(t, models.CategoryCount{Category: "Sneakers", Count: 2}, result[0])
	assert.Equal(t, models.CategoryCount{Category: Uncategorized, Count: 2}, result[1])
	assert.Equal(t, models.CategoryCount{Category: "Boots", Count: 1}, result[2])
}

func TestCountStatuses(t *testing.T) {
	result := CountStatuses([]string{"pending", "shipped", "pending", "delivered", "pending"})

	require.Len(t, result, 3)
	assert.Equal(t, models.StatusCount{Status: "pending", Count: 3}, result[0])
	assert.Equal(t, models.StatusCount{Status: "shipped", Count: 1}, result[1])
	assert.Equal(t, models.StatusCount{Status: "delivered", Count: 1}, result[2])
}

func TestTopProducts(t *testing.T) {
	items := []models.SoldItem{
		{Quantity: 2, ProductName: strPtr("Runner")},
		{Quantity: 5, ProductName: strPtr("Classic")},
		{Quantity: 4, ProductName: strPtr("Runner")},
		{Quantity: 1, ProductName: nil},
	}

	result := TopProducts(items, 10)

	require.Len(t, result, 3)
	assert.Equal(t, models.TopProduct{ProductName: "Runner", Quantity: 6}, result[0])
	assert.Equal(t, models.TopProduct{ProductName: "Classic", Quantity: 5}, result[1])
	assert.Equal(t, models.TopProduct{ProductName: UnknownProduct, Quantity: 1}, result[2])
}

func TestTopProducts_LimitAndOrder(t *testing.T) {
	var items []models.SoldItem
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for i, name := range names {
		items = append(items, models.SoldItem{Quantity: len(names) - i, ProductName: strPtr(name)})
	}

	result := TopProducts(items, 10)

	require.Len(t, result, 10)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Quantity, result[i].Quantity)
	}
}

// Ties keep first-encounter order.
func TestTopProducts_StableTies(t *testing.T) {
	items := []models.SoldItem{
		{Quantity: 3, ProductName: strPtr("first")},
		{Quantity: 3, ProductName: strPtr("second")},
		{Quantity: 3, ProductName: strPtr("third")},
	}

	result := TopProducts(items, 10)

	require.Len(t, result, 3)
	assert.Equal(t, "first", result[0].ProductName)
	assert.Equal(t, "second", result[1].ProductName)
	assert.Equal(t, "third", result[2].ProductName)
}

// Cumulative sums in the ranking match a full aggregation of the input.
func TestTopProducts_CumulativeSums(t *testing.T) {
	items := []models.SoldItem{
		{Quantity: 2, ProductName: strPtr("A")},
		{Quantity: 3, ProductName: strPtr("B")},
		{Quantity: 4, ProductName: strPtr("A")},
		{Quantity: 1, ProductName: strPtr("B")},
		{Quantity: 7, ProductName: nil},
	}

	want := map[string]int{}
	for _, item := range items {
		name := UnknownProduct
		if item.ProductName != nil {
			name = *item.ProductName
		}
		want[name] += item.Quantity
	}

	for _, entry := range TopProducts(items, 10) {
		assert.Equal(t, want[entry.ProductName], entry.Quantity)
	}
}

func TestSummary_AllSections(t *testing.T) {
	variants := newFakeVariantStore()
	variants.listRows = []models.VariantStock{{Stock: 4, ProductName: strPtr("Runner")}}

	products := newFakeProductStore()
	products.categories = []*string{strPtr("Sneakers")}

	orders := &fakeOrderStore{
		statuses: []string{"pending", "pending"},
		sold:     []models.SoldItem{{Quantity: 3, ProductName: strPtr("Runner")}},
	}

	svc := NewDashboardService(products, variants, orders)
	summary := svc.Summary(context.Background())

	assert.Equal(t, []models.StockByProduct{{ProductName: "Runner", TotalStock: 4}}, summary.Stock)
	assert.Equal(t, []models.CategoryCount{{Category: "Sneakers", Count: 1}}, summary.Categories)
	assert.Equal(t, []models.StatusCount{{Status: "pending", Count: 2}}, summary.Statuses)
	assert.Equal(t, []models.TopProduct{{ProductName: "Runner", Quantity: 3}}, summary.TopProducts)
}

// A failed read leaves its own section empty and the others intact.
func TestSummary_PartialFailure(t *testing.T) {
	variants := newFakeVariantStore()
	variants.listErr = errors.New("store unavailable")

	products := newFakeProductStore()
	products.categories = []*string{strPtr("Sneakers")}

	orders := &fakeOrderStore{
		statuses: []string{"shipped"},
		sold:     []models.SoldItem{{Quantity: 1, ProductName: strPtr("Runner")}},
	}

	svc := NewDashboardService(products, variants, orders)
	summary := svc.Summary(context.Background())

	assert.Empty(t, summary.Stock)
	assert.NotEmpty(t, summary.Categories)
	assert.NotEmpty(t, summary.Statuses)
	assert.NotEmpty(t, summary.TopProducts)
}
