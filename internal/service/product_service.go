package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/krupasawant/SoleSense/internal/models"
	"github.com/krupasawant/SoleSense/internal/utils"
)

// ProductService owns the product catalog operations, including the variant
// reconciliation that keeps stored stock aligned with an admin's edit.
type ProductService struct {
	products ProductStore
	variants VariantStore
}

// NewProductService constructs a ProductService.
func NewProductService(products ProductStore, variants VariantStore) *ProductService {
	return &ProductService{products: products, variants: variants}
}

// CreateProductRequest carries an admin's new-product form. Price arrives as
// a string and is validated before any write. Stocks maps size → initial
// stock; only sizes with stock > 0 get a variant row on creation.
type CreateProductRequest struct {
	Name     string         `json:"name" binding:"required"`
	Price    string         `json:"price" binding:"required"`
	Category string         `json:"category"`
	ImageURL string         `json:"imageUrl"`
	IsActive *bool          `json:"isActive"`
	Stocks   map[string]int `json:"stocks" binding:"required"`
}

// UpdateProductRequest carries an admin's product edit. Stocks covers the
// full size universe; every named size is upserted, zero stock included.
type UpdateProductRequest struct {
	Name     string         `json:"name" binding:"required"`
	Price    string         `json:"price" binding:"required"`
	Category string         `json:"category"`
	ImageURL string         `json:"imageUrl"`
	IsActive bool           `json:"isActive"`
	Stocks   map[string]int `json:"stocks" binding:"required"`
}

// ListProducts returns the full catalog.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrStoreRead, err)
	}
	return products, nil
}

// GetProduct returns one product by id.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrStoreRead, err)
	}
	return p, nil
}

// GetVariants returns a product's variants covering the full size universe:
// sizes without a stored row appear with stock 0 and a zero id, matching
// what the edit form displays.
func (s *ProductService) GetVariants(ctx context.Context, productID int64) ([]models.Variant, error) {
	stored, err := s.variants.GetByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrStoreRead, err)
	}

	bySize := make(map[string]models.Variant, len(stored))
	for _, v := range stored {
		bySize[v.Size] = v
	}

	result := make([]models.Variant, 0, len(models.Sizes))
	for _, size := range models.Sizes {
		if v, ok := bySize[size]; ok {
			result = append(result, v)
			continue
		}
		result = append(result, models.Variant{ProductID: productID, Size: size, Stock: 0})
	}
	return result, nil
}

// CreateProduct validates the request, inserts the product, then inserts
// variant rows for sizes with stock > 0. At least one size must carry stock.
func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	price, err := utils.ParsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	if err := validateStocks(req.Stocks); err != nil {
		return nil, err
	}

	rows := reconcileRows(0, req.Stocks)
	withStock := make([]models.VariantUpsert, 0, len(rows))
	for _, row := range rows {
		if row.Stock > 0 {
			withStock = append(withStock, row)
		}
	}
	if len(withStock) == 0 {
		return nil, fmt.Errorf("%w: at least one size needs stock", utils.ErrValidation)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	product := &models.Product{
		Name:     req.Name,
		Price:    price,
		Category: utils.NormalizeOptional(req.Category),
		ImageURL: utils.NormalizeOptional(req.ImageURL),
		IsActive: isActive,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrProductWrite, err)
	}

	for i := range withStock {
		withStock[i].ProductID = product.ID
	}
	if err := s.variants.UpsertBatch(ctx, withStock); err != nil {
		// The product row stays; callers see the variant stage as the failure.
		log.Error().Err(err).Int64("product_id", product.ID).Msg("variant insert failed after product create")
		return nil, fmt.Errorf("%w: %v", utils.ErrVariantWrite, err)
	}

	return product, nil
}

// UpdateProduct validates and applies a product edit in two stages: the
// product row update, then the variant upsert. A variant-stage failure is
// reported distinctly and does not roll back the product update; stored
// state is whatever the store applied.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req *UpdateProductRequest) (*models.Product, error) {
	price, err := utils.ParsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	if err := validateStocks(req.Stocks); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:       id,
		Name:     req.Name,
		Price:    price,
		Category: utils.NormalizeOptional(req.Category),
		ImageURL: utils.NormalizeOptional(req.ImageURL),
		IsActive: req.IsActive,
	}

	if err := s.products.Update(ctx, product); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrProductWrite, err)
	}

	if err := s.variants.UpsertBatch(ctx, reconcileRows(id, req.Stocks)); err != nil {
		log.Error().Err(err).Int64("product_id", id).Msg("variant upsert failed after product update")
		return nil, fmt.Errorf("%w: %v", utils.ErrVariantWrite, err)
	}

	return product, nil
}

// ReconcileVariants brings the stored variant set of a product into
// alignment with the desired size → stock mapping. Every size in the request
// is upserted keyed by (product_id, size), zero stock included: zero is a
// valid stock level, not an omission. Re-running with the same input writes
// identical values.
func (s *ProductService) ReconcileVariants(ctx context.Context, productID int64, stocks map[string]int) error {
	if err := validateStocks(stocks); err != nil {
		return err
	}
	if err := s.variants.UpsertBatch(ctx, reconcileRows(productID, stocks)); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrVariantWrite, err)
	}
	return nil
}

// AdjustStock applies a +/- stepper edit as a read-modify-write: read the
// current stock, add delta, write the result back. There is no
// compare-and-swap, so two concurrent adjusters can both read the same value
// and one increment is lost (last write wins). Accepted limitation.
func (s *ProductService) AdjustStock(ctx context.Context, variantID int64, delta int) (int, error) {
	current, err := s.variants.GetStock(ctx, variantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, utils.ErrNotFound
		}
		return 0, fmt.Errorf("%w: %v", utils.ErrStoreRead, err)
	}

	next := current + delta
	if next < 0 {
		return 0, fmt.Errorf("%w: stock cannot go below zero", utils.ErrValidation)
	}

	if err := s.variants.SetStock(ctx, variantID, next); err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrVariantWrite, err)
	}
	return next, nil
}

// DeleteProduct removes a product; the store cascades to its variants.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrProductWrite, err)
	}
	return nil
}

// validateStocks rejects sizes outside the fixed universe and negative stock
// before any write is issued.
func validateStocks(stocks map[string]int) error {
	if len(stocks) == 0 {
		return fmt.Errorf("%w: no stock levels given", utils.ErrValidation)
	}
	for size, stock := range stocks {
		if !models.IsValidSize(size) {
			return fmt.Errorf("%w: unknown size %q", utils.ErrValidation, size)
		}
		if stock < 0 {
			return fmt.Errorf("%w: stock for size %q must not be negative", utils.ErrValidation, size)
		}
	}
	return nil
}

// reconcileRows turns a size → stock mapping into upsert rows in size order,
// one row per named size.
func reconcileRows(productID int64, stocks map[string]int) []models.VariantUpsert {
	sizes := make([]string, 0, len(stocks))
	for size := range stocks {
		sizes = append(sizes, size)
	}
	sort.Strings(sizes)

	rows := make([]models.VariantUpsert, 0, len(sizes))
	for _, size := range sizes {
		rows = append(rows, models.VariantUpsert{
			ProductID: productID,
			Size:      size,
			Stock:     stocks[size],
		})
	}
	return rows
}
