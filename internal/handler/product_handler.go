package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/krupasawant/SoleSense/internal/service"
	"github.com/krupasawant/SoleSense/internal/utils"
)

// ProductHandler handles product and variant HTTP endpoints.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts handles GET /v1/admin/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}

	utils.Success(c, 200, "Products retrieved", products)
}

// GetProduct handles GET /v1/admin/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}

	utils.Success(c, 200, "Product retrieved", product)
}

// CreateProduct handles POST /v1/admin/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		writeWriteError(c, err, "Failed to create product")
		return
	}

	utils.Success(c, 201, "Product created successfully", product)
}

// UpdateProduct handles PUT /v1/admin/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		writeWriteError(c, err, "Failed to update product")
		return
	}

	utils.Success(c, 200, "Product updated successfully", product)
}

// DeleteProduct handles DELETE /v1/admin/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		writeWriteError(c, err, "Failed to delete product")
		return
	}

	utils.Success(c, 200, "Product deleted", nil)
}

// GetVariants handles GET /v1/admin/products/:id/variants
func (h *ProductHandler) GetVariants(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	variants, err := h.productService.GetVariants(c.Request.Context(), id)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve variants")
		return
	}

	utils.Success(c, 200, "Variants retrieved", variants)
}

// ReconcileVariants handles PUT /v1/admin/products/:id/variants
func (h *ProductHandler) ReconcileVariants(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	var req struct {
		Stocks map[string]int `json:"stocks" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.productService.ReconcileVariants(c.Request.Context(), id, req.Stocks); err != nil {
		writeWriteError(c, err, "Failed to update variants")
		return
	}

	utils.Success(c, 200, "Variants updated", nil)
}

// AdjustStock handles POST /v1/admin/variants/:id/adjust
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid variant ID")
		return
	}

	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	stock, err := h.productService.AdjustStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		writeWriteError(c, err, "Failed to adjust stock")
		return
	}

	utils.Success(c, 200, "Stock adjusted", gin.H{"stock": stock})
}

// writeWriteError maps service errors to the envelope, keeping the failed
// stage distinct: a variant-stage failure after a successful product update
// is reported as VARIANT_WRITE_FAILED, never as overall success.
func writeWriteError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, utils.ErrValidation):
		utils.Error(c, 400, "VALIDATION_FAILED", err.Error())
	case errors.Is(err, utils.ErrNotFound):
		utils.Error(c, 404, "NOT_FOUND", "Resource not found")
	case errors.Is(err, utils.ErrVariantWrite):
		utils.Error(c, 500, "VARIANT_WRITE_FAILED", "Failed to update product variants")
	case errors.Is(err, utils.ErrProductWrite):
		utils.Error(c, 500, "PRODUCT_WRITE_FAILED", "Failed to update product")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", fallback)
	}
}
