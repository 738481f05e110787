package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/krupasawant/SoleSense/internal/service"
	"github.com/krupasawant/SoleSense/internal/utils"
)

// defaultOrderPageSize matches the orders table in the admin UI.
const defaultOrderPageSize = 5

// OrderHandler handles order listing endpoints.
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListOrders handles GET /v1/admin/orders with optional page/limit query
// parameters. A page past the end returns an empty list, not an error.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page := 1
	limit := defaultOrderPageSize
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), page, limit)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve orders")
		return
	}

	utils.SuccessWithPagination(c, 200, "Orders retrieved", gin.H{
		"orders": orders,
	}, page, limit, total)
}
