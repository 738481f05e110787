package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/krupasawant/SoleSense/internal/models"
	"github.com/krupasawant/SoleSense/internal/utils"
)

// OrderService exposes the denormalized order listing.
type OrderService struct {
	orders OrderStore
}

// NewOrderService constructs an OrderService.
func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// ListOrders returns one page of denormalized orders plus the total order
// count. The store returns orders newest-first; that order is preserved.
func (s *OrderService) ListOrders(ctx context.Context, page, limit int) ([]models.OrderView, int, error) {
	orders, err := s.orders.ListWithItems(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", utils.ErrStoreRead, err)
	}

	views := DenormalizeOrders(orders)
	return utils.Paginate(views, page, limit), len(views), nil
}

// DenormalizeOrders flattens order→items→variant→product rows into display
// records. Items whose variant chain is broken render the fallback label for
// name and size. Orders with no items keep an empty item list. Input order is
// preserved for both orders and items.
func DenormalizeOrders(orders []models.OrderWithItems) []models.OrderView {
	views := make([]models.OrderView, 0, len(orders))
	for _, o := range orders {
		view := models.OrderView{
			ID:              o.ID,
			UserID:          o.UserID,
			TotalAmount:     o.TotalAmount,
			Status:          o.Status,
			CreatedAt:       o.CreatedAt.Format(time.RFC3339),
			ShippingAddress: o.ShippingAddress,
			Items:           make([]models.OrderItemView, 0, len(o.Items)),
		}

		for _, item := range o.Items {
			name := models.FallbackLabel
			if item.ProductName != nil {
				name = *item.ProductName
			}
			size := models.FallbackLabel
			if item.Size != nil {
				size = *item.Size
			}

			view.Items = append(view.Items, models.OrderItemView{
				ProductName: name,
				Size:        size,
				Quantity:    item.Quantity,
				Price:       item.Price,
				Subtotal:    item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
			})
		}

		views = append(views, view)
	}
	return views
}
