package service

import (
	"context"
	"time"

	"github.com/krupasawant/SoleSense/internal/cache"
	"github.com/krupasawant/SoleSense/internal/models"
)

// Store interfaces consumed by the services. The repository package provides
// the PostgreSQL implementations; tests substitute in-memory fakes.

type ProductStore interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]*string, error)
}

type VariantStore interface {
	ListWithProductName(ctx context.Context) ([]models.VariantStock, error)
	GetByProductID(ctx context.Context, productID int64) ([]models.Variant, error)
	GetStock(ctx context.Context, id int64) (int, error)
	SetStock(ctx context.Context, id int64, stock int) error
	UpsertBatch(ctx context.Context, rows []models.VariantUpsert) error
}

type OrderStore interface {
	ListWithItems(ctx context.Context) ([]models.OrderWithItems, error)
	ListStatuses(ctx context.Context) ([]string, error)
	ListSoldItems(ctx context.Context) ([]models.SoldItem, error)
}

type AdminUserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Create(ctx context.Context, user *models.AdminUser) error
}

type SessionStore interface {
	Put(ctx context.Context, tokenID string, s *cache.Session, ttl time.Duration) error
	Get(ctx context.Context, tokenID string) (*cache.Session, error)
	Delete(ctx context.Context, tokenID string) error
}
