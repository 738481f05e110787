package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/krupasawant/SoleSense/internal/cache"
	"github.com/krupasawant/SoleSense/internal/models"
)

// In-memory store fakes for service tests.

type fakeProductStore struct {
	products   map[int64]models.Product
	nextID     int64
	categories []*string

	createErr error
	updateErr error
	deleteErr error
	listErr   error

	updated []models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[int64]models.Product{}, nextID: 1}
}

func (f *fakeProductStore) GetAll(ctx context.Context) ([]models.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductStore) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &p, nil
}

func (f *fakeProductStore) Create(ctx context.Context, product *models.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	product.ID = f.nextID
	f.nextID++
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductStore) Update(ctx context.Context, product *models.Product) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.products[product.ID]; !ok {
		return sql.ErrNoRows
	}
	f.products[product.ID] = *product
	f.updated = append(f.updated, *product)
	return nil
}

func (f *fakeProductStore) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.products[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductStore) ListCategories(ctx context.Context) ([]*string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.categories, nil
}

type fakeVariantStore struct {
	stocks    map[int64]int
	byProduct map[int64][]models.Variant
	listRows  []models.VariantStock

	listErr   error
	upsertErr error

	// getStockFn overrides GetStock when set, used to model a stale read.
	getStockFn func(id int64) (int, error)

	upserts [][]models.VariantUpsert
}

func newFakeVariantStore() *fakeVariantStore {
	return &fakeVariantStore{stocks: map[int64]int{}, byProduct: map[int64][]models.Variant{}}
}

func (f *fakeVariantStore) ListWithProductName(ctx context.Context) ([]models.VariantStock, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listRows, nil
}

func (f *fakeVariantStore) GetByProductID(ctx context.Context, productID int64) ([]models.Variant, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byProduct[productID], nil
}

func (f *fakeVariantStore) GetStock(ctx context.Context, id int64) (int, error) {
	if f.getStockFn != nil {
		return f.getStockFn(id)
	}
	stock, ok := f.stocks[id]
	if !ok {
		return 0, sql.ErrNoRows
	}
	return stock, nil
}

func (f *fakeVariantStore) SetStock(ctx context.Context, id int64, stock int) error {
	f.stocks[id] = stock
	return nil
}

func (f *fakeVariantStore) UpsertBatch(ctx context.Context, rows []models.VariantUpsert) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, rows)
	return nil
}

type fakeOrderStore struct {
	orders   []models.OrderWithItems
	statuses []string
	sold     []models.SoldItem

	ordersErr   error
	statusesErr error
	soldErr     error
}

func (f *fakeOrderStore) ListWithItems(ctx context.Context) ([]models.OrderWithItems, error) {
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return f.orders, nil
}

func (f *fakeOrderStore) ListStatuses(ctx context.Context) ([]string, error) {
	if f.statusesErr != nil {
		return nil, f.statusesErr
	}
	return f.statuses, nil
}

func (f *fakeOrderStore) ListSoldItems(ctx context.Context) ([]models.SoldItem, error) {
	if f.soldErr != nil {
		return nil, f.soldErr
	}
	return f.sold, nil
}

type fakeAdminStore struct {
	users map[string]models.AdminUser
}

func (f *fakeAdminStore) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (f *fakeAdminStore) Create(ctx context.Context, user *models.AdminUser) error {
	if f.users == nil {
		f.users = map[string]models.AdminUser{}
	}
	user.ID = int64(len(f.users) + 1)
	f.users[user.Email] = *user
	return nil
}

type fakeSessionStore struct {
	sessions map[string]*cache.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*cache.Session{}}
}

func (f *fakeSessionStore) Put(ctx context.Context, tokenID string, s *cache.Session, ttl time.Duration) error {
	f.sessions[tokenID] = s
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, tokenID string) (*cache.Session, error) {
	s, ok := f.sessions[tokenID]
	if !ok {
		return nil, cache.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, tokenID string) error {
	delete(f.sessions, tokenID)
	return nil
}

func strPtr(s string) *string { return &s }
