package order

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Bang334/QuanAn-sub002/internal/menu"
	menuerrors "github.com/Bang334/QuanAn-sub002/internal/menu/errors"
	ordererrors "github.com/Bang334/QuanAn-sub002/internal/order/errors"
	"github.com/Bang334/QuanAn-sub002/internal/promotion"
)

type fakeOrderRepo struct {
	tables map[string]*DiningTable
	orders map[string]*Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{tables: map[string]*DiningTable{}, orders: map[string]*Order{}}
}

func (f *fakeOrderRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeOrderRepo) CreateTable(ctx context.Context, t *DiningTable) error {
	cp := *t
	f.tables[t.ID.String()] = &cp
	return nil
}

func (f *fakeOrderRepo) FindAllTables(ctx context.Context) ([]DiningTable, error) {
	var out []DiningTable
	for _, t := range f.tables {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeOrderRepo) FindTableByID(ctx context.Context, id string) (*DiningTable, error) {
	if t, ok := f.tables[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *Order) error {
	cp := *o
	f.orders[o.ID.String()] = &cp
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*Order, error) {
	if o, ok := f.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) FindAll(ctx context.Context, filter ListOrderFilter) ([]Order, error) {
	var out []Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, o *Order) error {
	cp := *o
	f.orders[o.ID.String()] = &cp
	return nil
}

type fakeMenuRepoForOrders struct {
	items map[string]*menu.MenuItem
}

func (f *fakeMenuRepoForOrders) WithTx(tx *sql.Tx) menu.Repository { return f }
func (f *fakeMenuRepoForOrders) Create(ctx context.Context, item *menu.MenuItem) error {
	return nil
}
func (f *fakeMenuRepoForOrders) FindAll(ctx context.Context, filter menu.ListMenuFilter) ([]menu.MenuItem, error) {
	return nil, nil
}
func (f *fakeMenuRepoForOrders) FindAllAvailable(ctx context.Context) ([]menu.MenuItem, error) {
	return nil, nil
}
func (f *fakeMenuRepoForOrders) FindByID(ctx context.Context, id string) (*menu.MenuItem, error) {
	if item, ok := f.items[id]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeMenuRepoForOrders) Update(ctx context.Context, item *menu.MenuItem) error { return nil }
func (f *fakeMenuRepoForOrders) Delete(ctx context.Context, id string) error           { return nil }

type fakePromotionService struct {
	percent map[string]int
}

func (f *fakePromotionService) Create(ctx context.Context, req promotion.CreatePromotionRequest) (promotion.PromotionResponse, error) {
	return promotion.PromotionResponse{}, nil
}
func (f *fakePromotionService) GetAll(ctx context.Context, filter promotion.ListPromotionFilter) ([]promotion.PromotionResponse, error) {
	return nil, nil
}
func (f *fakePromotionService) GetByID(ctx context.Context, id string) (promotion.PromotionResponse, error) {
	return promotion.PromotionResponse{}, nil
}
func (f *fakePromotionService) DiscountFor(ctx context.Context, menuItemID string, at time.Time) (int, *uuid.UUID, error) {
	if pct, ok := f.percent[menuItemID]; ok {
		id := uuid.New()
		return pct, &id, nil
	}
	return 0, nil, nil
}
func (f *fakePromotionService) Deactivate(ctx context.Context, id string) error { return nil }

type fakeCounterRepo struct {
	next int64
}

func (f *fakeCounterRepo) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func TestCanTransitionGuardsLifecycle(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusPreparing))
	assert.True(t, CanTransition(StatusPending, StatusCancelled))
	assert.True(t, CanTransition(StatusPreparing, StatusServed))
	assert.True(t, CanTransition(StatusPreparing, StatusCancelled))
	assert.True(t, CanTransition(StatusServed, StatusPaid))

	assert.False(t, CanTransition(StatusPending, StatusPaid))
	assert.False(t, CanTransition(StatusServed, StatusCancelled))
	assert.False(t, CanTransition(StatusPaid, StatusPending))
	assert.False(t, CanTransition(StatusCancelled, StatusPreparing))
}

func newTestOrderService(t *testing.T) (Service, *fakeOrderRepo, *fakeMenuRepoForOrders, *fakePromotionService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := newFakeOrderRepo()
	menuRepo := &fakeMenuRepoForOrders{items: map[string]*menu.MenuItem{}}
	promos := &fakePromotionService{percent: map[string]int{}}

	svc := NewService(db, repo, menuRepo, promos, &fakeCounterRepo{})
	return svc, repo, menuRepo, promos, mock
}

func TestCreateOrderPricesFromMenuWithPromotion(t *testing.T) {
	svc, repo, menuRepo, promos, mock := newTestOrderService(t)

	table := &DiningTable{ID: uuid.New(), Number: 4, Seats: 4}
	repo.tables[table.ID.String()] = table

	pho := &menu.MenuItem{ID: uuid.New(), Name: "Pho Bo", Price: 65000, IsAvailable: true}
	tea := &menu.MenuItem{ID: uuid.New(), Name: "Tra Da", Price: 5000, IsAvailable: true}
	menuRepo.items[pho.ID.String()] = pho
	menuRepo.items[tea.ID.String()] = tea
	promos.percent[pho.ID.String()] = 10

	mock.ExpectBegin()
	mock.ExpectCommit()

	got, err := svc.Create(context.Background(), uuid.NewString(), CreateOrderRequest{
		TableID: table.ID.String(),
		Items: []OrderItemRequest{
			{MenuItemID: pho.ID.String(), Quantity: 2},
			{MenuItemID: tea.ID.String(), Quantity: 3},
		},
	})
	require.NoError(t, err)

	// 2 x 65000 = 130000 with 10% off, 3 x 5000 = 15000 full price.
	assert.Equal(t, int64(145000), got.Subtotal)
	assert.Equal(t, int64(13000), got.Discount)
	assert.Equal(t, int64(132000), got.Total)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, "ORD-000001", got.OrderNumber)
	require.Len(t, got.Items, 2)
}

func TestCreateOrderRejectsUnavailableItem(t *testing.T) {
	svc, repo, menuRepo, _, mock := newTestOrderService(t)

	table := &DiningTable{ID: uuid.New(), Number: 1, Seats: 2}
	repo.tables[table.ID.String()] = table

	off := &menu.MenuItem{ID: uuid.New(), Name: "Bun Cha", Price: 55000, IsAvailable: false}
	menuRepo.items[off.ID.String()] = off

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), uuid.NewString(), CreateOrderRequest{
		TableID: table.ID.String(),
		Items:   []OrderItemRequest{{MenuItemID: off.ID.String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, menuerrors.ErrMenuItemUnavailable)
}

func TestCreateOrderUnknownTable(t *testing.T) {
	svc, _, _, _, mock := newTestOrderService(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), uuid.NewString(), CreateOrderRequest{
		TableID: uuid.NewString(),
		Items:   []OrderItemRequest{{MenuItemID: uuid.NewString(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, ordererrors.ErrTableNotFound)
}

func TestUpdateStatusBlockedTransition(t *testing.T) {
	svc, repo, _, _, mock := newTestOrderService(t)

	o := &Order{ID: uuid.New(), OrderNumber: "ORD-000001", TableID: uuid.New(), WaiterID: uuid.New(), Status: StatusPending}
	repo.orders[o.ID.String()] = o

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.UpdateStatus(context.Background(), o.ID.String(), UpdateStatusRequest{Status: StatusPaid})
	assert.ErrorIs(t, err, ordererrors.ErrInvalidTransition)
}

func TestUpdateStatusPaidStampsTimestamp(t *testing.T) {
	svc, repo, _, _, mock := newTestOrderService(t)

	o := &Order{ID: uuid.New(), OrderNumber: "ORD-000002", TableID: uuid.New(), WaiterID: uuid.New(), Status: StatusServed}
	repo.orders[o.ID.String()] = o

	mock.ExpectBegin()
	mock.ExpectCommit()

	before := time.Now().UTC()
	got, err := svc.UpdateStatus(context.Background(), o.ID.String(), UpdateStatusRequest{Status: StatusPaid})
	require.NoError(t, err)

	assert.Equal(t, StatusPaid, got.Status)
	require.NotNil(t, got.PaidAt)
	paidAt, err := time.Parse(time.RFC3339, *got.PaidAt)
	require.NoError(t, err)
	assert.False(t, paidAt.Before(before.Truncate(time.Second)))
}
