package menu

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	menuerrors "github.com/Bang334/QuanAn-sub002/internal/menu/errors"
)

type fakeMenuRepo struct {
	items     map[string]*MenuItem
	findCalls int
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: map[string]*MenuItem{}}
}

func (f *fakeMenuRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeMenuRepo) Create(ctx context.Context, item *MenuItem) error {
	cp := *item
	f.items[item.ID.String()] = &cp
	return nil
}

func (f *fakeMenuRepo) FindAll(ctx context.Context, filter ListMenuFilter) ([]MenuItem, error) {
	var out []MenuItem
	for _, item := range f.items {
		out = append(out, *item)
	}
	return out, nil
}

func (f *fakeMenuRepo) FindAllAvailable(ctx context.Context) ([]MenuItem, error) {
	f.findCalls++
	var out []MenuItem
	for _, item := range f.items {
		if item.IsAvailable {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeMenuRepo) FindByID(ctx context.Context, id string) (*MenuItem, error) {
	if item, ok := f.items[id]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMenuRepo) Update(ctx context.Context, item *MenuItem) error {
	cp := *item
	f.items[item.ID.String()] = &cp
	return nil
}

func (f *fakeMenuRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.items, id)
	return nil
}

func TestGetOptionsCachesInRedis(t *testing.T) {
	repo := newFakeMenuRepo()
	item := &MenuItem{ID: uuid.New(), Name: "Pho Bo", Category: CategoryMain, Price: 65000, IsAvailable: true}
	repo.items[item.ID.String()] = item

	rdb, mock := redismock.NewClientMock()
	svc := NewService(nil, repo, rdb)

	expected := []MenuOption{{ID: item.ID.String(), Name: "Pho Bo", Price: 65000}}
	payload, err := json.Marshal(expected)
	require.NoError(t, err)

	mock.ExpectGet(MenuOptionsKey).RedisNil()
	mock.ExpectSet(MenuOptionsKey, payload, time.Hour).SetVal("OK")

	got, err := svc.GetOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	assert.Equal(t, 1, repo.findCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOptionsServedFromCache(t *testing.T) {
	repo := newFakeMenuRepo()
	rdb, mock := redismock.NewClientMock()
	svc := NewService(nil, repo, rdb)

	cached := []MenuOption{{ID: uuid.NewString(), Name: "Com Tam", Price: 45000}}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)
	mock.ExpectGet(MenuOptionsKey).SetVal(string(payload))

	got, err := svc.GetOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, got)
	assert.Zero(t, repo.findCalls)
}

func TestUpdateInvalidatesOptionsCache(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := newFakeMenuRepo()
	item := &MenuItem{ID: uuid.New(), Name: "Pho Bo", Category: CategoryMain, Price: 65000, IsAvailable: true}
	repo.items[item.ID.String()] = item

	rdb, redisMock := redismock.NewClientMock()
	svc := NewService(db, repo, rdb)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()
	redisMock.ExpectDel(MenuOptionsKey).SetVal(1)

	_, err = svc.Update(context.Background(), item.ID.String(), UpdateMenuItemRequest{
		Name:     "Pho Bo Tai",
		Category: CategoryMain,
		Price:    70000,
	})
	require.NoError(t, err)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestUpdateUnknownItem(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rdb, _ := redismock.NewClientMock()
	svc := NewService(db, newFakeMenuRepo(), rdb)

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	_, err = svc.Update(context.Background(), uuid.NewString(), UpdateMenuItemRequest{
		Name:     "Goi Cuon",
		Category: CategorySide,
		Price:    30000,
	})
	assert.ErrorIs(t, err, menuerrors.ErrMenuItemNotFound)
}
