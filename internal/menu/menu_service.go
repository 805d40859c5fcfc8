package menu

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	menuerrors "github.com/Bang334/QuanAn-sub002/internal/menu/errors"
)

const MenuOptionsKey = "menu:options"

//go:generate mockgen -source=menu_service.go -destination=mock/menu_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateMenuItemRequest) (MenuItemResponse, error)
	GetAll(ctx context.Context, filter ListMenuFilter) ([]MenuItemResponse, error)
	GetOptions(ctx context.Context) ([]MenuOption, error)
	GetByID(ctx context.Context, id string) (MenuItemResponse, error)
	Update(ctx context.Context, id string, req UpdateMenuItemRequest) (MenuItemResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("menu.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("menu.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "name") {
			return menuerrors.ErrMenuItemNameTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "name") {
		return menuerrors.ErrMenuItemNameTaken
	}

	return err
}

func (s *service) Create(ctx context.Context, req CreateMenuItemRequest) (MenuItemResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MenuItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item := &MenuItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		IsAvailable: true,
	}
	if err := qtx.Create(ctx, item); err != nil {
		s.logger.Error("create menu item failed", zap.Error(err))
		return MenuItemResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return MenuItemResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("menu item created",
		zap.String("menu_item_id", item.ID.String()),
		zap.String("name", item.Name),
	)

	return mapToResponse(*item), nil
}

func (s *service) GetAll(ctx context.Context, filter ListMenuFilter) ([]MenuItemResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := make([]MenuItemResponse, len(rows))
	for i, item := range rows {
		res[i] = mapToResponse(item)
	}
	return res, nil
}

// GetOptions serves the order-taking dropdown. Cached in Redis with
// singleflight collapsing concurrent cache misses.
func (s *service) GetOptions(ctx context.Context) ([]MenuOption, error) {
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, MenuOptionsKey).Result(); err == nil {
			var cached []MenuOption
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	v, err, _ := s.sf.Do(MenuOptionsKey, func() (any, error) {
		rows, err := s.repo.FindAllAvailable(ctx)
		if err != nil {
			return nil, err
		}

		options := make([]MenuOption, len(rows))
		for i, item := range rows {
			options[i] = MenuOption{
				ID:    item.ID.String(),
				Name:  item.Name,
				Price: item.Price,
			}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(options); err == nil {
				if err := s.rdb.Set(ctx, MenuOptionsKey, payload, time.Hour).Err(); err != nil {
					s.logger.Error("cache menu options failed", zap.Error(err))
				}
			}
		}

		return options, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]MenuOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (MenuItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MenuItemResponse{}, menuerrors.ErrMenuItemNotFound
		}
		return MenuItemResponse{}, err
	}
	return mapToResponse(*item), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateMenuItemRequest) (MenuItemResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MenuItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MenuItemResponse{}, menuerrors.ErrMenuItemNotFound
		}
		return MenuItemResponse{}, err
	}

	item.Name = req.Name
	item.Category = req.Category
	item.Price = req.Price
	item.Description = req.Description
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := qtx.Update(ctx, item); err != nil {
		return MenuItemResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return MenuItemResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("menu item updated", zap.String("menu_item_id", id))

	return mapToResponse(*item), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return menuerrors.ErrMenuItemNotFound
		}
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("menu item deleted", zap.String("menu_item_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, MenuOptionsKey).Err(); err != nil {
		s.logger.Warn("invalidate menu options cache failed", zap.Error(err))
	}
}

func mapToResponse(item MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price,
		Description: item.Description,
		IsAvailable: item.IsAvailable,
	}
}
