package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Bang334/QuanAn-sub002/internal/menu"
	menuerrors "github.com/Bang334/QuanAn-sub002/internal/menu/errors"
	ordererrors "github.com/Bang334/QuanAn-sub002/internal/order/errors"
	"github.com/Bang334/QuanAn-sub002/internal/promotion"
	"github.com/Bang334/QuanAn-sub002/internal/shared/contextutil"
	"github.com/Bang334/QuanAn-sub002/internal/shared/counter"
)

//go:generate mockgen -source=order_service.go -destination=mock/order_service_mock.go -package=mock
type Service interface {
	CreateTable(ctx context.Context, req CreateTableRequest) (TableResponse, error)
	GetTables(ctx context.Context) ([]TableResponse, error)

	Create(ctx context.Context, waiterID string, req CreateOrderRequest) (OrderResponse, error)
	GetAll(ctx context.Context, filter ListOrderFilter) ([]OrderResponse, error)
	GetByID(ctx context.Context, id string) (OrderResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (OrderResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	menuRepo   menu.Repository
	promotions promotion.Service
	counter    counter.Repository
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	menuRepo menu.Repository,
	promotionService promotion.Service,
	counterRepo counter.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("order.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		menuRepo:   menuRepo,
		promotions: promotionService,
		counter:    counterRepo,
		logger:     l,
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "number") {
			return ordererrors.ErrTableNumberTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "number") {
		return ordererrors.ErrTableNumberTaken
	}

	return err
}

func (s *service) CreateTable(ctx context.Context, req CreateTableRequest) (TableResponse, error) {
	t := &DiningTable{
		ID:     uuid.New(),
		Number: req.Number,
		Seats:  req.Seats,
	}
	if err := s.repo.CreateTable(ctx, t); err != nil {
		s.logger.Error("create table failed", zap.Error(err))
		return TableResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("table created", zap.Int("number", t.Number))
	return mapTableResponse(*t), nil
}

func (s *service) GetTables(ctx context.Context) ([]TableResponse, error) {
	rows, err := s.repo.FindAllTables(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]TableResponse, len(rows))
	for i, t := range rows {
		res[i] = mapTableResponse(t)
	}
	return res, nil
}

// Create prices every line from the current menu, applying the best live
// promotion per item. Prices and discounts are frozen on the order.
func (s *service) Create(ctx context.Context, waiterID string, req CreateOrderRequest) (OrderResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindTableByID(ctx, req.TableID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, ordererrors.ErrTableNotFound
		}
		return OrderResponse{}, err
	}

	nextVal, err := s.counter.GetNextValue(ctx, counter.TypeOrderNumber)
	if err != nil {
		s.logger.Error("generate order number failed", zap.Error(err))
		return OrderResponse{}, err
	}

	now := time.Now().UTC()
	o := &Order{
		ID:          uuid.New(),
		OrderNumber: fmt.Sprintf("ORD-%06d", nextVal),
		TableID:     uuid.MustParse(req.TableID),
		WaiterID:    uuid.MustParse(waiterID),
		Status:      StatusPending,
		Notes:       req.Notes,
	}

	for _, line := range req.Items {
		item, err := s.menuRepo.FindByID(ctx, line.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return OrderResponse{}, menuerrors.ErrMenuItemNotFound
			}
			return OrderResponse{}, err
		}
		if !item.IsAvailable {
			return OrderResponse{}, menuerrors.ErrMenuItemUnavailable
		}

		discountPercent, promotionID, err := s.promotions.DiscountFor(ctx, line.MenuItemID, now)
		if err != nil {
			return OrderResponse{}, err
		}

		gross := item.Price * int64(line.Quantity)
		discount := gross * int64(discountPercent) / 100
		o.Items = append(o.Items, OrderItem{
			ID:              uuid.New(),
			OrderID:         o.ID,
			MenuItemID:      item.ID,
			Name:            item.Name,
			Quantity:        line.Quantity,
			UnitPrice:       item.Price,
			DiscountPercent: discountPercent,
			PromotionID:     promotionID,
			LineTotal:       gross - discount,
		})
		o.Subtotal += gross
		o.Discount += discount
	}
	o.Total = o.Subtotal - o.Discount

	if err := qtx.Create(ctx, o); err != nil {
		s.logger.Error("create order failed", zap.String("request_id", rid), zap.Error(err))
		return OrderResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return OrderResponse{}, err
	}

	s.logger.Info("order created",
		zap.String("request_id", rid),
		zap.String("order_number", o.OrderNumber),
		zap.Int("items", len(o.Items)),
		zap.Int64("total", o.Total),
	)

	return mapToResponse(*o), nil
}

func (s *service) GetAll(ctx context.Context, filter ListOrderFilter) ([]OrderResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := make([]OrderResponse, len(rows))
	for i, o := range rows {
		res[i] = mapToResponse(o)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, ordererrors.ErrOrderNotFound
		}
		return OrderResponse{}, err
	}
	return mapToResponse(*o), nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (OrderResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, ordererrors.ErrOrderNotFound
		}
		return OrderResponse{}, err
	}

	if !CanTransition(o.Status, req.Status) {
		s.logger.Warn("blocked order status transition",
			zap.String("order_id", id),
			zap.String("from", o.Status),
			zap.String("to", req.Status),
		)
		return OrderResponse{}, ordererrors.ErrInvalidTransition
	}

	o.Status = req.Status
	if req.Status == StatusPaid {
		now := time.Now().UTC()
		o.PaidAt = &now
	}

	if err := qtx.Update(ctx, o); err != nil {
		return OrderResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return OrderResponse{}, err
	}

	s.logger.Info("order status updated",
		zap.String("order_id", id),
		zap.String("status", o.Status),
	)

	return mapToResponse(*o), nil
}

func mapTableResponse(t DiningTable) TableResponse {
	return TableResponse{
		ID:     t.ID.String(),
		Number: t.Number,
		Seats:  t.Seats,
	}
}

func mapToResponse(o Order) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID.String(),
		OrderNumber: o.OrderNumber,
		TableID:     o.TableID.String(),
		WaiterID:    o.WaiterID.String(),
		Status:      o.Status,
		Subtotal:    o.Subtotal,
		Discount:    o.Discount,
		Total:       o.Total,
		Notes:       o.Notes,
		Items:       make([]OrderItemResponse, len(o.Items)),
	}
	if o.PaidAt != nil {
		v := o.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	for i, item := range o.Items {
		line := OrderItemResponse{
			ID:              item.ID.String(),
			MenuItemID:      item.MenuItemID.String(),
			Name:            item.Name,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
			LineTotal:       item.LineTotal,
		}
		if item.PromotionID != nil {
			v := item.PromotionID.String()
			line.PromotionID = &v
		}
		resp.Items[i] = line
	}
	return resp
}
