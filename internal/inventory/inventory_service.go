package inventory

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	inventoryerrors "github.com/Bang334/QuanAn-sub002/internal/inventory/errors"
)

//go:generate mockgen -source=inventory_service.go -destination=mock/inventory_service_mock.go -package=mock
type Service interface {
	CreateIngredient(ctx context.Context, req CreateIngredientRequest) (IngredientResponse, error)
	GetIngredients(ctx context.Context) ([]IngredientResponse, error)
	GetLowStock(ctx context.Context) ([]IngredientResponse, error)

	CreateSupplier(ctx context.Context, req CreateSupplierRequest) (SupplierResponse, error)
	GetSuppliers(ctx context.Context) ([]SupplierResponse, error)

	// RecordMovement applies one receipt or usage entry and adjusts the
	// ingredient's stock in the same transaction.
	RecordMovement(ctx context.Context, req RecordMovementRequest) (MovementResponse, error)
	GetMovements(ctx context.Context, ingredientID string) ([]MovementResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("inventory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("inventory.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "name") {
			return inventoryerrors.ErrIngredientNameTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "name") {
		return inventoryerrors.ErrIngredientNameTaken
	}

	return err
}

func (s *service) CreateIngredient(ctx context.Context, req CreateIngredientRequest) (IngredientResponse, error) {
	ing := &Ingredient{
		ID:           uuid.New(),
		Name:         req.Name,
		Unit:         req.Unit,
		ReorderLevel: req.ReorderLevel,
	}
	if err := s.repo.CreateIngredient(ctx, ing); err != nil {
		s.logger.Error("create ingredient failed", zap.Error(err))
		return IngredientResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("ingredient created", zap.String("name", ing.Name))
	return mapIngredient(*ing), nil
}

func (s *service) GetIngredients(ctx context.Context) ([]IngredientResponse, error) {
	rows, err := s.repo.FindAllIngredients(ctx)
	if err != nil {
		return nil, err
	}
	return mapIngredients(rows), nil
}

func (s *service) GetLowStock(ctx context.Context) ([]IngredientResponse, error) {
	rows, err := s.repo.FindLowStockIngredients(ctx)
	if err != nil {
		return nil, err
	}
	return mapIngredients(rows), nil
}

func (s *service) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (SupplierResponse, error) {
	sup := &Supplier{
		ID:    uuid.New(),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := s.repo.CreateSupplier(ctx, sup); err != nil {
		s.logger.Error("create supplier failed", zap.Error(err))
		return SupplierResponse{}, err
	}

	s.logger.Info("supplier created", zap.String("name", sup.Name))
	return mapSupplier(*sup), nil
}

func (s *service) GetSuppliers(ctx context.Context) ([]SupplierResponse, error) {
	rows, err := s.repo.FindAllSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]SupplierResponse, len(rows))
	for i, sup := range rows {
		res[i] = mapSupplier(sup)
	}
	return res, nil
}

func (s *service) RecordMovement(ctx context.Context, req RecordMovementRequest) (MovementResponse, error) {
	if req.Type == MovementReceipt && (req.SupplierID == nil || req.UnitCost == nil) {
		return MovementResponse{}, inventoryerrors.ErrReceiptRequiresSupplier
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MovementResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ing, err := qtx.FindIngredientByID(ctx, req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MovementResponse{}, inventoryerrors.ErrIngredientNotFound
		}
		return MovementResponse{}, err
	}

	var supplierID *uuid.UUID
	if req.SupplierID != nil {
		if _, err := qtx.FindSupplierByID(ctx, *req.SupplierID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return MovementResponse{}, inventoryerrors.ErrSupplierNotFound
			}
			return MovementResponse{}, err
		}
		id := uuid.MustParse(*req.SupplierID)
		supplierID = &id
	}

	switch req.Type {
	case MovementReceipt:
		ing.StockQty += req.Quantity
	case MovementUsage:
		if ing.StockQty < req.Quantity {
			return MovementResponse{}, inventoryerrors.ErrInsufficientStock
		}
		ing.StockQty -= req.Quantity
	}

	m := &StockMovement{
		ID:           uuid.New(),
		IngredientID: ing.ID,
		SupplierID:   supplierID,
		Type:         req.Type,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		Notes:        req.Notes,
	}
	if err := qtx.CreateMovement(ctx, m); err != nil {
		return MovementResponse{}, err
	}
	if err := qtx.UpdateIngredient(ctx, ing); err != nil {
		return MovementResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return MovementResponse{}, err
	}

	if ing.StockQty <= ing.ReorderLevel {
		s.logger.Warn("ingredient below reorder level",
			zap.String("ingredient_id", ing.ID.String()),
			zap.Float64("stock_qty", ing.StockQty),
			zap.Float64("reorder_level", ing.ReorderLevel),
		)
	}

	s.logger.Info("stock movement recorded",
		zap.String("ingredient_id", ing.ID.String()),
		zap.String("type", req.Type),
		zap.Float64("quantity", req.Quantity),
	)

	return mapMovement(*m), nil
}

func (s *service) GetMovements(ctx context.Context, ingredientID string) ([]MovementResponse, error) {
	if _, err := s.repo.FindIngredientByID(ctx, ingredientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventoryerrors.ErrIngredientNotFound
		}
		return nil, err
	}

	rows, err := s.repo.FindMovementsByIngredient(ctx, ingredientID)
	if err != nil {
		return nil, err
	}

	res := make([]MovementResponse, len(rows))
	for i, m := range rows {
		res[i] = mapMovement(m)
	}
	return res, nil
}

func mapIngredient(ing Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:           ing.ID.String(),
		Name:         ing.Name,
		Unit:         ing.Unit,
		StockQty:     ing.StockQty,
		ReorderLevel: ing.ReorderLevel,
	}
}

func mapIngredients(rows []Ingredient) []IngredientResponse {
	res := make([]IngredientResponse, len(rows))
	for i, ing := range rows {
		res[i] = mapIngredient(ing)
	}
	return res
}

func mapSupplier(sup Supplier) SupplierResponse {
	return SupplierResponse{
		ID:    sup.ID.String(),
		Name:  sup.Name,
		Phone: sup.Phone,
		Email: sup.Email,
	}
}

func mapMovement(m StockMovement) MovementResponse {
	resp := MovementResponse{
		ID:           m.ID.String(),
		IngredientID: m.IngredientID.String(),
		Type:         m.Type,
		Quantity:     m.Quantity,
		UnitCost:     m.UnitCost,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
	}
	if m.SupplierID != nil {
		v := m.SupplierID.String()
		resp.SupplierID = &v
	}
	return resp
}
