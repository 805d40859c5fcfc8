package promotion

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	promotionerrors "github.com/Bang334/QuanAn-sub002/internal/promotion/errors"
)

//go:generate mockgen -source=promotion_service.go -destination=mock/promotion_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePromotionRequest) (PromotionResponse, error)
	GetAll(ctx context.Context, filter ListPromotionFilter) ([]PromotionResponse, error)
	GetByID(ctx context.Context, id string) (PromotionResponse, error)
	// DiscountFor returns the live discount percent for a menu item at
	// the given instant, zero when none applies.
	DiscountFor(ctx context.Context, menuItemID string, at time.Time) (int, *uuid.UUID, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("promotion.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("promotion.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePromotionRequest) (PromotionResponse, error) {
	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return PromotionResponse{}, promotionerrors.ErrInvalidPeriod
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		return PromotionResponse{}, promotionerrors.ErrInvalidPeriod
	}
	if !endsAt.After(startsAt) {
		return PromotionResponse{}, promotionerrors.ErrInvalidPeriod
	}

	p := &Promotion{
		ID:              uuid.New(),
		Name:            req.Name,
		MenuItemID:      uuid.MustParse(req.MenuItemID),
		DiscountPercent: req.DiscountPercent,
		StartsAt:        startsAt,
		EndsAt:          endsAt,
		IsActive:        true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create promotion failed", zap.Error(err))
		return PromotionResponse{}, err
	}

	s.logger.Info("promotion created",
		zap.String("promotion_id", p.ID.String()),
		zap.String("menu_item_id", p.MenuItemID.String()),
		zap.Int("discount_percent", p.DiscountPercent),
	)

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, filter ListPromotionFilter) ([]PromotionResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := make([]PromotionResponse, len(rows))
	for i, p := range rows {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PromotionResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PromotionResponse{}, promotionerrors.ErrPromotionNotFound
		}
		return PromotionResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) DiscountFor(ctx context.Context, menuItemID string, at time.Time) (int, *uuid.UUID, error) {
	p, err := s.repo.FindLiveByMenuItem(ctx, menuItemID, at)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, nil
		}
		return 0, nil, err
	}
	id := p.ID
	return p.DiscountPercent, &id, nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return promotionerrors.ErrPromotionNotFound
		}
		return err
	}
	s.logger.Info("promotion deactivated", zap.String("promotion_id", id))
	return nil
}

func mapToResponse(p Promotion) PromotionResponse {
	return PromotionResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		MenuItemID:      p.MenuItemID.String(),
		DiscountPercent: p.DiscountPercent,
		StartsAt:        p.StartsAt.Format(time.RFC3339),
		EndsAt:          p.EndsAt.Format(time.RFC3339),
		IsActive:        p.IsActive,
	}
}
