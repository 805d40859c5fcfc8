package review

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Bang334/QuanAn-sub002/internal/menu"
	menuerrors "github.com/Bang334/QuanAn-sub002/internal/menu/errors"
	reviewerrors "github.com/Bang334/QuanAn-sub002/internal/review/errors"
)

//go:generate mockgen -source=review_service.go -destination=mock/review_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	GetByMenuItem(ctx context.Context, menuItemID string, includeHidden bool) ([]ReviewResponse, error)
	Moderate(ctx context.Context, id string, req ModerateReviewRequest) (ReviewResponse, error)
}

type service struct {
	repo     Repository
	menuRepo menu.Repository
	logger   *zap.Logger
}

func NewService(repo Repository, menuRepo menu.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("review.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("review.service")
	}
	return &service{repo: repo, menuRepo: menuRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error) {
	if _, err := s.menuRepo.FindByID(ctx, req.MenuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReviewResponse{}, menuerrors.ErrMenuItemNotFound
		}
		return ReviewResponse{}, err
	}

	rv := &Review{
		ID:           uuid.New(),
		MenuItemID:   uuid.MustParse(req.MenuItemID),
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		s.logger.Error("create review failed", zap.Error(err))
		return ReviewResponse{}, err
	}

	s.logger.Info("review created",
		zap.String("menu_item_id", req.MenuItemID),
		zap.Int("rating", req.Rating),
	)

	return mapToResponse(*rv), nil
}

func (s *service) GetByMenuItem(ctx context.Context, menuItemID string, includeHidden bool) ([]ReviewResponse, error) {
	rows, err := s.repo.FindByMenuItem(ctx, menuItemID, includeHidden)
	if err != nil {
		return nil, err
	}

	res := make([]ReviewResponse, len(rows))
	for i, rv := range rows {
		res[i] = mapToResponse(rv)
	}
	return res, nil
}

func (s *service) Moderate(ctx context.Context, id string, req ModerateReviewRequest) (ReviewResponse, error) {
	rv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReviewResponse{}, reviewerrors.ErrReviewNotFound
		}
		return ReviewResponse{}, err
	}

	rv.IsHidden = req.Hidden
	if err := s.repo.Update(ctx, rv); err != nil {
		return ReviewResponse{}, err
	}

	s.logger.Info("review moderated",
		zap.String("review_id", id),
		zap.Bool("hidden", req.Hidden),
	)

	return mapToResponse(*rv), nil
}

func mapToResponse(rv Review) ReviewResponse {
	return ReviewResponse{
		ID:           rv.ID.String(),
		MenuItemID:   rv.MenuItemID.String(),
		CustomerName: rv.CustomerName,
		Rating:       rv.Rating,
		Comment:      rv.Comment,
		IsHidden:     rv.IsHidden,
		CreatedAt:    rv.CreatedAt.Format(time.RFC3339),
	}
}
