package wagerate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	wagerateerrors "github.com/Bang334/QuanAn-sub002/internal/wagerate/errors"
)

// Config controls what happens when no rate exists for a role and shift.
// With AllowAutoDefaultRate enabled, payroll never fails on a missing rate:
// a default rate is created on the fly and the gap is surfaced in the logs
// instead. Disabled, payroll reports the gap as an error.
type Config struct {
	DefaultHourlyRate    int64
	AllowAutoDefaultRate bool
}

func ConfigFromEnv() Config {
	cfg := Config{DefaultHourlyRate: 25000}
	if v := os.Getenv("PAYROLL_DEFAULT_HOURLY_RATE"); v != "" {
		if rate, err := strconv.ParseInt(v, 10, 64); err == nil && rate > 0 {
			cfg.DefaultHourlyRate = rate
		}
	}
	if v := os.Getenv("PAYROLL_ALLOW_AUTO_DEFAULT_RATE"); v != "" {
		cfg.AllowAutoDefaultRate, _ = strconv.ParseBool(v)
	}
	return cfg
}

//go:generate mockgen -source=wagerate_service.go -destination=mock/wagerate_service_mock.go -package=mock
type Service interface {
	// Resolve finds the rate that applies to role+shift on asOf. The
	// lookup falls back from role+shift to role-only, then either
	// auto-creates a default rate or fails, depending on Config.
	Resolve(ctx context.Context, role, shift string, asOf time.Time) (*WageRate, error)
	Create(ctx context.Context, req CreateWageRateRequest) (WageRateResponse, error)
	GetAll(ctx context.Context, filter ListWageRateFilter) ([]WageRateResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	cfg    Config
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("wagerate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wagerate.service")
	}
	return &service{repo: repo, cfg: cfg, logger: l}
}

func (s *service) Resolve(ctx context.Context, role, shift string, asOf time.Time) (*WageRate, error) {
	rate, err := s.repo.FindEffective(ctx, role, shift, asOf)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rate, err = s.repo.FindEffectiveByRole(ctx, role, asOf)
	if err == nil {
		s.logger.Debug("wage rate resolved via role fallback",
			zap.String("role", role),
			zap.String("shift", shift),
		)
		return rate, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if !s.cfg.AllowAutoDefaultRate {
		s.logger.Warn("no wage rate configured",
			zap.String("role", role),
			zap.String("shift", shift),
			zap.Time("as_of", asOf),
		)
		return nil, wagerateerrors.ErrMissingRateConfiguration
	}

	return s.autoCreateDefault(ctx, role, shift, asOf)
}

// autoCreateDefault persists a default rate for the missing role+shift pair.
// Concurrent resolves for the same pair are collapsed through singleflight so
// only one row is written.
func (s *service) autoCreateDefault(ctx context.Context, role, shift string, asOf time.Time) (*WageRate, error) {
	key := fmt.Sprintf("%s:%s", role, shift)
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// Another resolve may have created it while we queued.
		if existing, err := s.repo.FindEffective(ctx, role, shift, asOf); err == nil {
			return existing, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		rate := &WageRate{
			ID:            uuid.New(),
			Role:          role,
			Shift:         shift,
			HourlyRate:    s.cfg.DefaultHourlyRate,
			EffectiveDate: time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC),
			IsActive:      true,
		}
		if err := s.repo.Create(ctx, rate); err != nil {
			return nil, err
		}

		s.logger.Warn("auto-created default wage rate, review rate configuration",
			zap.String("role", role),
			zap.String("shift", shift),
			zap.Int64("hourly_rate", rate.HourlyRate),
			zap.String("effective_date", rate.EffectiveDate.Format("2006-01-02")),
		)
		return rate, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*WageRate), nil
}

func (s *service) Create(ctx context.Context, req CreateWageRateRequest) (WageRateResponse, error) {
	effective, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return WageRateResponse{}, wagerateerrors.ErrInvalidEffectiveDate
	}

	rate := &WageRate{
		ID:            uuid.New(),
		Role:          req.Role,
		Shift:         req.Shift,
		HourlyRate:    req.HourlyRate,
		EffectiveDate: effective,
		IsActive:      true,
	}
	if err := s.repo.Create(ctx, rate); err != nil {
		s.logger.Error("create wage rate failed", zap.Error(err))
		return WageRateResponse{}, err
	}

	s.logger.Info("wage rate created",
		zap.String("role", rate.Role),
		zap.String("shift", rate.Shift),
		zap.Int64("hourly_rate", rate.HourlyRate),
	)
	return mapToResponse(*rate), nil
}

func (s *service) GetAll(ctx context.Context, filter ListWageRateFilter) ([]WageRateResponse, error) {
	rates, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := make([]WageRateResponse, len(rates))
	for i, r := range rates {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return wagerateerrors.ErrWageRateNotFound
		}
		return err
	}
	s.logger.Info("wage rate deactivated", zap.String("wage_rate_id", id))
	return nil
}

func mapToResponse(r WageRate) WageRateResponse {
	return WageRateResponse{
		ID:            r.ID.String(),
		Role:          r.Role,
		Shift:         r.Shift,
		HourlyRate:    r.HourlyRate,
		EffectiveDate: r.EffectiveDate.Format("2006-01-02"),
		IsActive:      r.IsActive,
	}
}
