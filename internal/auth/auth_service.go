package auth

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	autherrors "github.com/Bang334/QuanAn-sub002/internal/auth/errors"
	"github.com/Bang334/QuanAn-sub002/internal/employee"
)

const tokenTTL = 12 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AccountResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Me(ctx context.Context, accountID string) (AccountResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository) Service {
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		logger:       zap.L().Named("auth.service"),
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AccountResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AccountResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := s.employeeRepo.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, autherrors.ErrAccountNotFound
		}
		return AccountResponse{}, err
	}

	if _, err := qtx.FindByUsername(ctx, req.Username); err == nil {
		return AccountResponse{}, autherrors.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AccountResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AccountResponse{}, err
	}

	account := &Account{
		ID:           uuid.New(),
		EmployeeID:   emp.ID,
		Username:     req.Username,
		PasswordHash: string(hash),
	}

	if err := qtx.Create(ctx, account); err != nil {
		s.logger.Error("register persist failed", zap.Error(err))
		return AccountResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AccountResponse{}, err
	}

	s.logger.Info("account registered",
		zap.String("account_id", account.ID.String()),
		zap.String("employee_id", emp.ID.String()),
	)

	return AccountResponse{
		ID:         account.ID.String(),
		EmployeeID: emp.ID.String(),
		Username:   account.Username,
		Role:       emp.Role,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	account, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login failed", zap.String("username", req.Username))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	role, err := s.employeeRepo.GetRoleByID(ctx, account.EmployeeID.String())
	if err != nil {
		return LoginResponse{}, err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"account_id":  account.ID.String(),
		"employee_id": account.EmployeeID.String(),
		"role":        role,
		"iat":         now.Unix(),
		"exp":         now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return LoginResponse{}, err
	}

	if err := s.repo.TouchLastLogin(ctx, account.ID.String(), now); err != nil {
		s.logger.Warn("touch last login failed", zap.Error(err))
	}

	s.logger.Info("login success",
		zap.String("account_id", account.ID.String()),
		zap.String("role", role),
	)

	return LoginResponse{
		AccessToken: signed,
		ExpiresIn:   int64(tokenTTL.Seconds()),
		AccountID:   account.ID.String(),
		EmployeeID:  account.EmployeeID.String(),
		Role:        role,
	}, nil
}

func (s *service) Me(ctx context.Context, accountID string) (AccountResponse, error) {
	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, autherrors.ErrAccountNotFound
		}
		return AccountResponse{}, err
	}

	role, err := s.employeeRepo.GetRoleByID(ctx, account.EmployeeID.String())
	if err != nil {
		return AccountResponse{}, err
	}

	return AccountResponse{
		ID:         account.ID.String(),
		EmployeeID: account.EmployeeID.String(),
		Username:   account.Username,
		Role:       role,
	}, nil
}
