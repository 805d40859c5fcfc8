package app

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Bang334/QuanAn-sub002/internal/middleware"
	"github.com/Bang334/QuanAn-sub002/internal/shared/connection"
	"github.com/Bang334/QuanAn-sub002/internal/shared/response"
)

type App struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
	Router *gin.Engine
	Logger *zap.Logger
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BuildApp connects the infrastructure and wires every module onto the
// router. Redis is optional; without it the caching and idempotency
// layers degrade to pass-through.
func BuildApp(logger *zap.Logger) (*App, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "postgres"),
		envOr("DB_PASSWORD", "postgres"),
		envOr("DB_NAME", "quanan"),
		envOr("DB_PORT", "5432"),
		envOr("DB_SSLMODE", "disable"),
		5,
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(envOr("REDIS_ADDR", "localhost:6379"), 3)
	if err != nil {
		logger.Warn("redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())

	router.GET("/healthz", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	api := router.Group("/api/v1")
	if err := registerModules(api, gormDB, sqlDB, rdb, logger); err != nil {
		return nil, err
	}

	return &App{
		GormDB: gormDB,
		SQLDB:  sqlDB,
		Redis:  rdb,
		Router: router,
		Logger: logger,
	}, nil
}
