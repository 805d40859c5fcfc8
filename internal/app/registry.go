package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Bang334/QuanAn-sub002/internal/attendance"
	"github.com/Bang334/QuanAn-sub002/internal/auth"
	"github.com/Bang334/QuanAn-sub002/internal/employee"
	"github.com/Bang334/QuanAn-sub002/internal/inventory"
	"github.com/Bang334/QuanAn-sub002/internal/menu"
	"github.com/Bang334/QuanAn-sub002/internal/messaging/kafka"
	"github.com/Bang334/QuanAn-sub002/internal/order"
	"github.com/Bang334/QuanAn-sub002/internal/promotion"
	"github.com/Bang334/QuanAn-sub002/internal/rbac"
	"github.com/Bang334/QuanAn-sub002/internal/rbac/infra"
	"github.com/Bang334/QuanAn-sub002/internal/review"
	"github.com/Bang334/QuanAn-sub002/internal/salary"
	"github.com/Bang334/QuanAn-sub002/internal/schedule"
	"github.com/Bang334/QuanAn-sub002/internal/shared/counter"
	"github.com/Bang334/QuanAn-sub002/internal/wagerate"
)

// registerModules builds every repository, service and handler and mounts
// the routes. Construction order follows the dependency chain: shared
// infra, RBAC, then the feature modules.
func registerModules(
	api *gin.RouterGroup,
	gormDB *gorm.DB,
	sqlDB *sql.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacRepo := rbac.NewRepository(gormDB)
	rbacService := rbac.NewService(rbacRepo, enforcer)
	if err := rbacService.ReloadPolicy(); err != nil {
		return err
	}
	rbac.RegisterRoutes(api, rbac.NewHandler(rbacRepo), rbacService)

	employeeRepo := employee.NewRepository(gormDB)
	employeeService := employee.NewService(sqlDB, employeeRepo, counterRepo, rdb, logger)
	employee.RegisterRoutes(api, employee.NewHandler(employeeService), rbacService)

	authRepo := auth.NewRepository(gormDB)
	authService := auth.NewService(sqlDB, authRepo, employeeRepo)
	auth.RegisterRoutes(api, auth.NewHandler(authService))

	scheduleRepo := schedule.NewRepository(gormDB)
	scheduleService := schedule.NewService(sqlDB, scheduleRepo, logger)
	schedule.RegisterRoutes(api, schedule.NewHandler(scheduleService), rbacService)

	attendanceRepo := attendance.NewRepository(gormDB)
	attendanceService := attendance.NewServiceWithOutbox(sqlDB, attendanceRepo, scheduleService, outboxRepo, logger)
	attendance.RegisterRoutes(api, attendance.NewHandler(attendanceService), rbacService)

	wageRateRepo := wagerate.NewRepository(gormDB)
	wageRateService := wagerate.NewService(wageRateRepo, wagerate.ConfigFromEnv(), logger)
	wagerate.RegisterRoutes(api, wagerate.NewHandler(wageRateService), rbacService)

	salaryRepo := salary.NewRepository(gormDB)
	salaryService := salary.NewService(sqlDB, salaryRepo, employeeRepo, wageRateService, logger)
	salary.RegisterRoutes(api, salary.NewHandlerWithRedis(salaryService, rdb), rbacService, rdb)

	menuRepo := menu.NewRepository(gormDB)
	menuService := menu.NewService(sqlDB, menuRepo, rdb, logger)
	menu.RegisterRoutes(api, menu.NewHandler(menuService), rbacService)

	promotionRepo := promotion.NewRepository(gormDB)
	promotionService := promotion.NewService(promotionRepo, logger)
	promotion.RegisterRoutes(api, promotion.NewHandler(promotionService), rbacService)

	orderRepo := order.NewRepository(gormDB)
	orderService := order.NewService(sqlDB, orderRepo, menuRepo, promotionService, counterRepo, logger)
	order.RegisterRoutes(api, order.NewHandlerWithRedis(orderService, rdb), rbacService, rdb)

	inventoryRepo := inventory.NewRepository(gormDB)
	inventoryService := inventory.NewService(sqlDB, inventoryRepo, logger)
	inventory.RegisterRoutes(api, inventory.NewHandler(inventoryService), rbacService)

	reviewRepo := review.NewRepository(gormDB)
	reviewService := review.NewService(reviewRepo, menuRepo, logger)
	review.RegisterRoutes(api, review.NewHandler(reviewService), rbacService)

	return nil
}
