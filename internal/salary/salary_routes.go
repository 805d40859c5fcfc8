package salary

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Bang334/QuanAn-sub002/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware())
	{
		salaries.GET("", middleware.RBACAuthorize(rbacService, "salary", "read"), h.GetAll)
		salaries.GET("/:id", middleware.RBACAuthorize(rbacService, "salary", "read"), h.GetByID)
		salaries.GET("/:id/daily-details", middleware.RBACAuthorize(rbacService, "salary", "read"), h.GetDailyDetails)

		salaries.POST("", middleware.RBACAuthorize(rbacService, "salary", "update"), middleware.Idempotency(rdb), h.Upsert)
		salaries.POST("/batch-generate", middleware.RBACAuthorize(rbacService, "salary", "create"), middleware.Idempotency(rdb), h.BatchGenerate)
		salaries.POST("/from-attendance/:attendanceId", middleware.RBACAuthorize(rbacService, "salary", "update"), h.FromAttendance)
		salaries.POST("/:id/recompute", middleware.RBACAuthorize(rbacService, "salary", "update"), h.Recompute)
		salaries.POST("/:id/mark-paid", middleware.RBACAuthorize(rbacService, "salary", "update"), h.MarkPaid)
		salaries.POST("/:id/reopen", middleware.RBACAuthorize(rbacService, "salary", "update"), h.Reopen)
	}
}
