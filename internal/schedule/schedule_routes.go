package schedule

import (
	"github.com/gin-gonic/gin"

	"github.com/Bang334/QuanAn-sub002/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	schedules := r.Group("/schedules")
	schedules.Use(middleware.AuthMiddleware())
	{
		schedules.GET("", middleware.RBACAuthorize(rbacService, "schedule", "read"), h.GetAll)
		schedules.POST("", middleware.RBACAuthorize(rbacService, "schedule", "create"), h.Assign)
		schedules.DELETE("/:id", middleware.RBACAuthorize(rbacService, "schedule", "delete"), h.Delete)
	}
}
