package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/Bang334/QuanAn-sub002/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("/clock-in", h.ClockIn)
		attendances.POST("/clock-out", h.ClockOut)
		attendances.GET("", h.GetAll)
		attendances.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "attendance", "approve"), h.Approve)
		attendances.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "attendance", "approve"), h.Reject)
		attendances.PUT("/:id/hours", middleware.RBACAuthorize(rbacService, "attendance", "update"), h.AdjustHours)
	}
}
