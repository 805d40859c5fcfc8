package wagerate

import (
	"github.com/gin-gonic/gin"

	"github.com/Bang334/QuanAn-sub002/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	rates := r.Group("/wage-rates")
	rates.Use(middleware.AuthMiddleware())
	{
		rates.GET("", middleware.RBACAuthorize(rbacService, "wage_rate", "read"), h.GetAll)
		rates.POST("", middleware.RBACAuthorize(rbacService, "wage_rate", "create"), h.Create)
		rates.POST("/:id/deactivate", middleware.RBACAuthorize(rbacService, "wage_rate", "update"), h.Deactivate)
	}
}
