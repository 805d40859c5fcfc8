package promotion

import (
	"github.com/gin-gonic/gin"

	"github.com/Bang334/QuanAn-sub002/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	promotions := r.Group("/promotions")
	promotions.Use(middleware.AuthMiddleware())
	{
		promotions.GET("", h.GetAll)
		promotions.GET("/:id", h.GetByID)
		promotions.POST("", middleware.RBACAuthorize(rbacService, "promotion", "create"), h.Create)
		promotions.POST("/:id/deactivate", middleware.RBACAuthorize(rbacService, "promotion", "update"), h.Deactivate)
	}
}
