package menu

import (
	"github.com/gin-gonic/gin"

	"github.com/Bang334/QuanAn-sub002/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	items := r.Group("/menu-items")
	items.Use(middleware.AuthMiddleware())
	{
		items.GET("", h.GetAll)
		items.GET("/options", h.GetOptions)
		items.GET("/:id", h.GetByID)
		items.POST("", middleware.RBACAuthorize(rbacService, "menu", "create"), h.Create)
		items.PUT("/:id", middleware.RBACAuthorize(rbacService, "menu", "update"), h.Update)
		items.DELETE("/:id", middleware.RBACAuthorize(rbacService, "menu", "delete"), h.Delete)
	}
}
