package inventory

import (
	"github.com/gin-gonic/gin"

	"github.com/Bang334/QuanAn-sub002/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	ingredients := r.Group("/ingredients")
	ingredients.Use(middleware.AuthMiddleware())
	{
		ingredients.GET("", middleware.RBACAuthorize(rbacService, "inventory", "read"), h.GetIngredients)
		ingredients.GET("/low-stock", middleware.RBACAuthorize(rbacService, "inventory", "read"), h.GetLowStock)
		ingredients.GET("/:id/movements", middleware.RBACAuthorize(rbacService, "inventory", "read"), h.GetMovements)
		ingredients.POST("", middleware.RBACAuthorize(rbacService, "inventory", "create"), h.CreateIngredient)
	}

	suppliers := r.Group("/suppliers")
	suppliers.Use(middleware.AuthMiddleware())
	{
		suppliers.GET("", middleware.RBACAuthorize(rbacService, "inventory", "read"), h.GetSuppliers)
		suppliers.POST("", middleware.RBACAuthorize(rbacService, "inventory", "create"), h.CreateSupplier)
	}

	movements := r.Group("/stock-movements")
	movements.Use(middleware.AuthMiddleware())
	{
		movements.POST("", middleware.RBACAuthorize(rbacService, "inventory", "create"), h.RecordMovement)
	}
}
