package order

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Bang334/QuanAn-sub002/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	tables := r.Group("/tables")
	tables.Use(middleware.AuthMiddleware())
	{
		tables.GET("", h.GetTables)
		tables.POST("", middleware.RBACAuthorize(rbacService, "table", "create"), h.CreateTable)
	}

	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("", h.GetAll)
		orders.GET("/:id", h.GetByID)
		orders.POST("", middleware.RBACAuthorize(rbacService, "order", "create"), middleware.Idempotency(rdb), h.Create)
		orders.PUT("/:id/status", middleware.RBACAuthorize(rbacService, "order", "update"), h.UpdateStatus)
	}
}
