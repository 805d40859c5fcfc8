package auth

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Bang334/QuanAn-sub002/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(5), 10), h.Login)
		authGroup.POST("/register", middleware.AuthMiddleware(), middleware.RoleMiddleware("admin"), h.Register)
		authGroup.GET("/me", middleware.AuthMiddleware(), h.Me)
	}
}
