package rbac

import (
	"github.com/gin-gonic/gin"

	"github.com/Bang334/QuanAn-sub002/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, svc Service) {
	perms := r.Group("/permissions")
	perms.Use(middleware.AuthMiddleware())
	{
		perms.GET("", middleware.RBACAuthorize(svc, "permission", "read"), h.ListPermissions)
	}
}
