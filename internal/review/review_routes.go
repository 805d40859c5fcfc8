package review

import (
	"github.com/gin-gonic/gin"

	"github.com/Bang334/QuanAn-sub002/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	reviews := r.Group("/reviews")
	{
		// Submitting a review is public, rate limited per client IP.
		reviews.POST("", middleware.RateLimitByIP(2, 5), h.Create)
		reviews.GET("/menu-items/:menuItemId", h.GetByMenuItem)
		reviews.PUT("/:id/moderation",
			middleware.AuthMiddleware(),
			middleware.RBACAuthorize(rbacService, "review", "moderate"),
			h.Moderate,
		)
	}
}
