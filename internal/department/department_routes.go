package department

import (
	"go-hris-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	departments := r.Group("/departments")
	{
		departments.GET("", h.GetAll)
		departments.POST("", middleware.Idempotency(rdb), h.Create)
		departments.GET("/:id", h.GetById)
		departments.GET("/:id/members", h.Members)
		departments.PUT("/:id", h.Update)
		departments.DELETE("/:id", h.Delete)
	}
}
