package salary

import (
	"go-hris-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	salaries := r.Group("/salaries")
	{
		salaries.GET("", h.GetAll)
		salaries.POST("", middleware.Idempotency(rdb), h.Create)
		salaries.GET("/:id", h.GetById)
		salaries.PUT("/:id", h.Update)
		salaries.DELETE("/:id", h.Delete)
	}
}
