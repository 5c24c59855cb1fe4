package candidate

import (
	"go-hris-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.GetAll)
		candidates.GET("/:id", handler.GetByID)
		candidates.POST("", middleware.Idempotency(rdb), handler.Create)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}
}
