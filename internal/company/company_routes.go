package company

import (
	"go-hris-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	companies := r.Group("/companies")
	{
		companies.GET("", handler.GetAll)
		companies.GET("/:id", handler.GetById)
		companies.POST("", middleware.Idempotency(rdb), handler.Create)
		companies.PUT("/:id", handler.Update)
		companies.DELETE("/:id", handler.Delete)
	}
}
