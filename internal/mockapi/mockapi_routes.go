package mockapi

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	res := r.Group("/:resource")
	{
		res.GET("", h.List)
		res.POST("", h.Create)
		res.GET("/:id", h.Get)
		res.PUT("/:id", h.Update)
		res.DELETE("/:id", h.Delete)
	}
}
