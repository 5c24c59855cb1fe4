package dashboard

import (
	"net/http"

	"go-hris-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Summary(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Summary(c.Request.Context()), nil)
}
