package refresh

import (
	"context"
	"net/http"

	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/registry"
	"go-hris-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Refresher reloads the registry from the backend.
type Refresher interface {
	Refresh(ctx context.Context) registry.RefreshResult
}

type Response struct {
	Cycle     uint64        `json:"cycle"`
	Failed    []domain.Kind `json:"failed"`
	Published bool          `json:"published"`
}

type Handler struct {
	refresher Refresher
	logger    *zap.Logger
}

func NewHandler(refresher Refresher, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("refresh.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("refresh.handler")
	}
	return &Handler{refresher: refresher, logger: l}
}

// Refresh always answers 200; collections that could not be loaded are
// listed in failed and served empty until the next refresh. When the cycle
// timed out nothing is published and the previous data stays.
func (h *Handler) Refresh(c *gin.Context) {
	res := h.refresher.Refresh(c.Request.Context())
	if len(res.Failed) > 0 {
		h.logger.Warn("refresh incomplete", zap.Uint64("cycle", res.Cycle), zap.Any("failed", res.Failed))
	}

	failed := res.Failed
	if failed == nil {
		failed = []domain.Kind{}
	}
	response.Success(c, http.StatusOK, Response{Cycle: res.Cycle, Failed: failed, Published: res.Published}, nil)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/refresh", h.Refresh)
}
