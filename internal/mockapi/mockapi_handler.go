package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-hris-admin/internal/domain"
	mockapierrors "go-hris-admin/internal/mockapi/errors"
	"go-hris-admin/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler speaks the bare JSON of a plain CRUD API: arrays and objects
// without an envelope.
type Handler struct {
	store  Store
	logger *zap.Logger
}

func NewHandler(store Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("mockapi.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mockapi.handler")
	}
	return &Handler{store: store, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("mock api request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	c.JSON(httpErr.Status, gin.H{"code": httpErr.Code, "error": httpErr.Message})
}

func resource(c *gin.Context) (domain.Kind, error) {
	kind := domain.Kind(c.Param("resource"))
	if !Known(kind) {
		return "", mockapierrors.ErrUnknownResource
	}
	return kind, nil
}

func recordID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, mockapierrors.ErrInvalidID
	}
	return id, nil
}

func bindDocument(c *gin.Context) (Document, error) {
	var doc Document
	dec := json.NewDecoder(c.Request.Body)
	if err := dec.Decode(&doc); err != nil || doc == nil {
		return nil, mockapierrors.ErrInvalidDocument
	}
	return doc, nil
}

func (h *Handler) List(c *gin.Context) {
	kind, err := resource(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	docs, err := h.store.List(c.Request.Context(), kind)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *Handler) Get(c *gin.Context) {
	kind, err := resource(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	id, err := recordID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	doc, err := h.store.Get(c.Request.Context(), kind, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *Handler) Create(c *gin.Context) {
	kind, err := resource(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	doc, err := bindDocument(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	created, err := h.store.Create(c.Request.Context(), kind, doc)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.logger.Debug("record created", zap.String("resource", string(kind)), zap.Int64("id", docID(created)))
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) Update(c *gin.Context) {
	kind, err := resource(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	id, err := recordID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	doc, err := bindDocument(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	saved, err := h.store.Update(c.Request.Context(), kind, id, doc)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) Delete(c *gin.Context) {
	kind, err := resource(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	id, err := recordID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.store.Delete(c.Request.Context(), kind, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
