package salary

import (
	"net/http"
	"strconv"

	salaryerrors "go-hris-admin/internal/salary/errors"
	"go-hris-admin/internal/shared/apperror"
	"go-hris-admin/internal/shared/response"
	"go-hris-admin/internal/view"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, salaryerrors.ErrInvalidSalaryID
	}
	return id, nil
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

// GetAll accepts employee_id to narrow the list to one employee.
func (h *Handler) GetAll(c *gin.Context) {
	rows := h.service.GetAll(c.Request.Context())

	if raw := c.Query("employee_id"); raw != "" {
		empID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(c, apperror.InvalidField("employee_id"))
			return
		}
		filtered := make([]view.SalaryRow, 0, len(rows))
		for _, r := range rows {
			if r.EmployeeID == empID {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	rows = view.Filter(rows, c.Query("q"))
	page, meta := response.Paginate(c, rows, 10)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req UpdateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
