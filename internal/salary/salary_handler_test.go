package salary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hris-admin/internal/salary"
	"go-hris-admin/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSalaryService struct {
	CreateFn  func(ctx context.Context, req salary.CreateSalaryRequest) (view.SalaryRow, error)
	GetAllFn  func(ctx context.Context) []view.SalaryRow
	GetByIDFn func(ctx context.Context, id int64) (view.SalaryRow, error)
	UpdateFn  func(ctx context.Context, id int64, req salary.UpdateSalaryRequest) (view.SalaryRow, error)
	DeleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeSalaryService) Create(ctx context.Context, req salary.CreateSalaryRequest) (view.SalaryRow, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeSalaryService) GetAll(ctx context.Context) []view.SalaryRow {
	return f.GetAllFn(ctx)
}
func (f *fakeSalaryService) GetByID(ctx context.Context, id int64) (view.SalaryRow, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeSalaryService) Update(ctx context.Context, id int64, req salary.UpdateSalaryRequest) (view.SalaryRow, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeSalaryService) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc salary.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	salary.RegisterRoutes(r.Group("/api/v1"), salary.NewHandler(svc), nil)
	return r
}

func TestSalaryHandler_GetAll(t *testing.T) {
	svc := &fakeSalaryService{
		GetAllFn: func(ctx context.Context) []view.SalaryRow {
			return []view.SalaryRow{
				{ID: 1, EmployeeID: 1, EmployeeName: "Amanuel G", Amount: 1200, Currency: "USD"},
				{ID: 2, EmployeeID: 2, EmployeeName: "Liya S", Amount: 900, Currency: "ETB"},
			}
		},
	}
	r := setupRouter(svc)

	t.Run("by employee", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/salaries?employee_id=2", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Liya S")
		assert.NotContains(t, w.Body.String(), "Amanuel G")
	})

	t.Run("by amount text", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/salaries?q=1200", nil))

		assert.Contains(t, w.Body.String(), "Amanuel G")
		assert.NotContains(t, w.Body.String(), "Liya S")
	})

	t.Run("bad employee_id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/salaries?employee_id=abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSalaryHandler_Create(t *testing.T) {
	svc := &fakeSalaryService{
		CreateFn: func(ctx context.Context, req salary.CreateSalaryRequest) (view.SalaryRow, error) {
			return view.SalaryRow{ID: 9, EmployeeID: req.EmployeeID, Amount: req.Amount, Currency: "USD"}, nil
		},
	}
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/salaries", strings.NewReader(`{"employee_id":1,"amount":1000}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/salaries", strings.NewReader(`{"employee_id":1,"amount":-1}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
