package department_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hris-admin/internal/department"
	departmenterrors "go-hris-admin/internal/department/errors"
	"go-hris-admin/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	CreateFn  func(ctx context.Context, req department.CreateDepartmentRequest) (view.DepartmentRow, error)
	GetAllFn  func(ctx context.Context) []view.DepartmentRow
	GetByIDFn func(ctx context.Context, id int64) (view.DepartmentRow, error)
	MembersFn func(ctx context.Context, id int64) (view.DepartmentMembers, error)
	UpdateFn  func(ctx context.Context, id int64, req department.UpdateDepartmentRequest) (view.DepartmentRow, error)
	DeleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (view.DepartmentRow, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) GetAll(ctx context.Context) []view.DepartmentRow {
	return f.GetAllFn(ctx)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id int64) (view.DepartmentRow, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Members(ctx context.Context, id int64) (view.DepartmentMembers, error) {
	return f.MembersFn(ctx, id)
}
func (f *fakeDepartmentService) Update(ctx context.Context, id int64, req department.UpdateDepartmentRequest) (view.DepartmentRow, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc department.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	department.RegisterRoutes(r.Group("/api/v1"), department.NewHandler(svc), nil)
	return r
}

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (view.DepartmentRow, error) {
				return view.DepartmentRow{ID: 3, Name: req.Name}, nil
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/departments", strings.NewReader(`{"name":"People Ops"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "People Ops")
	})

	t.Run("validation error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/departments", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		setupRouter(&fakeDepartmentService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (view.DepartmentRow, error) {
				return view.DepartmentRow{}, errors.New("boom")
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/departments", strings.NewReader(`{"name":"X"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	svc := &fakeDepartmentService{
		GetAllFn: func(ctx context.Context) []view.DepartmentRow {
			return []view.DepartmentRow{{ID: 1, Name: "Engineering"}, {ID: 2, Name: "Finance"}}
		},
	}
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/departments?q=fin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Finance")
	assert.NotContains(t, w.Body.String(), "Engineering")
}

func TestDepartmentHandler_Members(t *testing.T) {
	svc := &fakeDepartmentService{
		MembersFn: func(ctx context.Context, id int64) (view.DepartmentMembers, error) {
			if id != 1 {
				return view.DepartmentMembers{}, departmenterrors.ErrDepartmentNotFound
			}
			return view.DepartmentMembers{Employees: []view.Member{{ID: 1, Name: "Abel K"}}, Candidates: []view.Member{}}, nil
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/departments/1/members", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Abel K")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/departments/2/members", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDepartmentHandler_Delete(t *testing.T) {
	svc := &fakeDepartmentService{
		DeleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/departments/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/departments/x", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
