package dashboard_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hris-admin/internal/dashboard"
	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/registry/registrytest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStore struct{}

func (failingStore) Load(context.Context) (dashboard.Baseline, bool, error) {
	return dashboard.Baseline{}, false, errors.New("store down")
}
func (failingStore) Save(context.Context, dashboard.Baseline) error { return errors.New("store down") }

func seededBackend() *registrytest.Backend {
	b := registrytest.NewBackend()
	b.Departments.Seed(domain.Department{ID: 1, Name: "Engineering"})
	b.Employees.Seed(domain.Employee{ID: 1, Name: "Amanuel G"}, domain.Employee{ID: 2, Name: "Liya S"})
	b.Companies.Seed(domain.Company{ID: 1, Name: "XOKA Tech"})
	b.Candidates.Seed(
		domain.Candidate{ID: 2, Name: "Sara K", Status: domain.StatusApplied},
		domain.Candidate{ID: 5, Name: "Thomas T", Status: domain.StatusInterview, DepartmentID: registrytest.Ptr(1)},
		domain.Candidate{ID: 1, Name: "Helen M", Status: domain.StatusApplied},
		domain.Candidate{ID: 9, Name: "Biniam H", Status: domain.StatusInterview},
		domain.Candidate{ID: 4, Name: "Abel K.", Status: domain.StatusApplied},
	)
	return b
}

func TestDashboardService_Summary(t *testing.T) {
	b := seededBackend()
	reg := b.Registry(t)
	svc := dashboard.NewService(reg, dashboard.NewMemoryStore(), zap.NewNop())

	first := svc.Summary(context.Background())

	assert.Equal(t, 2, first.Employees.Count)
	assert.Equal(t, 1, first.Departments.Count)
	assert.Equal(t, 1, first.Companies.Count)
	assert.Equal(t, 5, first.Candidates.Count)
	assert.Nil(t, first.Employees.Delta)

	require.Len(t, first.RecentCandidates, dashboard.RecentLimit)
	ids := []int64{}
	for _, c := range first.RecentCandidates {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{9, 5, 4, 2}, ids)
	assert.Equal(t, "Engineering", first.RecentCandidates[1].DepartmentName)

	_, err := reg.Employees().Create(context.Background(), domain.Employee{Name: "Elsa M."})
	require.NoError(t, err)

	second := svc.Summary(context.Background())
	require.NotNil(t, second.Employees.Delta)
	assert.Equal(t, 1, *second.Employees.Delta)
	require.NotNil(t, second.Candidates.Delta)
	assert.Equal(t, 0, *second.Candidates.Delta)

	// unchanged counts keep the same baseline
	third := svc.Summary(context.Background())
	require.NotNil(t, third.Employees.Delta)
	assert.Equal(t, 1, *third.Employees.Delta)
}

func TestDashboardService_StoreFailureDropsDeltas(t *testing.T) {
	svc := dashboard.NewService(seededBackend().Registry(t), failingStore{}, zap.NewNop())

	resp := svc.Summary(context.Background())

	assert.Equal(t, 2, resp.Employees.Count)
	assert.Nil(t, resp.Employees.Delta)
}

func TestDashboardHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := dashboard.NewService(seededBackend().Registry(t), nil, zap.NewNop())
	dashboard.RegisterRoutes(r.Group("/api/v1"), dashboard.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recent_candidates"`)
	assert.Contains(t, w.Body.String(), `"count":5`)
}
