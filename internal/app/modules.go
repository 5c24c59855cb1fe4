package app

import (
	"go-hris-admin/internal/candidate"
	"go-hris-admin/internal/company"
	"go-hris-admin/internal/dashboard"
	"go-hris-admin/internal/department"
	"go-hris-admin/internal/employee"
	"go-hris-admin/internal/messaging/kafka/producer"
	"go-hris-admin/internal/middleware"
	"go-hris-admin/internal/refresh"
	"go-hris-admin/internal/registry"
	"go-hris-admin/internal/salary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ConsoleDeps is everything the console routes are built from. Redis and
// Publisher are optional.
type ConsoleDeps struct {
	Registry  *registry.Registry
	Redis     *redis.Client
	Publisher producer.EventPublisher
	Clock     candidate.Clock
	RateLimit float64
	RateBurst int
	Logger    *zap.Logger
}

// NewConsoleRouter wires every console module under /api/v1.
func NewConsoleRouter(deps ConsoleDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.L()
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = producer.NewNoopPublisher()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(logger.Named("http")),
		middleware.RateLimitByIP(rate.Limit(deps.RateLimit), deps.RateBurst),
	)

	var dashboardStore dashboard.SnapshotStore
	if deps.Redis != nil {
		dashboardStore = dashboard.NewRedisStore(deps.Redis)
	} else {
		dashboardStore = dashboard.NewMemoryStore()
	}

	// --- Services ---
	departmentService := department.NewService(deps.Registry)
	employeeService := employee.NewService(deps.Registry, publisher, logger)
	candidateService := candidate.NewService(deps.Registry, publisher, deps.Clock, logger)
	companyService := company.NewService(deps.Registry, logger)
	salaryService := salary.NewService(deps.Registry)
	dashboardService := dashboard.NewService(deps.Registry, dashboardStore, logger)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	candidateHandler := candidate.NewHandler(candidateService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	salaryHandler := salary.NewHandler(salaryService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	refreshHandler := refresh.NewHandler(deps.Registry, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		department.RegisterRoutes(api, departmentHandler, deps.Redis)
		employee.RegisterRoutes(api, employeeHandler, deps.Redis)
		candidate.RegisterRoutes(api, candidateHandler, deps.Redis)
		company.RegisterRoutes(api, companyHandler, deps.Redis)
		salary.RegisterRoutes(api, salaryHandler, deps.Redis)
		dashboard.RegisterRoutes(api, dashboardHandler)
		refresh.RegisterRoutes(api, refreshHandler)
	}

	return router
}
