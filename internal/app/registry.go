package app

import (
	"database/sql"

	"github.com/businessanalystdm/projecthrm/internal/branch"
	"github.com/businessanalystdm/projecthrm/internal/catalog"
	"github.com/businessanalystdm/projecthrm/internal/employee"
	"github.com/businessanalystdm/projecthrm/internal/history"
	"github.com/businessanalystdm/projecthrm/internal/messaging/kafka"
	"github.com/businessanalystdm/projecthrm/internal/middleware"
	"github.com/businessanalystdm/projecthrm/internal/organization"
	"github.com/businessanalystdm/projecthrm/internal/rbac"
	"github.com/businessanalystdm/projecthrm/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	organizationRepo := organization.NewRepository(gormDB)
	branchRepo := branch.NewRepository(gormDB)
	catalogRepo := catalog.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	historyRepo := history.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	organizationService := organization.NewService(db, organizationRepo, rdb)
	branchService := branch.NewService(db, branchRepo)
	catalogService := catalog.NewService(db, catalogRepo)
	historyService := history.NewService(db, historyRepo, branchRepo, organizationService, outboxRepo)
	employeeService := employee.NewService(
		db, employeeRepo,
		historyRepo, historyService,
		organizationService, branchRepo,
		catalogRepo, catalogService,
		counterRepo, outboxRepo, rdb,
	)

	// --- Handlers ---
	organizationHandler := organization.NewHandler(organizationService)
	branchHandler := branch.NewHandler(branchService)
	catalogHandler := catalog.NewHandler(catalogService)
	historyHandler := history.NewHandler(historyService)
	employeeHandler := employee.NewHandler(employeeService)

	// --- Global middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		organization.RegisterRoutes(api, organizationHandler, rbacService)
		branch.RegisterRoutes(api, branchHandler, rbacService)
		catalog.RegisterRoutes(api, catalogHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		history.RegisterRoutes(api, historyHandler, rbacService)
	}

	return nil
}
