package router

import (
	"time"

	"comercio/internal/config"
	"comercio/internal/handler"
	"comercio/internal/middleware"
	"comercio/internal/repository"
	"comercio/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	remissionRepo := repository.NewRemissionRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	creditRepo := repository.NewCreditRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	customerSvc := service.NewCustomerService(customerRepo, orderRepo)
	orderSvc := service.NewOrderService(orderRepo, customerRepo, remissionRepo)
	remissionSvc := service.NewRemissionService(remissionRepo, orderRepo, saleRepo, creditRepo)
	saleSvc := service.NewSaleService(saleRepo, remissionRepo)
	creditSvc := service.NewCreditService(creditRepo, remissionRepo)
	reportSvc := service.NewReportService(saleRepo, cfg.Location())

	// ── Handlers ─────────────────────────────────────────────────────────────
	customersH := handler.NewCustomersHandler(customerSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	remissionsH := handler.NewRemissionsHandler(remissionSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	creditsH := handler.NewCreditsHandler(creditSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db))

	v1 := r.Group("/v1")
	{
		customers := v1.Group("/customers")
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.List)
			customers.GET("/:id", customersH.Get)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Delete)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", ordersH.Create)
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.Get)
			orders.PUT("/:id", ordersH.Update)
			orders.DELETE("/:id", ordersH.Delete)
		}

		remissions := v1.Group("/remissions")
		{
			remissions.POST("", remissionsH.Create)
			remissions.GET("", remissionsH.List)
			remissions.GET("/:id", remissionsH.Get)
			remissions.PUT("/:id", remissionsH.Update)
			remissions.DELETE("/:id", remissionsH.Delete)
			remissions.POST("/:id/close", remissionsH.Close)
			remissions.GET("/:id/summary", remissionsH.Summary)
		}

		sales := v1.Group("/sales")
		{
			sales.POST("", salesH.Create)
			sales.GET("", salesH.List)
			sales.GET("/:id", salesH.Get)
			sales.PUT("/:id", salesH.Update)
			sales.DELETE("/:id", salesH.Delete)
		}

		credits := v1.Group("/credits")
		{
			credits.POST("", creditsH.Create)
			credits.GET("", creditsH.List)
			credits.GET("/:id", creditsH.Get)
			credits.PUT("/:id", creditsH.Update)
			credits.DELETE("/:id", creditsH.Delete)
		}

		v1.GET("/reports/daily_sales", reportsH.DailySales)
	}

	return r
}
