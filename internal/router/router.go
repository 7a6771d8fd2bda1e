package router

import (
	"time"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/config"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/handler"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/infra"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/middleware"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/service"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, sheetsCB *infra.CircuitBreaker) *gin.Engine {
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
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	pushRepo := repository.NewSheetPushRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	menuSvc := service.NewMenuService(menuRepo, pushRepo, dispatcher)
	orderSvc := service.NewOrderService(orderRepo, menuRepo, pushRepo, dispatcher)
	expenseSvc := service.NewExpenseService(expenseRepo, pushRepo, dispatcher)
	staffSvc := service.NewStaffService(staffRepo, attendanceRepo, pushRepo, dispatcher)
	reportSvc := service.NewReportService(orderRepo, menuRepo, staffRepo, attendanceRepo, rdb)
	exportSvc := service.NewExportService(orderRepo, menuRepo, staffRepo, reportSvc, cfg.Currency, cfg.PDFStoragePath)
	summaryMailer := service.NewSummaryMailer(exportSvc, reportSvc, dispatcher, cfg.ReportEmail, cfg.Currency)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	menuH := handler.NewMenuHandler(menuSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	staffH := handler.NewStaffHandler(staffSvc)
	reportsH := handler.NewReportsHandler(reportSvc, summaryMailer)
	exportsH := handler.NewExportsHandler(exportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, sheetsCB))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: cashier, manager, admin — declared per-endpoint
		v1.POST("/orders", middleware.RequireRole("cashier", "manager", "admin"), ordersH.Create)
		v1.GET("/orders", middleware.RequireRole("cashier", "manager", "admin"), ordersH.List)
		v1.GET("/orders/:id", middleware.RequireRole("cashier", "manager", "admin"), ordersH.Get)
		v1.PATCH("/orders/:id/complete", middleware.RequireRole("cashier", "manager", "admin"), ordersH.Complete)
		v1.DELETE("/orders/:id", middleware.RequireRole("manager", "admin"), ordersH.Cancel)

		// Menu — everyone reads, admin writes
		v1.GET("/menu", middleware.RequireRole("cashier", "manager", "admin"), menuH.List)
		v1.GET("/menu/:number", middleware.RequireRole("cashier", "manager", "admin"), menuH.Get)
		menu := v1.Group("/menu", middleware.RequireRole("admin"))
		{
			menu.PUT("", menuH.Upsert)
			menu.DELETE("/:number", menuH.Delete)
		}

		expenses := v1.Group("/expenses", middleware.RequireRole("manager", "admin"))
		{
			expenses.POST("", expensesH.Create)
			expenses.GET("", expensesH.List)
			expenses.GET("/categories", expensesH.Categories)
		}

		// Staff roster — manager/admin
		v1.GET("/staff", middleware.RequireRole("manager", "admin"), staffH.List)
		v1.POST("/staff", middleware.RequireRole("admin"), staffH.Create)

		// Attendance — cashiers can punch the clock, manager/admin can review
		att := v1.Group("/attendance")
		{
			att.POST("/clock-in", middleware.RequireRole("cashier", "manager", "admin"), staffH.ClockIn)
			att.PATCH("/:staff_id/clock-out", middleware.RequireRole("cashier", "manager", "admin"), staffH.ClockOut)
			att.GET("", middleware.RequireRole("manager", "admin"), staffH.ListAttendance)
		}

		reports := v1.Group("/reports", middleware.RequireRole("manager", "admin"))
		{
			reports.GET("/daily-sales", reportsH.DailySales)
			reports.GET("/sales", reportsH.Sales)
			reports.GET("/category-breakdown", reportsH.CategoryBreakdown)
			reports.GET("/item-sales", reportsH.ItemSales)
			reports.GET("/attendance", reportsH.Attendance)
			reports.GET("/role-distribution", reportsH.RoleDistribution)
			reports.POST("/daily-email", reportsH.SendDailyEmail)
		}

		exports := v1.Group("/exports", middleware.RequireRole("manager", "admin"))
		{
			exports.GET("/orders.csv", exportsH.OrdersCSV)
			exports.GET("/menu.csv", exportsH.MenuCSV)
			exports.GET("/staff.csv", exportsH.StaffCSV)
			exports.GET("/sales.pdf", exportsH.SalesPDF)
		}

		users := v1.Group("/users", middleware.RequireRole("admin"))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
