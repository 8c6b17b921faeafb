package app

import (
	"log/slog"

	"finance-ledger/internal/config"
	"finance-ledger/internal/handlers"
	"finance-ledger/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts every route on a new echo instance. ipLimiter may be nil.
func NewRouter(
	cfg *config.Config,
	svc *Services,
	health handlers.HealthChecker,
	ipLimiter *middleware.IPRateLimiter,
	reg *prometheus.Registry,
	logger *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(reg, logger).Handle

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(requestLogger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(cfg.Server.BodyLimit))
	if ipLimiter != nil {
		e.Use(ipLimiter.Middleware())
	}

	healthHandler := handlers.NewHealthCheckHandler(health)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	accountHandler := handlers.NewAccountHandler(svc.Accounts, svc.Budgets)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions)
	receiptHandler := handlers.NewReceiptHandler(svc.Receipts, cfg.Gemini.MaxImageBytes)
	userHandler := handlers.NewUserHandler(svc.Users, svc.Audit)

	api := e.Group("/api/v1")
	authed := api.Group("", middleware.RequireAuth(svc.Identity, svc.Users))

	authed.GET("/me", userHandler.GetMe)
	authed.GET("/activity", userHandler.ListActivity)

	authed.POST("/accounts", accountHandler.CreateAccount)
	authed.GET("/accounts", accountHandler.ListAccounts)
	authed.GET("/accounts/:accountId", accountHandler.GetAccount)
	authed.PUT("/accounts/:accountId/default", accountHandler.SetDefaultAccount)
	authed.GET("/accounts/:accountId/chart", accountHandler.GetAccountChart)
	authed.GET("/accounts/:accountId/budget", accountHandler.GetAccountBudget)

	authed.PUT("/budget", budgetHandler.UpdateBudget)

	authed.POST("/transactions", transactionHandler.CreateTransaction)
	authed.GET("/transactions", transactionHandler.ListTransactions)
	authed.POST("/transactions/bulk-delete", transactionHandler.BulkDeleteTransactions)
	authed.GET("/transactions/:id", transactionHandler.GetTransaction)
	authed.PUT("/transactions/:id", transactionHandler.UpdateTransaction)

	authed.POST("/receipts/scan", receiptHandler.ScanReceipt)

	if !cfg.IsProduction() {
		devHandler := handlers.NewDevHandler(svc.Seeds, svc.Identity)
		api.POST("/dev/token", devHandler.IssueToken)
		authed.POST("/dev/accounts/:accountId/seed", devHandler.SeedTransactions)
	}

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= 500 {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
				slog.String("trace_id", middleware.GetTraceID(c)),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
