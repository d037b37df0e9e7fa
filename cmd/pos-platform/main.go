package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/storekeeperhq/pos-platform/internal/api/handlers"
	"github.com/storekeeperhq/pos-platform/internal/api/middleware"
	"github.com/storekeeperhq/pos-platform/internal/cache"
	"github.com/storekeeperhq/pos-platform/internal/config"
	"github.com/storekeeperhq/pos-platform/internal/health"
	"github.com/storekeeperhq/pos-platform/internal/metrics"
	repository "github.com/storekeeperhq/pos-platform/internal/repositories"
	service "github.com/storekeeperhq/pos-platform/internal/services"
	"github.com/storekeeperhq/pos-platform/internal/telemetry"
	"github.com/storekeeperhq/pos-platform/pkg/sendgrid"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), &cfg.Telemetry)
	if err != nil {
		slog.Error("Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	jwtKey := []byte(cfg.Security.JWTKey)
	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)
	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	var notifier service.LowStockNotifier
	if cfg.SendGrid.APIKey != "" {
		emailClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
		notifier = service.NewEmailLowStockNotifier(emailClient, cfg.Alerts.Recipient)
	}

	userService := service.NewUserService(repos.User, rateLimitRepo, jwtKey, cfg.Security.TokenExpiry)
	userHandler := handlers.NewUserHandler(userService)
	productService := service.NewProductService(repos.Product, repos.Category, repos.Supplier)
	productHandler := handlers.NewProductHandler(productService)
	categoryService := service.NewCategoryService(repos.Category)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	supplierService := service.NewSupplierService(repos.Supplier)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	customerService := service.NewCustomerService(repos.Customer)
	customerHandler := handlers.NewCustomerHandler(customerService)
	checkoutService := service.NewCheckoutService(repos.Sale, repos.Product, repos.Customer, notifier, cfg.Alerts.LowStockThreshold)
	saleHandler := handlers.NewSaleHandler(checkoutService)
	orderService := service.NewPurchaseOrderService(repos.PurchaseOrder, repos.Supplier, repos.Product)
	orderHandler := handlers.NewPurchaseOrderHandler(orderService)
	dashboardService := service.NewDashboardService(repos.Product, repos.Sale, repos.PurchaseOrder, repos.Customer, redisCache, cfg, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportService := service.NewReportService(repos.Product, repos.Sale)
	reportHandler := handlers.NewReportHandler(reportService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))

	routerMux.HandleFunc("GET /api/v1/products", authMiddleware.Authenticate(productHandler.ListProducts()))
	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.GetProduct()))
	routerMux.HandleFunc("PUT /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.DeleteProduct()))
	routerMux.HandleFunc("PATCH /api/v1/products/{id}/stock", authMiddleware.Authenticate(productHandler.AdjustStock()))

	routerMux.HandleFunc("GET /api/v1/categories", authMiddleware.Authenticate(categoryHandler.ListCategories()))
	routerMux.HandleFunc("POST /api/v1/categories", authMiddleware.Authenticate(categoryHandler.CreateCategory()))
	routerMux.HandleFunc("PUT /api/v1/categories/{id}", authMiddleware.Authenticate(categoryHandler.UpdateCategory()))
	routerMux.HandleFunc("DELETE /api/v1/categories/{id}", authMiddleware.Authenticate(categoryHandler.DeleteCategory()))

	routerMux.HandleFunc("GET /api/v1/suppliers", authMiddleware.Authenticate(supplierHandler.ListSuppliers()))
	routerMux.HandleFunc("POST /api/v1/suppliers", authMiddleware.Authenticate(supplierHandler.CreateSupplier()))
	routerMux.HandleFunc("PUT /api/v1/suppliers/{id}", authMiddleware.Authenticate(supplierHandler.UpdateSupplier()))
	routerMux.HandleFunc("DELETE /api/v1/suppliers/{id}", authMiddleware.Authenticate(supplierHandler.DeleteSupplier()))

	routerMux.HandleFunc("GET /api/v1/customers", authMiddleware.Authenticate(customerHandler.ListCustomers()))
	routerMux.HandleFunc("POST /api/v1/customers", authMiddleware.Authenticate(customerHandler.CreateCustomer()))
	routerMux.HandleFunc("GET /api/v1/customers/{id}", authMiddleware.Authenticate(customerHandler.GetCustomer()))
	routerMux.HandleFunc("PUT /api/v1/customers/{id}", authMiddleware.Authenticate(customerHandler.UpdateCustomer()))
	routerMux.HandleFunc("DELETE /api/v1/customers/{id}", authMiddleware.Authenticate(customerHandler.DeleteCustomer()))

	routerMux.HandleFunc("GET /api/v1/sales", authMiddleware.Authenticate(saleHandler.ListSales()))
	routerMux.HandleFunc("POST /api/v1/sales", authMiddleware.Authenticate(saleHandler.Checkout()))
	routerMux.HandleFunc("GET /api/v1/sales/{id}", authMiddleware.Authenticate(saleHandler.GetSale()))
	routerMux.HandleFunc("DELETE /api/v1/sales/{id}", authMiddleware.Authenticate(authMiddleware.RequireAdmin(saleHandler.DeleteSale())))

	routerMux.HandleFunc("GET /api/v1/purchase-orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("POST /api/v1/purchase-orders", authMiddleware.Authenticate(orderHandler.CreateOrder()))
	routerMux.HandleFunc("GET /api/v1/purchase-orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("PUT /api/v1/purchase-orders/{id}", authMiddleware.Authenticate(orderHandler.UpdateOrder()))
	routerMux.HandleFunc("PATCH /api/v1/purchase-orders/{id}/status", authMiddleware.Authenticate(orderHandler.UpdateStatus()))
	routerMux.HandleFunc("DELETE /api/v1/purchase-orders/{id}", authMiddleware.Authenticate(authMiddleware.RequireAdmin(orderHandler.DeleteOrder())))

	routerMux.HandleFunc("GET /api/v1/dashboard/summary", authMiddleware.Authenticate(dashboardHandler.Summary()))
	routerMux.HandleFunc("GET /api/v1/reports/forecast", authMiddleware.Authenticate(reportHandler.Forecast()))

	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "http.server")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	// Dashboard cache refresher runs until shutdown; its log lines carry a
	// component tag the way request logs carry a correlation ID.
	refreshCtx, stopRefresher := context.WithCancel(
		middleware.ContextWithLogger(context.Background(), logger.With(slog.String("component", "dashboard-refresher"))),
	)
	go dashboardService.StartRefresher(refreshCtx)

	slog.Info("Server is starting", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server")

	stopRefresher()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed")
	}

	if shutdownTracing != nil {
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Error("Tracer shutdown encountered an issue", slog.String("error", err.Error()))
		}
	}
}
