package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadsearch/internal/cache"
	"leadsearch/internal/config"
	"leadsearch/internal/database"
	"leadsearch/internal/handlers"
	"leadsearch/internal/middleware"
	"leadsearch/internal/models"
	"leadsearch/internal/repositories"
	"leadsearch/internal/search"
	"leadsearch/internal/services"

	"log/slog"

	"github.com/joho/godotenv"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/labstack/echo/v4"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	searchClient, err := search.NewClient(&cfg.Search)
	if err != nil {
		log.Fatal("Failed to initialize search client:", err)
	}

	cacheClient, err := cache.NewClient(cfg.Cache.URL)
	if err != nil {
		log.Fatal("Failed to initialize cache client:", err)
	}
	defer cacheClient.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Repositories
	customerRepo := repositories.NewCustomerRepository(db.DB)
	companyRepo := repositories.NewCompanyRepository(db.DB)
	prospectRepo := repositories.NewProspectRepository(db.DB)
	userRepo := repositories.NewUserRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	suggestionService := services.NewSuggestionService(searchClient, cacheClient, cfg.Cache.SuggestionTTL, metrics)
	importService := services.NewImportService(db, customerRepo, metrics)
	healthService := services.NewHealthService(db, searchClient, cacheClient)
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService()
	authService := services.NewAuthService(userRepo, passwordService, tokenService, metrics, logger)

	seedAdminUser(db, passwordService)

	// Handlers
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService, metrics)
	customerHandler := handlers.NewCustomerHandler(customerRepo)
	companyHandler := handlers.NewCompanyHandler(companyRepo)
	prospectHandler := handlers.NewProspectHandler(prospectRepo)
	importHandler := handlers.NewImportHandler(importService)
	healthHandler := handlers.NewHealthHandler(healthService)
	userHandler := handlers.NewUserHandler(userRepo, passwordService)
	authHandler := handlers.NewAuthHandler(authService)
	loginPageHandler := handlers.NewLoginPageHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	requireAuth := middleware.RequireAuth(tokenService)
	requireDataRole := middleware.RequireRole(models.RoleAdmin, models.RoleModerator)
	requireAdmin := middleware.RequireAdmin()

	// Public surface
	e.GET("/login", loginPageHandler.ServeLoginPage)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Internal surface, unauthenticated by contract
	e.POST("/internal/bulk-import", importHandler.BulkImport)

	// Suggestion endpoints
	e.POST("/api/suggestions", suggestionHandler.GetSuggestions, requireAuth)
	e.GET("/api/suggestions", suggestionHandler.GetSuggestionsQuery, requireAuth)

	// Record CRUD, gated to ADMIN and MODERATOR
	e.GET("/api/customer/:email", customerHandler.GetCustomerByEmail, requireAuth, requireDataRole)
	e.GET("/api/company/:id", companyHandler.GetCompany, requireAuth, requireDataRole)
	e.PUT("/api/company/:id", companyHandler.UpdateCompany, requireAuth, requireDataRole)
	e.GET("/api/prospect/:id", prospectHandler.GetProspect, requireAuth, requireDataRole)
	e.PUT("/api/prospect/:id", prospectHandler.UpdateProspect, requireAuth, requireDataRole)

	// User administration
	e.GET("/api/users", userHandler.ListUsers, requireAuth, requireAdmin)
	e.POST("/api/users", userHandler.CreateUser, requireAuth, requireAdmin)
	e.GET("/api/users/:id", userHandler.GetUser, requireAuth)
	e.PUT("/api/users/:id", userHandler.UpdateUser, requireAuth, requireAdmin)
	e.DELETE("/api/users/:id", userHandler.DeleteUser, requireAuth, requireAdmin)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown:", err)
	}

	log.Println("Server stopped")
}

// seedAdminUser creates the bootstrap admin account when SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD are set.
func seedAdminUser(db *database.DB, passwordService services.PasswordServiceInterface) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	passwordHash, err := passwordService.HashPassword(password)
	if err != nil {
		log.Printf("Warning: failed to hash seed admin password: %v", err)
		return
	}

	if _, err := db.SeedAdminUser(email, passwordHash); err != nil {
		log.Printf("Warning: failed to seed admin user: %v", err)
	}
}
