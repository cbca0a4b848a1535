package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/jobtrack/jobtrack/docs"
	"github.com/jobtrack/jobtrack/internal/api/handler"
	"github.com/jobtrack/jobtrack/internal/api/middleware"
	"github.com/jobtrack/jobtrack/internal/core/service"
	"github.com/jobtrack/jobtrack/internal/infrastructure/config"
	mongodb "github.com/jobtrack/jobtrack/internal/infrastructure/db/mongo"
	redisdb "github.com/jobtrack/jobtrack/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := handler.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobtrack"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessions, cfg.SessionSecret, cfg.SessionTTL, log)
	appService := service.NewApplicationService(appRepo, log)
	dashService := service.NewDashboardService(appRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL, cfg.Env == "production")
	appHandler := handler.NewApplicationHandler(appService)
	dashHandler := handler.NewDashboardHandler(dashService)
	apiHandler := handler.NewAPIHandler(appService, dashService)

	requireSession := middleware.Session(authService)

	// --- Public routes ---
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/signup", authHandler.SignupPage)
	e.POST("/signup", authHandler.Signup)
	e.GET("/logout", authHandler.Logout)

	// --- Protected browser routes ---
	e.GET("/", dashHandler.Landing, requireSession)
	e.GET("/home", dashHandler.Home, requireSession)
	e.GET("/addapplication", appHandler.AddPage, requireSession)
	e.POST("/addapplication", appHandler.Add, requireSession)
	e.GET("/track", appHandler.Track, requireSession)
	e.POST("/track", appHandler.Track, requireSession)
	e.GET("/edit", appHandler.EditPage, requireSession)
	e.POST("/edit", appHandler.Edit, requireSession)
	e.POST("/delete", appHandler.Delete, requireSession)

	// --- JSON API ---
	v1 := e.Group("/api/v1", requireSession)
	v1.GET("/applications", apiHandler.ListApplications)
	v1.GET("/summary", apiHandler.GetSummary)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
