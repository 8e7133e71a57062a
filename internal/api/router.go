package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/RaafaGarcia/smartadmin-api/docs"
	"github.com/RaafaGarcia/smartadmin-api/internal/api/handler"
	"github.com/RaafaGarcia/smartadmin-api/internal/api/middleware"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/service"
	"github.com/RaafaGarcia/smartadmin-api/internal/infrastructure/config"
	mongodb "github.com/RaafaGarcia/smartadmin-api/internal/infrastructure/db/mongo"
	postgresdb "github.com/RaafaGarcia/smartadmin-api/internal/infrastructure/db/postgres"
	redisdb "github.com/RaafaGarcia/smartadmin-api/internal/infrastructure/db/redis"
)

// Deps carries the process-wide collaborators the router wires together.
type Deps struct {
	Config     *config.Config
	PG         *sql.DB
	Mongo      *mongo.Database
	Redis      *redis.Client
	Activities service.ActivityRecorder
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     d.Config.AllowedOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("smartadmin"))

	// --- Dependencies ---
	userRepo := postgresdb.NewUserRepository(d.PG)
	projectRepo := postgresdb.NewProjectRepository(d.PG)
	activityRepo := mongodb.NewActivityRepository(d.Mongo)
	snapshotCache := redisdb.NewSnapshotCache(d.Redis, 60*time.Second)

	tokens := service.NewTokenIssuer(d.Config.JWTSecret, d.Config.TokenTTL())
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo, d.Activities, d.Log)
	projectService := service.NewProjectService(projectRepo, userRepo, d.Activities, d.Log)
	dashboardService := service.NewDashboardService(userRepo, projectRepo, activityRepo, snapshotCache, d.Log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authRequired := middleware.Auth(tokens)
	adminRequired := middleware.RequireAdmin(userRepo)

	// --- Auth routes (open) ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- User routes (bearer token; mutations admin-only) ---
	users := e.Group("/api/users", authRequired)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update, adminRequired)
	users.DELETE("/:id", userHandler.Delete, adminRequired)

	// --- Project routes (bearer token) ---
	projects := e.Group("/api/projects", authRequired)
	projects.GET("", projectHandler.List)
	projects.POST("", projectHandler.Create)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)

	// --- Dashboard (bearer token) ---
	e.GET("/api/dashboard/metrics", dashboardHandler.Metrics, authRequired)

	// --- Service banner, health probes, metrics, docs (no auth required) ---
	rootHandler := handler.NewRootHandler()
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.PG, d.Mongo, d.Redis)

	e.GET("/", rootHandler.Banner)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/docs/*", echoswagger.WrapHandler)

	return e
}
