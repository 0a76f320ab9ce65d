package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/kejaplug/rental-api/docs"
	"github.com/kejaplug/rental-api/internal/api/handler"
	"github.com/kejaplug/rental-api/internal/api/middleware"
	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/core/ports"
	"github.com/kejaplug/rental-api/internal/core/service"
	mongorepo "github.com/kejaplug/rental-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/kejaplug/rental-api/internal/infrastructure/db/redis"
	"github.com/kejaplug/rental-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The fan-out dispatcher is constructed by the caller so its lifecycle
// (Start/drain) stays in main.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, fanout ports.Fanout, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("kejaplug"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	propertyRepo := mongorepo.NewPropertyRepository(db)
	notificationRepo := mongorepo.NewNotificationRepository(db)
	listingCache := redisinfra.NewListingCache(rdb, log)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	propertyService := service.NewPropertyService(propertyRepo, userRepo, fanout, listingCache, log)
	applicationService := service.NewApplicationService(propertyRepo, fanout, log)
	notificationService := service.NewNotificationService(notificationRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	landlordHandler := handler.NewLandlordHandler(propertyService)
	applicationHandler := handler.NewApplicationHandler(applicationService, authService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	landlordOnly := middleware.RequireRole(domain.RoleLandlord)
	tenantOnly := middleware.RequireRole(domain.RoleTenant)

	// --- API routes ---
	api := e.Group("/api")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Public listing queries.
	api.GET("/properties", propertyHandler.List)
	api.GET("/properties/:id", propertyHandler.Get)

	// Listing mutations are landlord-only.
	propertyGroup := api.Group("/properties", authRequired, landlordOnly)
	propertyGroup.POST("", propertyHandler.Create)
	propertyGroup.PUT("/:id", propertyHandler.Update)
	propertyGroup.DELETE("/:id", propertyHandler.Delete)

	landlordGroup := api.Group("/landlord", authRequired, landlordOnly)
	landlordGroup.GET("/my-properties", landlordHandler.MyProperties)
	landlordGroup.PATCH("/properties/:id/status", landlordHandler.UpdateStatus)

	api.POST("/applications", applicationHandler.Submit, authRequired, tenantOnly)

	userGroup := api.Group("/users", authRequired)
	userGroup.GET("/me", userHandler.Me)
	userGroup.PUT("/me", userHandler.UpdateMe)

	notificationGroup := api.Group("/notifications", authRequired)
	notificationGroup.GET("", notificationHandler.List)
	notificationGroup.PATCH("/mark-all-read", notificationHandler.MarkAllRead)
	notificationGroup.PATCH("/:id/read", notificationHandler.MarkRead)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	// The public contract exposes liveness under the API prefix; the
	// root-level probes stay for orchestrator checks.
	api.GET("/health", healthHandler.Liveness)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
