package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plazaops/property-system/internal/api/handler"
	"github.com/plazaops/property-system/internal/api/middleware"
	"github.com/plazaops/property-system/internal/core/domain"
	"github.com/plazaops/property-system/internal/core/service"
	"github.com/plazaops/property-system/internal/infrastructure/config"
	mongorepo "github.com/plazaops/property-system/internal/infrastructure/db/mongo"
	redisinfra "github.com/plazaops/property-system/internal/infrastructure/db/redis"
	"github.com/plazaops/property-system/internal/infrastructure/email"
	"github.com/plazaops/property-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("property"))
	e.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{
		Timeout: cfg.RequestTimeout,
		ErrorHandler: func(err error, c echo.Context) error {
			return echo.NewHTTPError(http.StatusGatewayTimeout, "request timed out")
		},
	}))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	tenantRepo := mongorepo.NewTenantRepository(db)
	vacantShopRepo := mongorepo.NewVacantShopRepository(db)

	mailer := email.NewSMTPMailer(cfg.SMTP)
	throttle := redisinfra.NewResetThrottle(rdb)

	authService := service.NewAuthService(userRepo, mailer, throttle, cfg.JWTSecret, cfg.TokenTTL, cfg.FrontendURL, log)
	tenantService := service.NewTenantService(tenantRepo, log)
	vacantShopService := service.NewVacantShopService(vacantShopRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	tenantHandler := handler.NewTenantHandler(tenantService)
	vacantShopHandler := handler.NewVacantShopHandler(vacantShopService)

	protect := middleware.Protect(cfg.JWTSecret, userRepo)
	adminOnly := middleware.Authorize(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/auth/reset-password/:token", authHandler.ResetPassword)

	// --- Tenant routes (owner-scoped, any authenticated user) ---
	tenants := e.Group("/tenants", protect)
	tenants.POST("", tenantHandler.Create)
	tenants.GET("", tenantHandler.List)
	tenants.GET("/:id", tenantHandler.Get)
	tenants.PUT("/:id", tenantHandler.Update)
	tenants.DELETE("/:id", tenantHandler.Delete)

	// --- Vacant-shop routes (public reads, admin writes) ---
	e.GET("/vacant-shops", vacantShopHandler.List)
	e.GET("/vacant-shops/:id", vacantShopHandler.Get)
	e.POST("/vacant-shops", vacantShopHandler.Create, protect, adminOnly)
	e.PUT("/vacant-shops/:id", vacantShopHandler.Update, protect, adminOnly)
	e.DELETE("/vacant-shops/:id", vacantShopHandler.Delete, protect, adminOnly)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
