package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/homefind/marketplace-api/internal/api/handler"
	"github.com/homefind/marketplace-api/internal/api/middleware"
	"github.com/homefind/marketplace-api/internal/core/domain"
	"github.com/homefind/marketplace-api/internal/core/service"
	mongodb "github.com/homefind/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/homefind/marketplace-api/internal/infrastructure/db/redis"
	"github.com/homefind/marketplace-api/internal/infrastructure/queue"
	"github.com/homefind/marketplace-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The view dispatcher workers run until ctx is cancelled.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, issuer, log)
	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL)

	listingRepo := mongodb.NewListingRepository(db)
	cache := redisdb.NewListingCache(rdb)
	listingService := service.NewListingService(listingRepo, cache, log)

	viewRepo := mongodb.NewViewRepository(db)
	viewService := service.NewViewService(viewRepo, log)
	dispatcher := queue.NewDispatcher(cfg.ViewWorkers, viewService, log)
	dispatcher.Start(ctx)

	listingHandler := handler.NewListingHandler(listingService, dispatcher)

	// The route guard sees every request; only its four path prefixes act.
	e.Use(middleware.Guard(issuer))

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)
	e.POST("/auth/signout", authHandler.Signout)

	// --- Listing routes ---
	authMW := middleware.Auth(issuer)
	v1 := e.Group("/v1")
	v1.GET("/listings", listingHandler.List)
	v1.GET("/listings/featured", listingHandler.Featured)
	v1.GET("/listings/:id", listingHandler.Get)
	v1.POST("/listings", listingHandler.Create, authMW, middleware.RBAC(domain.RoleAgent, domain.RoleAdmin))

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
