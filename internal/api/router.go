package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/babies-shop/commerce-api/internal/api/handler"
	"github.com/babies-shop/commerce-api/internal/api/middleware"
	"github.com/babies-shop/commerce-api/internal/core/domain"
	"github.com/babies-shop/commerce-api/internal/core/ports"
	"github.com/babies-shop/commerce-api/internal/core/service"
	mongodb "github.com/babies-shop/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/babies-shop/commerce-api/internal/infrastructure/db/redis"
	"github.com/babies-shop/commerce-api/internal/infrastructure/lock"
	"github.com/babies-shop/commerce-api/internal/infrastructure/payment"
)

// RouterConfig carries everything NewRouter needs beyond the two stores.
type RouterConfig struct {
	JWTSecret string
	// Verifier handles Google ID tokens; nil disables the /auth/google route.
	Verifier ports.IdentityVerifier
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	goodsRepo := mongodb.NewGoodsRepository(db)
	locks := lock.NewKeyed(0) // default stripe count
	guard := redisdb.NewCheckoutGuard(rdb)

	authService := service.NewAuthService(userRepo, cfg.Verifier, cfg.JWTSecret, 24*time.Hour, cfg.Log)
	catalogService := service.NewCatalogService(goodsRepo, cfg.Log)
	cartService := service.NewCartService(userRepo, goodsRepo, locks, cfg.Log)
	favoritesService := service.NewFavoritesService(userRepo, goodsRepo, locks, cfg.Log)
	checkoutService := service.NewCheckoutService(userRepo, goodsRepo, payment.NewStub(cfg.Log), guard, locks, cfg.Log)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	favoritesHandler := handler.NewFavoritesHandler(favoritesService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes (no token required) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	if cfg.Verifier != nil {
		e.POST("/auth/google", authHandler.GoogleLogin)
	}

	// --- Catalog reads (public) ---
	e.GET("/v1/goods", catalogHandler.List)
	e.GET("/v1/goods/:id", catalogHandler.Get)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/account", authHandler.Account)

	v1.POST("/goods", catalogHandler.Create, adminOnly)
	v1.PUT("/goods/:id", catalogHandler.Update, adminOnly)
	v1.DELETE("/goods/:id", catalogHandler.Delete, adminOnly)

	v1.GET("/cart", cartHandler.Get)
	v1.POST("/cart", cartHandler.Add)
	v1.PUT("/cart/:goods_id", cartHandler.Update)
	v1.DELETE("/cart/:goods_id", cartHandler.Remove)

	v1.GET("/favorites", favoritesHandler.Get)
	v1.POST("/favorites", favoritesHandler.Add)
	v1.DELETE("/favorites/:goods_id", favoritesHandler.Remove)

	v1.POST("/checkout", checkoutHandler.Checkout)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
