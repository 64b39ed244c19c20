package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"plateRank/app/echo-server/router"
	"plateRank/business/catalog"
	"plateRank/business/category"
	"plateRank/business/orders"
	"plateRank/business/recommend"
	"plateRank/internal/middleware"
	psqlRepo "plateRank/internal/repository/postgres"
	redisRepo "plateRank/internal/repository/redis"
	"plateRank/internal/rest"
	"plateRank/pkg/config"
	"plateRank/pkg/database"
	redisdb "plateRank/pkg/database/redis"
	"plateRank/pkg/logger"
	"plateRank/pkg/metrics"
	"plateRank/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting PlateRank", "version", cfg.App.Version)

	utils.SetJWTSecret(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Failed to close Redis client", "error", err)
		}
	}()

	// Init repo
	catalogRepo := psqlRepo.NewCatalogRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)
	eventRepo := psqlRepo.NewRecoEventRepository(db)
	profileRepo := psqlRepo.NewRecoProfileRepository(db)
	segmentRepo := psqlRepo.NewUserSegmentRepository(db)
	ruleRepo := psqlRepo.NewAssociationRuleRepository(db)
	velocityRepo := psqlRepo.NewVelocityRepository(db)
	velocityCache := redisRepo.NewVelocityCache(
		redisClient,
		velocityRepo,
		time.Duration(cfg.Reco.VelocityCacheTTLSeconds)*time.Second,
	)

	// Init service
	catalogService := catalog.NewCatalogService(catalogRepo)
	ordersService := orders.NewOrdersService(ordersRepo, catalogRepo)
	categoryService := category.NewCategoryService(categoryRepo)

	vertical := recommend.Vertical(cfg.Reco.Vertical)
	engine := recommend.NewEngine(recommend.ProfileFor(vertical))
	recommendService := recommend.NewRecommendService(
		engine,
		vertical,
		catalogRepo,
		ordersRepo,
		eventRepo,
		velocityCache,
		ruleRepo,
		profileRepo,
		segmentRepo,
	)

	// Init handler
	catalogHandler := rest.NewCatalogHandler(catalogService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	categoryHandler := rest.NewCategoryHandler(categoryService)
	recommendHandler := rest.NewRecommendHandler(recommendService)
	recommendAdminHandler := rest.NewRecommendAdminHandler(profileRepo, segmentRepo, ruleRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupCatalogRoutes(api, catalogHandler, authRequired, adminOnly)
	router.SetOrdersRoutes(api, ordersHandler)
	router.SetupCategoryRoutes(api, categoryHandler)
	router.SetRecommendRoutes(api, recommendHandler)
	router.SetRecommendAdminRoutes(api, recommendAdminHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
