// File: hausly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hausly/config"
	"hausly/cron"
	"hausly/database"
	bannerRepo "hausly/database/repository/banner"
	couponRepo "hausly/database/repository/coupon"
	reviewRepo "hausly/database/repository/review"
	"hausly/handlers"
	"hausly/middleware"
	"hausly/routes"
	"hausly/services/address"
	"hausly/services/cart"
	"hausly/services/catalog"
	"hausly/services/coupon"
	"hausly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	defer database.CloseDB()
	utils.InitCartStore()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	cpnRepo := couponRepo.NewMongoCouponRepo()
	bnrRepo := bannerRepo.NewMongoBannerRepo()
	rvwRepo := reviewRepo.NewMongoReviewRepo()

	// services.
	cartService := &cart.DefaultCartService{
		Store:    cart.NewRedisCartStore(utils.GetCartClient()),
		Sessions: cart.NewRedisSessionStore(utils.GetCartClient()),
		Latency:  time.Duration(config.AppConfig.CartMutationDelayMs) * time.Millisecond,
	}
	couponService := &coupon.DefaultCouponService{
		Repo:   cpnRepo,
		Logger: logger,
	}
	catalogService := &catalog.DefaultCatalogService{
		BannerRepo: bnrRepo,
		ReviewRepo: rvwRepo,
		Logger:     logger,
	}
	addressService := &address.DefaultAddressService{
		Store:    address.NewRedisAddressStore(utils.GetCartClient()),
		Resolver: address.NewHTTPPincodeResolver(config.AppConfig.PincodeAPIBase),
	}

	// handlers.
	cartHandler := handlers.NewCartHandler(cartService, couponService, logger)
	couponHandler := handlers.NewCouponHandler(couponService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	addressHandler := handlers.NewAddressHandler(addressService, cartService, logger)

	// Register routes.
	routes.RegisterStorefrontRoutes(router, couponHandler, catalogHandler)
	routes.RegisterCartRoutes(router, cartHandler)
	routes.RegisterAddressRoutes(router, addressHandler)
	routes.RegisterHealthRoutes(router)

	// Background coupon expiry sweep and health monitor.
	cron.InitCouponSweeper(cpnRepo)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCartClient(), utils.GetCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
