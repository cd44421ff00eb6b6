package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ekaracan/kitapkurdu/config"
	"github.com/ekaracan/kitapkurdu/internal/app/controller"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/internal/app/service"
	"github.com/ekaracan/kitapkurdu/internal/db"
	"github.com/ekaracan/kitapkurdu/internal/middleware"
	"github.com/ekaracan/kitapkurdu/internal/router"
	"github.com/ekaracan/kitapkurdu/internal/scheduler"
	"github.com/ekaracan/kitapkurdu/internal/session"
	"github.com/ekaracan/kitapkurdu/internal/storage"
	"github.com/ekaracan/kitapkurdu/internal/websocket"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logFormat := "json"
	if cfg.Server.Environment == "development" {
		logFormat = "console"
	}
	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      logFormat,
		EnableColor: cfg.Server.Environment == "development",
	})

	logger.Info("Starting KitapKurdu", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run database migrations", err)
	}

	var store session.Store
	redisStore, err := session.NewRedisStore(&cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory sessions", map[string]interface{}{
			"error": err.Error(),
		})
		store = session.NewMemoryStore()
	} else {
		defer redisStore.Close()
		store = redisStore
	}

	var uploader storage.Uploader
	if cfg.S3.Bucket != "" && cfg.S3.AccessKeyID != "" {
		uploader, err = storage.NewS3Uploader(cfg.S3)
		if err != nil {
			logger.Warn("S3 unavailable, cover uploads disabled", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	gormDB := db.GetDB()

	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	bookRepo := repository.NewBookRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	gateway := repository.NewProcGateway(gormDB)

	hub := websocket.NewHub()
	go hub.Run()

	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(bookRepo, categoryRepo, favoriteRepo, gateway)
	cartService := service.NewCartService(bookRepo)
	checkoutService := service.NewCheckoutService(gormDB, cartRepo, gateway)
	orderService := service.NewOrderService(gateway)
	favoriteService := service.NewFavoriteService(favoriteRepo, bookRepo)
	reviewService := service.NewReviewService(gateway)
	notificationService := service.NewNotificationService(notificationRepo, hub)
	sellerService := service.NewSellerService(bookRepo, gateway, uploader)

	cartSweeper := scheduler.NewCartCleanupScheduler(cartRepo)
	if err := cartSweeper.Start(); err != nil {
		logger.Fatal("Failed to start cart cleanup scheduler", err)
	}
	defer cartSweeper.Stop()

	sessionMW := middleware.NewSessionMiddleware(store, cfg.Session)

	engine := router.Setup(cfg, sessionMW, hub, router.Controllers{
		Auth:         controller.NewAuthController(authService),
		Catalog:      controller.NewCatalogController(catalogService),
		Cart:         controller.NewCartController(cartService),
		Checkout:     controller.NewCheckoutController(cartService, checkoutService),
		Order:        controller.NewOrderController(orderService),
		Favorite:     controller.NewFavoriteController(favoriteService),
		Review:       controller.NewReviewController(reviewService),
		Notification: controller.NewNotificationController(notificationService),
		Seller:       controller.NewSellerController(sellerService, orderService, notificationService, categoryRepo),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	go func() {
		logger.Info("HTTP server listening", map[string]interface{}{
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}

	logger.Info("Server exited")
}
