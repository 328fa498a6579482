// File: salonbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"salonbook/config"
	"salonbook/cron"
	"salonbook/database"
	catalogRepoPkg "salonbook/database/repository/catalog"
	userRepoPkg "salonbook/database/repository/user"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/booking"
	"salonbook/services/catalog"
	"salonbook/services/tasks"
	"salonbook/services/user"
	"salonbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetDraftCacheClient(), utils.GetBookingsCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catRepo := catalogRepoPkg.NewMongoCatalogRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:   catRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}
	authService := &user.DefaultAuthService{
		Repo:   usrRepo,
		Logger: logger,
	}

	bookingStore := booking.NewBookingStore(
		&booking.RedisKV{Client: utils.GetBookingsCacheClient()},
		logger,
	)
	draftTTL := time.Duration(config.AppConfig.DraftTTLMinutes) * time.Minute
	if draftTTL <= 0 {
		draftTTL = booking.DraftTTL
	}
	sessionStore := booking.NewRedisSessionStore(utils.GetDraftCacheClient(), draftTTL, logger)
	reminderScheduler := tasks.NewAsynqReminderScheduler(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}, logger)

	flowService := &booking.DefaultFlowService{
		Sessions:  sessionStore,
		Store:     bookingStore,
		CatalogSv: catalogService,
		Payments:  &booking.SimulatedPaymentProcessor{Logger: logger},
		Reminders: reminderScheduler,
		Logger:    logger,
	}

	// handlers.
	handlerBundle := &handlers.HandlerBundle{
		Catalog: handlers.NewCatalogHandler(catalogService, logger),
		Booking: handlers.NewBookingHandler(flowService, bookingStore, catalogService, logger),
		Auth:    handlers.NewAuthHandler(authService, logger),
		Admin:   handlers.NewAdminHandler(catalogService, authService, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker alongside the API.
	cron.InitReminderWorker()

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
	if err := reminderScheduler.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reminder client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
