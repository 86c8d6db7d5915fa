// File: spacehub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spacehub/config"
	"spacehub/cron"
	"spacehub/database"
	"spacehub/database/repository/adminrepo"
	"spacehub/database/repository/auditrepo"
	"spacehub/database/repository/bookingrepo"
	"spacehub/database/repository/listingrepo"
	"spacehub/database/repository/notificationrepo"
	"spacehub/database/repository/refundrepo"
	"spacehub/handlers"
	"spacehub/middleware"
	"spacehub/routes"
	adminSvc "spacehub/services/admin"
	bookingSvc "spacehub/services/booking"
	listingSvc "spacehub/services/listing"
	"spacehub/services/notification"
	"spacehub/services/payment"
	"spacehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingrepo.NewMongoBookingRepo()
	refundRepo := refundrepo.NewMongoRefundRepo()
	auditRepo := auditrepo.NewMongoAuditRepo()
	notificationRepo := notificationrepo.NewMongoNotificationRepo()
	listingRepo := listingrepo.NewMongoListingRepo()
	adminRepo := adminrepo.NewMongoAdminRepo()

	// async notification queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo:   notificationRepo,
		Client: asynqClient,
		Logger: logger,
	}

	gateway := payment.NewStripeGateway(logger)

	bookingService := &bookingSvc.DefaultBookingService{
		Repo:            bookingRepo,
		RefundRepo:      refundRepo,
		AuditRepo:       auditRepo,
		Gateway:         gateway,
		NotificationSvc: notificationService,
		Logger:          logger,
	}

	listingService := &listingSvc.DefaultListingService{
		Repo:   listingRepo,
		Logger: logger,
	}

	adminService := &adminSvc.DefaultAdminService{
		Repo:      adminRepo,
		AuthCache: utils.GetAuthCacheClient(),
		Cache:     utils.GetCacheClient(),
		Logger:    logger,
	}

	// Background delivery worker for queued notifications.
	cron.InitNotificationWorker(notificationRepo, &notification.FCMPusher{})

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminHandler:   handlers.NewAdminHandler(adminService),
		BookingHandler: handlers.NewBookingHandler(bookingService, logger),
		RefundHandler:  handlers.NewRefundHandler(refundRepo, auditRepo, logger),
		ListingHandler: handlers.NewListingHandler(listingService, logger),
		LegalHandler:   handlers.NewLegalHandler(adminService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
