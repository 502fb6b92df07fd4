// File: taskturf/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskturf/config"
	"taskturf/database"
	bookingRepoPkg "taskturf/database/repository/booking"
	notificationRepoPkg "taskturf/database/repository/notification"
	paymentRepoPkg "taskturf/database/repository/payment"
	userRepoPkg "taskturf/database/repository/user"
	"taskturf/handlers"
	"taskturf/middleware"
	"taskturf/routes"
	"taskturf/services/booking"
	"taskturf/services/matching"
	"taskturf/services/notification"
	"taskturf/services/payment"
	"taskturf/services/stats"
	"taskturf/services/user"
	"taskturf/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()
	mongoClient, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Close(mongoClient, 5*time.Second); err != nil {
			logger.Sugar().Errorf("main: failed to close MongoDB connection: %v", err)
		}
	}()

	utils.InitAuthCache()
	authCache := utils.GetAuthCacheClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	dbName := config.AppConfig.DatabaseName
	userRepo := userRepoPkg.NewMongoUserRepo(mongoClient, dbName)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(mongoClient, dbName)
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo(mongoClient, dbName)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(mongoClient, dbName)

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: authCache,
	}

	matchingService := &matching.DefaultMatchingService{
		UserRepo: userRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
		TTL:  time.Duration(config.AppConfig.NotificationTTLDays) * 24 * time.Hour,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:            bookingRepo,
		UserRepo:        userRepo,
		MatchingSvc:     matchingService,
		NotificationSvc: notificationService,
		Logger:          logger,
	}

	paymentService := &payment.DefaultPaymentService{
		Bookings:        bookingRepo,
		Payments:        paymentRepo,
		NotificationSvc: notificationService,
		Logger:          logger,
	}

	dashboardService := &stats.DefaultDashboardService{
		Repo: bookingRepo,
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	bookingHandler := handlers.NewBookingHandler(bookingService, paymentService, userService, logger)
	workerHandler := handlers.NewWorkerHandler(matchingService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	statsHandler := handlers.NewStatsHandler(dashboardService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		RegisterHandler: authHandler.RegisterHandler,
		SigninHandler:   authHandler.SigninHandler,

		// User endpoints.
		MeHandler:              userHandler.MeHandler,
		UpdateProfileHandler:   userHandler.UpdateProfileHandler,
		ChangePasswordHandler:  userHandler.ChangePasswordHandler,
		SetAvailabilityHandler: userHandler.SetAvailabilityHandler,
		SignOutHandler:         userHandler.SignOutHandler,

		// Booking endpoints.
		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		ListBookingsHandler:  bookingHandler.ListBookingsHandler,
		GetBookingHandler:    bookingHandler.GetBookingHandler,
		RespondHandler:       bookingHandler.RespondHandler,
		StartHandler:         bookingHandler.StartHandler,
		CompleteHandler:      bookingHandler.CompleteHandler,
		CancelHandler:        bookingHandler.CancelHandler,
		UpdateDetailsHandler: bookingHandler.UpdateDetailsHandler,
		PayHandler:           bookingHandler.PayHandler,

		// Worker discovery.
		MatchCandidatesHandler: workerHandler.MatchCandidatesHandler,

		// Notification endpoints.
		ListNotificationsHandler: notificationHandler.ListHandler,
		UnreadCountHandler:       notificationHandler.UnreadCountHandler,
		MarkReadHandler:          notificationHandler.MarkReadHandler,
		MarkAllReadHandler:       notificationHandler.MarkAllReadHandler,

		// Dashboard.
		DashboardHandler: statsHandler.DashboardHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, authCache)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
