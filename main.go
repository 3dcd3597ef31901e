// File: bookify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookify/config"
	"bookify/database"
	bookingRepoPkg "bookify/database/repository/booking"
	businessRepoPkg "bookify/database/repository/business"
	clientRepoPkg "bookify/database/repository/client"
	serviceRepoPkg "bookify/database/repository/service"
	"bookify/handlers"
	"bookify/middleware"
	"bookify/routes"
	"bookify/services/booking"
	"bookify/services/notification"
	"bookify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo(utils.GetCacheClient())
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()

	// Push delivery. With no credentials configured the sender is nil and
	// every dispatch is a reported no-op.
	sender := notification.NewFCMSender(utils.FCMClient, config.AppConfig.FCMPerDevice)
	dispatcher := notification.NewDispatcher(sender, logger)

	// services.
	bookingService := &booking.DefaultBookingService{
		Bookings:   bookingRepo,
		Businesses: businessRepo,
		Clients:    clientRepo,
		Services:   serviceRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Booking:  handlers.NewBookingHandler(bookingService),
		Business: handlers.NewBusinessHandler(businessRepo),
		Device:   handlers.NewDeviceHandler(clientRepo, businessRepo),
	}
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
