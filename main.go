// File: tablescout/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tablescout/config"
	catalogRepo "tablescout/database/repository/catalog"
	reservationRepo "tablescout/database/repository/reservation"
	"tablescout/handlers"
	"tablescout/middleware"
	"tablescout/routes"
	"tablescout/services/booking"
	userSvc "tablescout/services/user"
	"tablescout/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitAuthCache()
	utils.StartHealthMonitor(utils.GetAuthCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories. Catalog and reservations are in-process mock datasets;
	// only the session identity record lives in Redis.
	catalog := catalogRepo.NewSeededCatalogRepo()
	reservations := reservationRepo.NewSeededReservationRepo()

	// Services.
	sessionStore := &userSvc.RedisSessionStore{
		Client: utils.GetAuthCacheClient(),
		TTL:    time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}
	userService := userSvc.NewDefaultUserService(sessionStore, logger)

	bookingService := &booking.DefaultBookingService{
		Catalog:      catalog,
		Reservations: reservations,
		Logger:       logger,
		WindowDays:   config.AppConfig.AvailabilityWindowDays,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:       handlers.NewAuthHandler(userService, logger),
		Restaurant: handlers.NewRestaurantHandler(catalog, logger),
		Booking:    handlers.NewBookingHandler(bookingService, logger),
		Sessions:   sessionStore,
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
