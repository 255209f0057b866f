package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jetcab/dispatch/internal/pkg/config"
	"github.com/jetcab/dispatch/internal/pkg/database"
	"github.com/jetcab/dispatch/internal/pkg/health"
	"github.com/jetcab/dispatch/internal/pkg/logger"
	"github.com/jetcab/dispatch/internal/pkg/middleware"
	natspkg "github.com/jetcab/dispatch/internal/pkg/nats"
	nrpkg "github.com/jetcab/dispatch/internal/pkg/newrelic"
	"github.com/jetcab/dispatch/internal/pkg/server"
	bookinghandler "github.com/jetcab/dispatch/services/booking/handler"
	bookingrepo "github.com/jetcab/dispatch/services/booking/repository"
	bookingusecase "github.com/jetcab/dispatch/services/booking/usecase"
	locationrepo "github.com/jetcab/dispatch/services/location/repository"
	notificationgateway "github.com/jetcab/dispatch/services/notification/gateway"
	notificationhandler "github.com/jetcab/dispatch/services/notification/handler"
	notificationrepo "github.com/jetcab/dispatch/services/notification/repository"
	notificationusecase "github.com/jetcab/dispatch/services/notification/usecase"
	taxihandler "github.com/jetcab/dispatch/services/taxi/handler"
	taxirepo "github.com/jetcab/dispatch/services/taxi/repository"
	taxiusecase "github.com/jetcab/dispatch/services/taxi/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Initialize repositories
	bookingRepo := bookingrepo.NewBookingRepository(configs, db)
	passengerRepo := bookingrepo.NewPassengerRepository(db)
	taxiRepo := taxirepo.NewTaxiRepository(configs, db, redisClient)
	locationRepo := locationrepo.NewLocationRepository(db)
	failureRepo := notificationrepo.NewFailureRepository(redisClient)

	// Initialize notification fanout
	notifyGW := notificationgateway.NewNotifyGateway(natsClient)
	notifierUC := notificationusecase.NewNotifierUC(configs, notifyGW, failureRepo)

	// Initialize usecases
	bookingUC := bookingusecase.NewBookingUC(configs, bookingRepo, passengerRepo, taxiRepo, locationRepo, notifierUC)
	taxiUC := taxiusecase.NewTaxiUC(configs, taxiRepo, locationRepo)

	// Initialize handlers
	bookingHandler := bookinghandler.NewHandler(bookingUC, natsClient, configs, nrApp)
	taxiHandler := taxihandler.NewHandler(taxiUC, configs)
	notificationHandler := notificationhandler.NewHandler(notifierUC, configs)

	// Start the booking claim consumer
	if err := bookingHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Health checks for every backing dependency
	healthService := health.NewService()
	healthService.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	healthService.AddChecker("nats", health.CheckerFunc(func(ctx context.Context) error {
		if !natsClient.IsConnected() {
			return fmt.Errorf("nats connection lost")
		}
		return nil
	}))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register routes
	bookingHandler.RegisterRoutes(e)
	taxiHandler.RegisterRoutes(e)
	notificationHandler.RegisterRoutes(e)

	// Run until signalled to stop
	srv := server.NewGracefulServer(e, zapLogger,
		configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
