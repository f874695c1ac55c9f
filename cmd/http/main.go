package main

import (
	"context"
	"lifelink-service/internal/app/config"
	"lifelink-service/internal/app/delivery/http/middlewares"
	"lifelink-service/internal/app/delivery/http/routers"
	"lifelink-service/internal/app/drivers/database"
	"lifelink-service/internal/app/drivers/logger"
	"lifelink-service/internal/app/drivers/messaging"
	"lifelink-service/internal/app/drivers/storage"
	"lifelink-service/internal/app/services/core/donors"
	"lifelink-service/internal/app/services/core/notifications"
	"lifelink-service/internal/app/services/core/requests"
	"lifelink-service/internal/app/services/core/session"
	"lifelink-service/internal/app/services/core/verifications"
	"lifelink-service/internal/app/services/shared/fanout"
	"lifelink-service/internal/app/services/shared/outbox"
	"lifelink-service/internal/app/services/shared/push"
	redisrepo "lifelink-service/internal/app/services/shared/redis"
	miniostorage "lifelink-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Error while closing application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis and sessions
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger)

	// Push hub
	hub := push.NewHub(
		time.Duration(bootstrap.InternalConfig.App.PushWriteTimeoutSeconds)*time.Second,
		bootstrap.Logger,
	)
	pushController := push.NewPushController(hub, sessionService, bootstrap.InternalConfig.JWT.Secret, bootstrap.Logger)

	// Notifications and fanout
	notificationMongoRepository := notifications.NewNotificationMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	notificationUsecase := notifications.NewNotificationUsecase(notificationMongoRepository, bootstrap.Logger)
	notificationController := notifications.NewNotificationController(notificationUsecase, bootstrap.Logger)
	fanoutService := fanout.NewFanoutService(notificationMongoRepository, hub, bootstrap.Logger)

	// Outbox
	eventPublisher, err := outbox.NewEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.InventoryQueue,
		bootstrap.InternalConfig.App.CertificateMailerQueue,
		bootstrap.Logger,
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize event publisher: %v", err)
	}

	// Donors
	donorMongoRepository := donors.NewDonorMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	minioStorage := miniostorage.NewMinioStorage(bootstrap.Minio)
	donorUsecase := donors.NewDonorUsecase(donorMongoRepository, minioStorage, bootstrap.DriverConfig, bootstrap.InternalConfig, bootstrap.Logger)
	donorController := donors.NewDonorController(donorUsecase, bootstrap.Logger)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := donorMongoRepository.EnsureIndexes(indexCtx); err != nil {
		logrus.Fatalf("Failed to ensure donor indexes: %v", err)
	}

	// Requests
	requestMongoRepository := requests.NewRequestMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	requestUsecase := requests.NewRequestUsecase(
		requestMongoRepository,
		donorMongoRepository,
		fanoutService,
		hub,
		bootstrap.InternalConfig.App.MatchRadiusMeters,
		bootstrap.Logger,
	)
	requestController := requests.NewRequestController(requestUsecase, bootstrap.Logger)

	// Verifications
	verificationUsecase := verifications.NewVerificationUsecase(
		requestMongoRepository,
		fanoutService,
		eventPublisher,
		bootstrap.Logger,
	)
	verificationController := verifications.NewVerificationController(verificationUsecase, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		requestController,
		donorController,
		notificationController,
		verificationController,
		pushController,
	)
}
