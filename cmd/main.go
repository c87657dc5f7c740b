package main

import (
	"order_api/config"
	"order_api/internal/delivery"
	"order_api/internal/middleware"
	"order_api/internal/repository"
	"order_api/internal/usecase"
	"order_api/pkg/db"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting Order API...")

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connection established.")

	// --- Dependency Injection ---
	itemRepo := repository.NewPostgresItemRepository(database, logger)
	personRepo := repository.NewPostgresPersonRepository(database, logger)
	orderRepo := repository.NewPostgresOrderRepository(database, logger)
	messageRepo := repository.NewPostgresMessageRepository(database, logger)
	logger.Info("Repositories initialized.")

	itemUseCase := usecase.NewItemUseCase(itemRepo, logger)
	personUseCase := usecase.NewPersonUseCase(personRepo, logger)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, itemRepo, personRepo, logger)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, logger)
	logger.Info("Use cases initialized.")

	itemHandler := delivery.NewItemHandler(itemUseCase, logger)
	personHandler := delivery.NewPersonHandler(personUseCase, logger)
	orderHandler := delivery.NewOrderHandler(orderUseCase, logger)
	messageHandler := delivery.NewMessageHandler(messageUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(middleware.RequestLogger(logger), gin.Recovery())

	itemHandler.RegisterRoutes(router)
	personHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	messageHandler.RegisterRoutes(router)
	logger.Info("Routes registered.")

	logger.Infof("Starting server on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start server on %s: %v", cfg.Port, err)
		os.Exit(1)
	}
}
