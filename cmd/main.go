package main

import (
	"os"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/config"
	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/delivery"
	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/repository"
	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/usecase"
	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/pkg/db"

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

	logger.Info("Starting Trivia API Service...")

	// --- Database Connection ---
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("FATAL: Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connection established.")

	// --- Dependency Injection ---
	categoryRepo := repository.NewPostgresCategoryRepository(database, logger)
	questionRepo := repository.NewPostgresQuestionRepository(database, logger)
	logger.Info("Repositories initialized.")

	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, questionRepo, logger)
	questionUseCase := usecase.NewQuestionUseCase(questionRepo, logger)
	quizUseCase := usecase.NewQuizUseCase(questionRepo, logger)
	logger.Info("Use cases initialized.")

	categoryHandler := delivery.NewCategoryHandler(categoryUseCase, logger)
	questionHandler := delivery.NewQuestionHandler(questionUseCase, categoryUseCase, logger)
	quizHandler := delivery.NewQuizHandler(quizUseCase, logger)
	logger.Info("Handlers initialized.")

	router := delivery.NewRouter(categoryHandler, questionHandler, quizHandler, logger)
	logger.Info("API Routes registered.")

	// --- Start Server ---
	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
