// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Mohamed2661994/glass-transfer-service/config"
	"github.com/Mohamed2661994/glass-transfer-service/internal/circuitbreaker"
	"github.com/Mohamed2661994/glass-transfer-service/internal/repository"
	"github.com/Mohamed2661994/glass-transfer-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	ReceiptsRepo           repository.ReceiptsRepositoryInterface
	LoggingService         service.LoggingService
	ReceiptsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
	UserRepo               repository.UserRepositoryInterface
}

// mongoChecker adapts the MongoDB ping to the health checker contract.
type mongoChecker struct {
	db *repository.MongoDB
}

func (m mongoChecker) Check() error {
	return m.db.HealthCheck(context.Background())
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	receiptsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-receipts",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	receiptsRepo := repository.NewReceiptsRepository(db)
	receiptsRepoWithCB := repository.NewReceiptsRepositoryWithCircuitBreaker(receiptsRepo, receiptsCB)

	userRepo := repository.NewUserRepository(db)

	// Seed a default operator account so a fresh deployment is usable
	if err := seedDefaultOperator(userRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default operator account")
	}

	return &DatabaseComponents{
		DB:                     db,
		ReceiptsRepo:           receiptsRepoWithCB,
		LoggingService:         loggingService,
		ReceiptsCircuitBreaker: receiptsCB,
		LogsCircuitBreaker:     logsCB,
		UserRepo:               userRepo,
	}
}
