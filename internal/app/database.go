// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/openpdst/dst-service/config"
	"github.com/openpdst/dst-service/internal/circuitbreaker"
	"github.com/openpdst/dst-service/internal/repository"
	"github.com/openpdst/dst-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                  *repository.MongoDB
	DrugRepo            repository.DrugRepositoryInterface
	SessionRepo         repository.SessionRepositoryInterface
	UserRepo            repository.UserRepositoryInterface
	LoggingService      service.LoggingService
	DrugsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker  *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the
// repositories and services that depend on it.
// Returns nil if the database is disabled or the connection fails.
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

	if err := db.SetLogsTTL(context.Background(), cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	drugsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-drugs",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	logsRepo := repository.NewLogsRepository(db)
	loggingService := service.NewLoggingService(repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB))

	drugRepo := repository.NewDrugRepositoryWithCircuitBreaker(repository.NewDrugRepository(db), drugsCB)

	// Seed the built-in drug panel into an empty reference store.
	if err := drugRepo.SeedDefaultPanel(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default drug panel")
	}

	return &DatabaseComponents{
		DB:                  db,
		DrugRepo:            drugRepo,
		SessionRepo:         repository.NewSessionRepository(db),
		UserRepo:            repository.NewUserRepository(db),
		LoggingService:      loggingService,
		DrugsCircuitBreaker: drugsCB,
		LogsCircuitBreaker:  logsCB,
	}
}
