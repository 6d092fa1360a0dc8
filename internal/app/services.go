// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/openpdst/dst-service/config"
	"github.com/openpdst/dst-service/internal/dilution"
	"github.com/openpdst/dst-service/internal/repository"
	"github.com/openpdst/dst-service/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Drugs    service.DrugService
	Protocol service.ProtocolService
	Batch    service.BatchService
	Sessions service.SessionService
	Auth     service.AuthService
	Logging  service.LoggingService
}

// InitializeServices wires the business services. Without a database the
// drug reference store falls back to the seeded in-memory panel and
// sessions, log queries and JWT auth are disabled.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	defaultProtocol, err := dilution.ProtocolByName(cfg.Calculation.Protocol)
	if err != nil {
		log.Warn().Str("protocol", cfg.Calculation.Protocol).Msg("Unknown protocol variant, using default")
		defaultProtocol = dilution.DefaultProtocol
	}

	var drugRepo repository.DrugRepositoryInterface
	var sessionRepo repository.SessionRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		drugRepo = dbComponents.DrugRepo
		sessionRepo = dbComponents.SessionRepo
		loggingService = dbComponents.LoggingService
	} else {
		drugRepo = repository.NewMemoryDrugRepository()
	}

	var drugOpts []service.DrugOption
	if cfg.Calculation.DrugCacheSize > 0 {
		drugOpts = append(drugOpts, service.WithDrugCache(cfg.Calculation.DrugCacheSize, cfg.Calculation.DrugCacheTTL))
	}
	drugs := service.NewDrugService(drugRepo, drugOpts...)

	components := &ServiceComponents{
		Drugs:    drugs,
		Protocol: service.NewProtocolService(drugs, sessionRepo, loggingService, defaultProtocol),
		Batch:    service.NewBatchService(drugs, loggingService, defaultProtocol, cfg.Calculation.BatchMaxRows, cfg.Calculation.BatchWorkers),
		Logging:  loggingService,
	}

	if sessionRepo != nil {
		components.Sessions = service.NewSessionService(sessionRepo)
	}
	if dbComponents != nil && cfg.Auth.Enabled {
		components.Auth = service.NewAuthService(dbComponents.UserRepo, cfg.Auth)
	}
	return components
}
