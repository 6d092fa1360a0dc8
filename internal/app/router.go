// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/openpdst/dst-service/config"
	"github.com/openpdst/dst-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the router configuration and the health
// handler from the wired services.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return dbComponents.DB.HealthCheck(ctx)
			}))
		}
		if dbComponents.DrugsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_drugs", dbComponents.DrugsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:       cfg.Server.RateLimit,
		RateWindow:      cfg.Server.RateWindow,
		EnableAuth:      cfg.Auth.Enabled,
		APIKeys:         cfg.Auth.APIKeys,
		CORSOrigins:     cfg.Server.CORSOrigins,
		SwaggerUser:     cfg.Server.SwaggerUser,
		SwaggerPass:     cfg.Server.SwaggerPass,
		LoggingService:  services.Logging,
		ProtocolService: services.Protocol,
		BatchService:    services.Batch,
		DrugService:     services.Drugs,
		SessionService:  services.Sessions,
		AuthService:     services.Auth,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
