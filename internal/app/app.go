// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/openpdst/dst-service/config"
	"github.com/openpdst/dst-service/internal/http"
	"github.com/openpdst/dst-service/internal/middleware"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services
	serviceComponents := InitializeServices(cfg, dbComponents)

	// Buffered log writes through the shared worker pool
	if serviceComponents.Logging != nil {
		middleware.InitAsyncLogger(serviceComponents.Logging, middleware.DefaultAsyncLoggerConfig())
	}

	// Initialize router components (health handler and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)
}
