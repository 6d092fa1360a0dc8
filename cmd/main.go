// Package main is the entry point for the DST service.
//
// @title           DST Service API
// @version         1.0.0
// @description     API for calculating drug dilution protocols for MGIT-based
// @description     phenotypic drug-susceptibility testing of M. tuberculosis.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/openpdst/dst-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token. Format: "Bearer {token}"
//
// @tag.name        Calculation
// @tag.description Two-stage dilution calculations and batch processing
//
// @tag.name        Drugs
// @tag.description Drug reference panel management
//
// @tag.name        Units
// @tag.description Measurement unit conversion
//
// @tag.name        Sessions
// @tag.description Protocol session persistence
//
// @tag.name        Logs
// @tag.description Request and audit log queries
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/openpdst/dst-service/docs" // swagger docs

	"github.com/openpdst/dst-service/config"
	"github.com/openpdst/dst-service/internal/app"
	"github.com/openpdst/dst-service/internal/middleware"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	defer middleware.StopAsyncLogger()

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
