// Package main is the entry point for the glass-transfer-service application.
//
// @title           Glass Transfer Service API
// @version         1.0.0
// @description     Gateway for moving glassware stock from the wholesale store to the retail store.
//
//	The service previews a transfer cart against the authoritative stock backend, converts
//	wholesale package quantities into retail units, and executes confirmed transfers exactly once.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/Mohamed2661994/glass-transfer-service
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
// @description                 JWT access token, prefixed with "Bearer ".
//
// @tag.name        Transfers
// @tag.description Wholesale-to-retail transfer operations
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/Mohamed2661994/glass-transfer-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/Mohamed2661994/glass-transfer-service/config"
	"github.com/Mohamed2661994/glass-transfer-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
