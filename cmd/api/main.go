package main

import (
	"os"

	"github.com/eduplat/courses/internal/pkg/logger"
	"github.com/eduplat/courses/internal/server"
)

// @title Course Service API
// @version 1.0
// @description Course, lesson and enrollment backend for the learning platform. Accounts and tokens are managed by the user service.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT issued by the user service, sent as "Bearer {token}"

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
