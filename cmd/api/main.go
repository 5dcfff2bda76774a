package main

import (
	"os"

	"github.com/dishaportal/disha-backend/internal/pkg/logger"
	"github.com/dishaportal/disha-backend/internal/server"
)

// @title DISHA Portal API
// @version 1.0
// @description Backend for the DISHA university social internship portal

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

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

	logger.Info().Msg("Application finished gracefully")
}
