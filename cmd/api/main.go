package main

import (
	"os"

	"campusregistry/internal/pkg/logger"
	"campusregistry/internal/server"
)

// @title CampusRegistry API
// @version 1.0
// @description REST API for university administration: students, courses, departments, enrollments, classrooms, alumni, instructors, and attendance

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

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
