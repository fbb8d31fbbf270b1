package main

import (
	"github.com/rs/zerolog/log"

	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/shared/logger"
)

// @title F5 Hotel Booking API
// @version 1.0
// @description Room bookings, receipts and accounts for the F5 Hotel front desk.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	logger.InitLogger()

	cfg := config.Get()

	closer := logger.EnableFileOutput(cfg)
	defer closer.Close()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
