package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/edumart/edumart-back/internal/api"
	"github.com/edumart/edumart-back/internal/config"
	"github.com/edumart/edumart-back/internal/cron"
	"github.com/edumart/edumart-back/internal/db"
	"github.com/edumart/edumart-back/internal/payments"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db.InitDB(cfg.DatabaseURL)
	payments.Init(cfg.StripeSecretKey)

	r := api.SetupRouter(cfg)

	// Start cron jobs
	cron.StartJobs()

	log.Info().Str("port", cfg.Port).Msg("server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
