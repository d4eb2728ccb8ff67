package cron

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/edumart/edumart-back/internal/db"
)

// StartJobs schedules the nightly enrollment reconciliation. Payment
// writes are transactional, so drift should be rare; the sweep is the
// backstop that repairs counters after an operator correction or a
// restored backup.
func StartJobs() {
	c := cron.New()

	c.AddFunc("@daily", func() {
		log.Info().Msg("running enrollment reconciliation")

		fixed, err := db.ReconcileEnrollments(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("enrollment reconciliation failed")
			return
		}
		if len(fixed) > 0 {
			log.Warn().Uints("class_ids", fixed).Msg("repaired drifted enrollment counters")
			return
		}
		log.Info().Msg("enrollment counters consistent")
	})

	c.Start()
}
