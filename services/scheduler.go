package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// StartScheduler runs the periodic housekeeping jobs. Stop the returned cron
// on shutdown.
func StartScheduler(sessions *SessionService) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		n, err := sessions.PurgeExpired(ctx)
		if err != nil {
			log.Error().Err(err).Msg("session purge failed")
			return
		}
		if n > 0 {
			log.Info().Int64("purged", n).Msg("expired sessions purged")
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
