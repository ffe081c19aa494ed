// The scheduler triggers the batch accrual endpoint on a fixed schedule. It
// runs as a separate process so the API server stays stateless; overlapping
// or repeated runs are harmless because accrual is idempotent per day.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/primevest/investledger/internal/config"
	"github.com/primevest/investledger/pkg/clients"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.New()
	if cfg.CronSecret == "" {
		log.Fatal().Msg("CRON_SECRET_KEY is required for the scheduler")
	}

	client := clients.NewHTTPClient()

	c := cron.New(cron.WithSeconds())
	_, err := c.AddFunc(cfg.BatchSchedule, func() {
		if err := runAccruals(client, cfg); err != nil {
			log.Error().Err(err).Msg("batch accrual trigger failed")
			return
		}
		log.Info().Msg("batch accrual triggered")
	})
	if err != nil {
		log.Fatal().Err(err).Msg("can't schedule batch accrual job")
	}

	c.Start()
	log.Info().Str("schedule", cfg.BatchSchedule).Str("endpoint", cfg.BatchEndpoint).Msg("scheduler started")

	<-ctx.Done()
	<-c.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

func runAccruals(client *clients.HTTPClient, cfg *config.Config) error {
	req, err := http.NewRequest(http.MethodPost, cfg.BatchEndpoint, http.NoBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.CronSecret)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("batch endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
