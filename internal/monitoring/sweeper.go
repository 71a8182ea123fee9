package monitoring

import (
	"context"
	"time"

	"github.com/alcanciapp/alcanciapp-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Sweeper periodically deletes expired session rows. Verification never
// relies on it; expired rows already fail the lookup, the sweeper just
// keeps the table from growing forever.
type Sweeper struct {
	sessionSvc services.SessionServiceProvider
	schedule   string
	cron       *cron.Cron
}

// NewSweeper creates a sweeper running on the given cron schedule.
func NewSweeper(sessionSvc services.SessionServiceProvider, schedule string) *Sweeper {
	return &Sweeper{
		sessionSvc: sessionSvc,
		schedule:   schedule,
		cron:       cron.New(),
	}
}

// Run registers the sweep job and starts the cron loop. An invalid schedule
// disables the sweeper rather than taking the service down.
func (s *Sweeper) Run() {
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		log.Error().Err(err).Str("schedule", s.schedule).Msg("Invalid sweep schedule, sweeper disabled")
		return
	}
	log.Info().Str("schedule", s.schedule).Msg("Starting session sweeper")
	s.cron.Start()
}

// Stop halts the cron loop, waiting for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("Session sweeper stopped")
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pruned, err := s.sessionSvc.PruneExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Session sweep failed")
		return
	}
	if pruned > 0 {
		log.Info().Int64("pruned", pruned).Msg("Swept expired sessions")
	}
}
