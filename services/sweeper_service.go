// services/sweeper_service.go
package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Pruner drops per-session state idle since before cutoff.
type Pruner interface {
	Prune(cutoff time.Time) int
}

type SweeperService struct {
	store   SessionStore
	pruners []Pruner
	idle    time.Duration
	logger  zerolog.Logger
	cron    *cron.Cron
	now     func() time.Time
}

func NewSweeperService(store SessionStore, logger zerolog.Logger, idle time.Duration, pruners ...Pruner) *SweeperService {
	if idle <= 0 {
		idle = time.Hour
	}
	return &SweeperService{
		store:   store,
		pruners: pruners,
		idle:    idle,
		logger:  logger,
		now:     time.Now,
	}
}

// StartScheduler runs Sweep on the given cron spec until Stop is called.
func (s *SweeperService) StartScheduler(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, s.Sweep); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.logger.Info().Str("schedule", spec).Msg("session sweeper started")
	return nil
}

func (s *SweeperService) Stop() context.Context {
	if s.cron == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	return s.cron.Stop()
}

func (s *SweeperService) Sweep() {
	now := s.now()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.store.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.Error().Err(err).Msg("delete expired sessions")
	}
	pruned := 0
	for _, p := range s.pruners {
		pruned += p.Prune(now.Add(-s.idle))
	}
	s.logger.Debug().Int64("sessions", removed).Int("workspaces", pruned).Msg("sweep completed")
}
