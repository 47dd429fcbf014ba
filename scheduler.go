package main

import (
	"context"
	"time"
)

// Scheduler periodically refreshes the engine so a demo left running keeps
// producing fresh-looking forecasts without anyone pulling to refresh.
type Scheduler struct {
	cfg         *apiConfig
	refreshChan <-chan time.Time
	stop        chan struct{}
	ticker      *time.Ticker
	refreshJob  func()
}

func NewScheduler(cfg *apiConfig, refreshInterval time.Duration) *Scheduler {
	ticker := time.NewTicker(refreshInterval)
	s := &Scheduler{
		cfg:         cfg,
		refreshChan: ticker.C,
		stop:        make(chan struct{}),
		ticker:      ticker,
	}
	s.refreshJob = s.runRefreshJob
	return s
}

func (s *Scheduler) Start() {
	go func() {
		for {
			select {
			case <-s.refreshChan:
				s.cfg.logger.Debug("scheduler: running refresh job")
				s.refreshJob()
			case <-s.stop:
				s.cfg.logger.Debug("scheduler: stopping")
				if s.ticker != nil {
					s.ticker.Stop()
				}
				return
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	close(s.stop)
}

// runRefreshJob drives one blocking engine refresh. If a pull-to-refresh is
// already in flight the engine ignores this one, which is fine: the point is
// freshness, not cadence.
func (s *Scheduler) runRefreshJob() {
	outcome := s.cfg.engine.Refresh(context.Background())
	s.cfg.logger.Debug("scheduler: refresh finished", "outcome", outcome.String())
}
