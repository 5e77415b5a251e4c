package services

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
)

type ExpiredSessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// SessionSweeper periodically removes expired sessions from a store that
// does not expire them itself.
type SessionSweeper struct {
	cron   *cron.Cron
	purger ExpiredSessionPurger
}

func NewSessionSweeper(purger ExpiredSessionPurger, interval time.Duration) (*SessionSweeper, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("sweep interval must be positive")
	}

	s := &SessionSweeper{
		cron:   cron.New(),
		purger: purger,
	}

	spec := fmt.Sprintf("@every %s", interval)
	if _, err := s.cron.AddFunc(spec, func() { s.SweepOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("schedule session sweep: %w", err)
	}

	return s, nil
}

func (s *SessionSweeper) SweepOnce(ctx context.Context) int64 {
	removed, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		log.Error("session sweep failed", "err", err)
		return 0
	}
	if removed > 0 {
		log.Info("expired sessions removed", "count", removed)
	}
	return removed
}

func (s *SessionSweeper) Start() {
	s.cron.Start()
}

func (s *SessionSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
