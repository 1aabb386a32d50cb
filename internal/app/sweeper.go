package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/heartmarshall/myenglish-dictation/internal/observe"
)

type sweepable interface {
	Sweep(now time.Time) int
}

// Sweeper periodically drops expired entries from the in-process phrase
// cache. Expired entries are already treated as misses on read; sweeping
// only bounds memory.
type Sweeper struct {
	scheduler *gocron.Scheduler
	cache     sweepable
	metrics   *observe.Metrics
	log       *slog.Logger
	now       func() time.Time
}

// NewSweeper creates a Sweeper that runs every interval once started.
func NewSweeper(cache sweepable, interval time.Duration, metrics *observe.Metrics, log *slog.Logger) (*Sweeper, error) {
	s := &Sweeper{
		scheduler: gocron.NewScheduler(time.UTC),
		cache:     cache,
		metrics:   metrics,
		log:       log.With("component", "cache_sweeper"),
		now:       time.Now,
	}

	if _, err := s.scheduler.Every(interval).SingletonMode().Do(func() { s.sweep() }); err != nil {
		return nil, fmt.Errorf("schedule cache sweep: %w", err)
	}

	return s, nil
}

// Start runs the schedule in the background.
func (s *Sweeper) Start() {
	s.scheduler.StartAsync()
}

// Stop halts the schedule. A sweep in progress finishes first.
func (s *Sweeper) Stop() {
	s.scheduler.Stop()
}

func (s *Sweeper) sweep() int {
	n := s.cache.Sweep(s.now())
	if n > 0 {
		s.metrics.RecordCacheEvictions(context.Background(), n)
		s.log.Debug("expired phrases evicted", slog.Int("count", n))
	}
	return n
}
