package main

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// startWatchScheduler runs job right away and then every interval. A run
// that is still going when the next one is due pushes the next one back
// instead of overlapping it.
func startWatchScheduler(interval time.Duration, clock clockwork.Clock, job func()) (gocron.Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("watch interval must be positive, got %s", interval)
	}

	s, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			start := time.Now()
			log.Debug().Msg("[Watch] Sync started")
			job()
			log.Debug().Dur("elapsed", time.Since(start)).Msg("[Watch] Sync finished")
		}),
		gocron.WithName("sync"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to schedule sync: %w", err)
	}

	s.Start()
	log.Info().Dur("interval", interval).Msg("[Watch] Watch scheduler started")
	return s, nil
}
