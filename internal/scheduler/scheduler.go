package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"skkuri-backend/internal/jobs"
	"skkuri-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner. The
// health probe is registered only when the runner has a prober.
func NewScheduler(jobRunner *jobs.JobRunner, withHealthProbe bool) (*Scheduler, error) {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if err := s.registerJobs(withHealthProbe); err != nil {
		return nil, err
	}
	return s, nil
}

type entry struct {
	name string
	spec string
	run  func() error
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs(withHealthProbe bool) error {
	cfg := s.jobs.Config().Scheduler

	entries := []entry{
		{jobs.JobCleanupOrphanedArtworks, cfg.CleanupOrphanedArtworks, s.jobs.CleanupOrphanedArtworks},
		{jobs.JobPendingApplicationDigest, cfg.PendingApplicationsDigest, s.jobs.SendPendingApplicationDigest},
	}
	if withHealthProbe {
		entries = append(entries, entry{jobs.JobProbeHealth, cfg.ProbeHealth, s.jobs.ProbeHealth})
	}

	for _, e := range entries {
		run := e.run
		if _, err := s.cron.AddFunc(e.spec, func() { _ = run() }); err != nil {
			logger.Error("Failed to register job", "job", e.name, "spec", e.spec, "error", err)
			return err
		}
		logger.Debug("Registered job", "job", e.name, "spec", e.spec)
	}

	logger.Info("All cron jobs registered successfully", "count", len(entries))
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// Entries returns the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
