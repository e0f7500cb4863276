package jobs

import (
	"context"
	"fmt"
	"sort"
	"time"

	"skkuri-backend/internal/config"
	"skkuri-backend/internal/logger"
	"skkuri-backend/internal/metrics"
	"skkuri-backend/internal/repository"
	"skkuri-backend/internal/service"
	"skkuri-backend/internal/storage"
)

const (
	JobCleanupOrphanedArtworks  = "cleanup-orphaned-artworks"
	JobPendingApplicationDigest = "pending-applications-digest"
	JobProbeHealth              = "probe-health"
	JobAll                      = "all"
)

// jobTimeout bounds a single job run.
const jobTimeout = 10 * time.Minute

// HealthProber publishes the serving status of the process.
type HealthProber interface {
	Probe(ctx context.Context) error
}

// Deps holds everything the jobs read or write
type Deps struct {
	Clubs    repository.ClubRepository
	Recruits repository.RecruitRepository
	Members  repository.MemberRepository
	Artworks repository.ArtworkRepository
	Storage  storage.StorageInterface
	Email    service.EmailService
	// Health is only set inside the API server.
	Health HealthProber
}

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	deps   Deps
	config *config.Config
	now    func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(deps Deps, cfg *config.Config) *JobRunner {
	return &JobRunner{
		deps:   deps,
		config: cfg,
		now:    time.Now,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery, logging and metrics
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := jr.now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
			err = fmt.Errorf("job %s panicked: %v", jobName, r)
		}
		metrics.RecordJobRun(jobName, time.Since(start), err == nil)
	}()

	logger.Debug("Starting job", "job", jobName)
	if err = jobFunc(ctx); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		return err
	}
	logger.Debug("Job completed", "job", jobName, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// Names lists the jobs RunByName accepts.
func (jr *JobRunner) Names() []string {
	names := []string{JobCleanupOrphanedArtworks, JobPendingApplicationDigest, JobAll}
	if jr.deps.Health != nil {
		names = append(names, JobProbeHealth)
	}
	sort.Strings(names)
	return names
}

// RunByName runs a single job once, or every maintenance job for JobAll.
func (jr *JobRunner) RunByName(name string) error {
	switch name {
	case JobCleanupOrphanedArtworks:
		return jr.CleanupOrphanedArtworks()
	case JobPendingApplicationDigest:
		return jr.SendPendingApplicationDigest()
	case JobProbeHealth:
		if jr.deps.Health == nil {
			return fmt.Errorf("job %s is only available inside the server", name)
		}
		return jr.ProbeHealth()
	case JobAll:
		cleanupErr := jr.CleanupOrphanedArtworks()
		digestErr := jr.SendPendingApplicationDigest()
		if cleanupErr != nil {
			return cleanupErr
		}
		return digestErr
	default:
		return fmt.Errorf("unknown job %q", name)
	}
}
