package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skkuri-backend/internal/config"
	"skkuri-backend/internal/jobs"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Scheduler.CleanupOrphanedArtworks = "0 0 4 * * *"
	cfg.Scheduler.PendingApplicationsDigest = "0 0 9 * * *"
	cfg.Scheduler.ProbeHealth = "*/30 * * * * *"
	return cfg
}

func TestNewSchedulerRegistersJobs(t *testing.T) {
	s, err := NewScheduler(jobs.NewJobRunner(jobs.Deps{}, testConfig()), false)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Entries())

	s, err = NewScheduler(jobs.NewJobRunner(jobs.Deps{}, testConfig()), true)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Entries())

	s.Start()
	s.Stop()
}

func TestNewSchedulerRejectsBadSpec(t *testing.T) {
	cfg := testConfig()
	cfg.Scheduler.PendingApplicationsDigest = "every morning"
	_, err := NewScheduler(jobs.NewJobRunner(jobs.Deps{}, cfg), false)
	assert.Error(t, err)
}
