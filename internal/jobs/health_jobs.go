package jobs

import "context"

// ProbeHealth refreshes the gRPC serving status from a database ping.
func (jr *JobRunner) ProbeHealth() error {
	return jr.runWithRecovery(JobProbeHealth, func(ctx context.Context) error {
		return jr.deps.Health.Probe(ctx)
	})
}
