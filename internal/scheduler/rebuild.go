package scheduler

import (
	"context"

	"github.com/wonny/kbostats/internal/portal"
)

// RebuildJob re-runs the cohort-wide artifact build on a cron schedule so
// edits to the data documents show up without a restart.
type RebuildJob struct {
	builder  *portal.Builder
	schedule string
}

// NewRebuildJob creates the artifact rebuild job.
func NewRebuildJob(builder *portal.Builder, schedule string) *RebuildJob {
	return &RebuildJob{builder: builder, schedule: schedule}
}

// Name returns the job name.
func (j *RebuildJob) Name() string { return "artifact_rebuild" }

// Schedule returns the configured cron expression.
func (j *RebuildJob) Schedule() string { return j.schedule }

// Run rebuilds the cohort-wide artifacts. Individual render failures are
// logged inside the builder, so the job itself never fails.
func (j *RebuildJob) Run(ctx context.Context) error {
	j.builder.BuildAll()
	return nil
}
