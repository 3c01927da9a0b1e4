package jobs

import (
	"context"
	"log/slog"

	"procurement/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingWorkReader counts the documents waiting for a decision.
type PendingWorkReader interface {
	Handle(ctx context.Context, query queries.GetPendingWorkQuery) (queries.PendingWork, error)
}

// PendingWorkDigestJob periodically logs how many purchase orders wait for validation
// and how many cost estimates wait for approval. It only reads.
type PendingWorkDigestJob struct {
	reader   PendingWorkReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingWorkDigestJob creates the digest job. schedule accepts six-field cron
// specs and descriptors such as "@every 1h".
func NewPendingWorkDigestJob(reader PendingWorkReader, schedule string, logger *slog.Logger) *PendingWorkDigestJob {
	return &PendingWorkDigestJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pending_work_digest_job"),
	}
}

// Start schedules the digest.
func (j *PendingWorkDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending work digest job started", "schedule", j.schedule)
	return nil
}

// Run produces one digest.
func (j *PendingWorkDigestJob) Run(ctx context.Context) {
	work, err := j.reader.Handle(ctx, queries.NewGetPendingWorkQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending work digest failed", "error", err)
		return
	}

	if work.IsEmpty() {
		j.logger.DebugContext(ctx, "Nothing is waiting for a decision")
		return
	}
	j.logger.InfoContext(ctx, "Pending work",
		"awaiting_validation", work.AwaitingValidation,
		"awaiting_approval", work.AwaitingApproval,
	)
}

// Stop stops the digest job and waits for a running digest to finish.
func (j *PendingWorkDigestJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending work digest job stopped")
}
