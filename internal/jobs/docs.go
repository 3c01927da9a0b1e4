// Package jobs provides scheduled background tasks for the procurement service.
//
// Jobs use github.com/robfig/cron/v3 and never change state: they read through the
// query handlers only.
//
// # Available Jobs
//
// 1. PendingWorkDigestJob - logs how many purchase orders wait for validation and how
// many cost estimates wait for approval
//
// # Usage
//
//	digest := jobs.NewPendingWorkDigestJob(pendingWorkHandler, "@every 1h", logger)
//	jobManager := jobs.NewJobManager(digest)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed digest is logged and retried on the next tick
// - Failed job starts stop any already running jobs
package jobs
