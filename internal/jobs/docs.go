// Package jobs provides scheduled background tasks for the intake service.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	expiry := jobs.NewSessionExpiryJob(handler, "@every 1m", 30*time.Minute, logger)
//	manager := jobs.NewJobManager(expiry)
//	if err := manager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer manager.StopAll()
//
// SessionExpiryJob drops wizard sessions that were not written for longer than the
// session TTL. Sessions with a confirmation in progress are kept by the repository.
// Sweep errors are logged and retried on the next tick.
package jobs
