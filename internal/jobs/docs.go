// Package jobs provides scheduled background tasks for the pizza order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order queue.
//
// # Available Jobs
//
// 1. QueueMonitorJob - Periodically reports the depth of the pending order
// queue and warns when the oldest pending order has been waiting too long.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pendingPurchasesHandler, maxPendingAge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The monitor job only observes; its failures are logged and the next tick
// runs regardless.
package jobs
