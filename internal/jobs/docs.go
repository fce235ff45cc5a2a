// Package jobs provides scheduled background tasks for the order ID
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. DailyVolumeReportJob - Runs every day shortly after midnight UTC and
// logs each city's order volume for the previous day.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getDailyCountersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The report job logs failures and waits for the next scheduled run; a
// missed report never affects order ID generation.
package jobs
