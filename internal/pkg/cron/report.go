package cron

import (
	"context"
	"log/slog"
	"time"
)

// ReportCache is the per-session monthly report store.
type ReportCache interface {
	Prune() int
}

type ReportJobs struct {
	cache    ReportCache
	interval time.Duration
}

func NewReportJobs(cache ReportCache, interval time.Duration) *ReportJobs {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &ReportJobs{cache: cache, interval: interval}
}

func (j *ReportJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("prune_report_cache", j.interval, j.PruneReportCache)
}

// PruneReportCache drops generated reports that were never downloaded in time.
func (j *ReportJobs) PruneReportCache(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if removed := j.cache.Prune(); removed > 0 {
		slog.Info("Cron: pruned expired monthly reports", "removed", removed)
	}
	return nil
}
