package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeCache struct {
	calls atomic.Int32
}

func (f *fakeCache) Prune() int {
	f.calls.Add(1)
	return 1
}

func TestReportJobs_RegisterAndRunOnce(t *testing.T) {
	cache := &fakeCache{}
	scheduler := NewScheduler(context.Background())
	NewReportJobs(cache, time.Minute).RegisterJobs(scheduler)

	assert.Equal(t, []string{"prune_report_cache"}, scheduler.JobNames())

	scheduler.RunOnce(context.Background())
	assert.Equal(t, int32(1), cache.calls.Load())
}

func TestReportJobs_CancelledContext(t *testing.T) {
	cache := &fakeCache{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewReportJobs(cache, 0).PruneReportCache(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), cache.calls.Load())
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	cache := &fakeCache{}
	scheduler := NewScheduler(context.Background())
	NewReportJobs(cache, time.Hour).RegisterJobs(scheduler)

	scheduler.Start()
	assert.Eventually(t, func() bool { return cache.calls.Load() >= 1 }, time.Second, 10*time.Millisecond)
	scheduler.Stop()
}
