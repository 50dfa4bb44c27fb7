package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// SyncJob reloads the spreadsheet on a cron schedule so every console
// converges on the same list.
type SyncJob struct {
	cron     *cron.Cron
	requests *RequestService
	timeout  time.Duration
}

func NewSyncJob(requests *RequestService, timeout time.Duration) *SyncJob {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &SyncJob{
		cron:     cron.New(),
		requests: requests,
		timeout:  timeout,
	}
}

// Schedule registers the reload. An empty schedule leaves the job idle.
func (j *SyncJob) Schedule(schedule string) error {
	if schedule == "" {
		return nil
	}
	if _, err := j.cron.AddFunc(schedule, j.Run); err != nil {
		return fmt.Errorf("invalid sync schedule %q: %w", schedule, err)
	}
	log.Printf("Spreadsheet sync scheduled: %s", schedule)
	return nil
}

func (j *SyncJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	state := j.requests.Load(ctx)
	if state.Connected != nil && !*state.Connected {
		log.Printf("Scheduled sync offline: %s", state.LastError)
	}
}

func (j *SyncJob) Start() {
	j.cron.Start()
}

// Stop waits for a running reload to finish.
func (j *SyncJob) Stop() {
	<-j.cron.Stop().Done()
}
