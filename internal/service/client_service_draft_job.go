package service

import (
	"context"
	"sync"
	"time"
)

const defaultDraftFlushInterval = time.Second

type clientDraftJob struct {
	draftService ClientDraftService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientDraftJob creates a clientDraftJob that calls draftService.Flush
// on a ticker. The job is idle until Start is called.
func NewClientDraftJob(draftService ClientDraftService) ClientDraftJob {
	return &clientDraftJob{draftService: draftService}
}

func (j *clientDraftJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultDraftFlushInterval
	}

	j.stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.draftService.Flush(jobCtx)
			}
		}
	}()
}

// Stop is safe to call when the job is not running.
func (j *clientDraftJob) Stop() {
	j.stop()
	_ = j.draftService.Flush(context.Background())
}

func (j *clientDraftJob) stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
