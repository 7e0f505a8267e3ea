// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import (
	"context"
	"sync"
	"time"
)

// DefaultAutosaveDelay is the inactivity window after the last mutation
// before the document is saved.
const DefaultAutosaveDelay = 5 * time.Second

// autosaver is a restartable debounce loop. Arm and Disarm only record the
// wanted state and wake the loop, so they never block, even while a save is
// running on the loop goroutine. Requests made during a save are coalesced
// and applied once it returns.
type autosaver struct {
	delay time.Duration
	save  func(ctx context.Context)

	wake chan struct{}

	mu     sync.Mutex
	armed  bool
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newAutosaver(delay time.Duration, save func(ctx context.Context)) *autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &autosaver{
		delay: delay,
		save:  save,
		wake:  make(chan struct{}, 1),
	}
}

// Start stops any previous loop and launches a new one bound to ctx.
func (a *autosaver) Start(ctx context.Context) {
	a.Stop()

	a.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.wg.Add(1)
	a.mu.Unlock()

	go a.run(loopCtx)
}

// Stop cancels the loop and waits until it has exited. A save already in
// progress is allowed to finish. Safe to call when not running.
func (a *autosaver) Stop() {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.armed = false
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	a.wg.Wait()
}

// Arm (re)starts the debounce window.
func (a *autosaver) Arm() { a.set(true) }

// Disarm drops a pending save.
func (a *autosaver) Disarm() { a.set(false) }

func (a *autosaver) set(armed bool) {
	a.mu.Lock()
	a.armed = armed
	a.mu.Unlock()

	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// take reports whether a save is still wanted and clears the request.
func (a *autosaver) take() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	armed := a.armed
	a.armed = false
	return armed
}

func (a *autosaver) run(ctx context.Context) {
	defer a.wg.Done()

	timer := time.NewTimer(a.delay)
	timer.Stop()
	defer timer.Stop()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-a.wake:
			a.mu.Lock()
			armed := a.armed
			a.mu.Unlock()
			if armed {
				timer.Reset(a.delay)
				fire = timer.C
			} else {
				timer.Stop()
				fire = nil
			}
		case <-fire:
			fire = nil
			if a.take() {
				a.save(context.WithoutCancel(ctx))
			}
		}
	}
}
