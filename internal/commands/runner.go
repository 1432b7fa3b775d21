package commands

import (
	"context"
	"fmt"
	"sync"
	"time"

	"awsranges/internal/log"
)

// RestartableRunner manages a goroutine that is restarted on crash, so a
// failing background component does not take the server down with it.
type RestartableRunner struct {
	name           string
	runFunc        func(ctx context.Context) error
	mu             sync.Mutex
	running        bool
	cancel         context.CancelFunc
	done           chan struct{}
	restartBackoff time.Duration
	maxBackoff     time.Duration
}

// NewRestartableRunner creates a new restartable runner.
func NewRestartableRunner(name string, runFunc func(ctx context.Context) error) *RestartableRunner {
	return &RestartableRunner{
		name:           name,
		runFunc:        runFunc,
		restartBackoff: 1 * time.Second,
		maxBackoff:     30 * time.Second,
	}
}

// Start starts the runner in a goroutine.
func (r *RestartableRunner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("%s is already running", r.name)
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.running = true

	go r.runLoop(runCtx)

	return nil
}

// Stop stops the runner and waits for it to finish.
func (r *RestartableRunner) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	cancel := r.cancel
	done := r.done
	r.mu.Unlock()

	cancel()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		return fmt.Errorf("%s: timeout waiting for stop", r.name)
	}

	r.mu.Lock()
	r.running = false
	r.mu.Unlock()

	return nil
}

// runLoop runs the function with crash recovery and exponential backoff.
func (r *RestartableRunner) runLoop(ctx context.Context) {
	defer close(r.done)

	backoff := r.restartBackoff

	for {
		select {
		case <-ctx.Done():
			log.Infof("%s: context cancelled, stopping", r.name)
			return
		default:
		}

		err := r.runWithRecovery(ctx)
		if err == nil {
			log.Infof("%s: exited cleanly", r.name)
			return
		}

		select {
		case <-ctx.Done():
			return
		default:
		}

		log.Errorf("%s: crashed with error: %v. Restarting in %v", r.name, err, backoff)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > r.maxBackoff {
			backoff = r.maxBackoff
		}
	}
}

// runWithRecovery runs the function and recovers from panics.
func (r *RestartableRunner) runWithRecovery(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic: %v", recovered)
		}
	}()

	return r.runFunc(ctx)
}
