// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package engine runs the simulated send loop. A run only increments an
// internal counter; no external send of any kind is performed.
package engine

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/tombee/drybot/internal/log"
)

// Run is a handle to one dry-run execution.
type Run struct {
	// ID uniquely identifies the run.
	ID string

	startedAt time.Time
	sent      atomic.Int64
	cancel    context.CancelFunc
	done      chan struct{}
	result    chan int64
}

// Sent returns the current simulated send count.
func (r *Run) Sent() int64 {
	return r.sent.Load()
}

// StartedAt returns the run's start time.
func (r *Run) StartedAt() time.Time {
	return r.startedAt
}

// Done is closed when the run's loop has exited.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Result yields the final sent count exactly once after the loop exits.
func (r *Run) Result() <-chan int64 {
	return r.result
}

// Status is a point-in-time snapshot of the engine.
type Status struct {
	Running   bool
	RunID     string
	Sent      int64
	StartedAt time.Time
}

// Uptime returns whole seconds since the run started, or zero when no
// run has ever started.
func (s Status) Uptime() int64 {
	if s.StartedAt.IsZero() {
		return 0
	}
	return int64(time.Since(s.StartedAt).Seconds())
}

// Engine owns at most one active run at a time. Starting a new run
// cancels the previous one first; cancellation is requested without
// waiting, so the old loop may perform at most one more increment
// before it observes the signal.
type Engine struct {
	mu     sync.Mutex
	active *Run
	logger *slog.Logger
}

// New creates an engine.
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger: log.WithComponent(logger, "engine"),
	}
}

// Start launches a dry-run over the given message pool. limit bounds
// the simulated send count; zero means unbounded (until Stop). Any
// previously active run is cancelled first.
func (e *Engine) Start(ctx context.Context, pool []string, limit int) *Run {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != nil {
		e.active.cancel()
	}

	runCtx, cancel := context.WithCancel(ctx)
	r := &Run{
		ID:        uuid.NewString(),
		startedAt: time.Now(),
		cancel:    cancel,
		done:      make(chan struct{}),
		result:    make(chan int64, 1),
	}
	e.active = r

	runsStarted.Inc()
	engineRunning.Set(1)
	log.WithRunContext(e.logger, r.ID).Info("dry-run started",
		slog.Int("pool_size", len(pool)),
		slog.Int("limit", limit))

	go e.loop(runCtx, r, pool, limit)
	return r
}

// Stop requests cancellation of the active run. It returns false when
// no run is active. Stop does not wait for the loop to exit.
func (e *Engine) Stop() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return false
	}
	select {
	case <-e.active.done:
		return false
	default:
	}
	e.active.cancel()
	return true
}

// Status returns a snapshot of the active (or most recent) run.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return Status{}
	}
	r := e.active
	running := true
	select {
	case <-r.done:
		running = false
	default:
	}
	return Status{
		Running:   running,
		RunID:     r.ID,
		Sent:      r.sent.Load(),
		StartedAt: r.startedAt,
	}
}

// loop is the simulated send loop. Each iteration counts one send and
// advances a cursor through the pool with wrap-around; the cursor
// exists for cycling through messages and produces no output.
func (e *Engine) loop(ctx context.Context, r *Run, pool []string, limit int) {
	defer close(r.done)
	defer e.finish(r)

	var sent int64
	defer func() { r.result <- sent }()

	if len(pool) == 0 {
		return
	}

	i := 0
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		sent++
		r.sent.Store(sent)
		simulatedSends.Inc()
		i = (i + 1) % len(pool)

		if limit > 0 && sent >= int64(limit) {
			return
		}

		// No throttling; just give other goroutines a turn.
		runtime.Gosched()
	}
}

// finish clears the running gauge unless a newer run has taken over.
func (e *Engine) finish(r *Run) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == r {
		engineRunning.Set(0)
	}
	log.WithRunContext(e.logger, r.ID).Info("dry-run finished",
		slog.Int64("sent", r.sent.Load()))
}
