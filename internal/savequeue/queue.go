// Package savequeue debounces bursts of edits into a single trailing
// save per record. Free-text fields generate an edit per keystroke;
// writing every one of them through the store is wasteful, so saves
// are coalesced and only the latest snapshot for a record is written.
package savequeue

import (
	"context"
	"log"
	"sync"
	"time"

	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
)

// DefaultDelay mirrors the debounce window used for free-text edits
const DefaultDelay = 500 * time.Millisecond

// SaveTask persists the snapshot captured at enqueue time
type SaveTask func(ctx context.Context) error

type entry struct {
	seq     uint64
	task    SaveTask
	timer   *time.Timer
	running bool
	rerun   bool
}

// Queue coalesces saves per record id. The last enqueued task for an
// id always wins: a pending task is replaced outright, and a task that
// arrives while a save is in flight runs after it finishes.
type Queue struct {
	delay   time.Duration
	onError func(id string, err error)

	mu      sync.Mutex
	entries map[string]*entry
	closed  bool
	wg      sync.WaitGroup
}

// Config holds configuration for the save queue
type Config struct {
	// Delay is the debounce window. Defaults to DefaultDelay.
	Delay time.Duration

	// OnError receives failures from background saves. Defaults to a
	// log line.
	OnError func(id string, err error)
}

// New creates a new save queue
func New(cfg *Config) *Queue {
	q := &Queue{
		delay:   DefaultDelay,
		entries: make(map[string]*entry),
		onError: func(id string, err error) {
			log.Printf("savequeue: save for %q failed: %v", id, err)
		},
	}
	if cfg != nil {
		if cfg.Delay > 0 {
			q.delay = cfg.Delay
		}
		if cfg.OnError != nil {
			q.onError = cfg.OnError
		}
	}
	return q
}

// Enqueue schedules task to run after the debounce window. Enqueueing
// again for the same id before the window elapses replaces the pending
// task and restarts the window.
func (q *Queue) Enqueue(id string, task SaveTask) error {
	if id == "" {
		return apperr.InvalidArgument("record id is required")
	}
	if task == nil {
		return apperr.InvalidArgument("save task is required")
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return apperr.Unavailable("save queue is closed")
	}

	e := q.entries[id]
	if e == nil {
		e = &entry{}
		q.entries[id] = e
	}
	e.seq++
	e.task = task
	if e.timer != nil {
		e.timer.Stop()
	}
	seq := e.seq
	e.timer = time.AfterFunc(q.delay, func() { q.fire(id, seq) })
	return nil
}

// Cancel drops any pending save for id. An in-flight save cannot be
// recalled, but its result is discarded rather than rescheduled.
func (q *Queue) Cancel(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	e := q.entries[id]
	if e == nil {
		return
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	delete(q.entries, id)
}

// Pending reports whether a save is still queued or in flight for id
func (q *Queue) Pending(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.entries[id]
	return ok
}

// Flush runs every pending save immediately and waits for completion
func (q *Queue) Flush(ctx context.Context) error {
	q.mu.Lock()
	for id, e := range q.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
		if !e.running {
			e.running = true
			q.wg.Add(1)
			go q.runLoop(id)
		} else {
			e.rerun = true
		}
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return apperr.WrapWithCode(ctx.Err(), apperr.CodeUnavailable, "flush interrupted")
	}
}

// Close flushes pending saves and rejects further enqueues
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	return q.Flush(ctx)
}

func (q *Queue) fire(id string, seq uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	e := q.entries[id]
	if e == nil || e.seq != seq {
		// superseded by a newer edit, whose own timer is pending
		return
	}
	if e.running {
		// the in-flight save is stale; the runner loops once it lands
		e.rerun = true
		return
	}
	e.running = true
	q.wg.Add(1)
	go q.runLoop(id)
}

// runLoop executes the latest task for id, looping while newer tasks
// land mid-save so the final stored state is always the newest one.
func (q *Queue) runLoop(id string) {
	defer q.wg.Done()
	for {
		q.mu.Lock()
		e := q.entries[id]
		if e == nil {
			q.mu.Unlock()
			return
		}
		seq := e.seq
		task := e.task
		e.rerun = false
		q.mu.Unlock()

		if err := task(context.Background()); err != nil {
			q.onError(id, err)
		}

		q.mu.Lock()
		e = q.entries[id]
		if e == nil {
			q.mu.Unlock()
			return
		}
		if e.seq == seq {
			delete(q.entries, id)
			q.mu.Unlock()
			return
		}
		if e.rerun {
			q.mu.Unlock()
			continue
		}
		// a newer task exists but its timer has not fired yet; hand
		// the entry back so the timer can claim it
		e.running = false
		q.mu.Unlock()
		return
	}
}
