// Package schedule runs cancellable timed callbacks. Every Task has an owner that must
// Stop it on teardown; stopping the parent context has the same effect.
package schedule

import (
	"context"
	"sync"
	"time"
)

// Task is a handle to a scheduled callback.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Every calls fn every interval until fn returns false, the task is stopped, or ctx is
// cancelled. fn is never called concurrently with itself.
func Every(ctx context.Context, interval time.Duration, fn func() bool) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer cancel()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !fn() {
					return
				}
			}
		}
	}()

	return t
}

// After calls fn once after delay unless the task is stopped or ctx is cancelled first.
func After(ctx context.Context, delay time.Duration, fn func()) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer cancel()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
		case <-timer.C:
			fn()
		}
	}()

	return t
}

// Stop cancels the task and blocks until its goroutine has exited. It is safe to call
// more than once. Stop must not be called from inside the task's own callback.
func (t *Task) Stop() {
	t.cancel()
	<-t.done
}

// Done is closed once the task has finished, whether it was stopped or ran out.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Group owns a set of tasks that share a lifetime.
type Group struct {
	mu      *sync.Mutex
	tasks   []*Task
	stopped bool
}

func NewGroup() *Group {
	return &Group{mu: &sync.Mutex{}}
}

// Add hands ownership of t to the group. If the group is already stopped, t is
// stopped immediately.
func (g *Group) Add(t *Task) {
	g.mu.Lock()
	if g.stopped {
		g.mu.Unlock()
		t.Stop()
		return
	}
	g.tasks = append(g.tasks, t)
	g.mu.Unlock()
}

// Stop stops every task in the group. Tasks added afterwards are stopped on Add.
func (g *Group) Stop() {
	g.mu.Lock()
	tasks := g.tasks
	g.tasks = nil
	g.stopped = true
	g.mu.Unlock()

	for _, t := range tasks {
		t.Stop()
	}
}
