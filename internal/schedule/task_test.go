package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestEveryRunsUntilFalse(t *testing.T) {
	var calls atomic.Int32
	task := Every(context.Background(), time.Millisecond, func() bool {
		return calls.Add(1) < 3
	})

	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("task did not finish")
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls: got %d, want 3", got)
	}
	task.Stop()
}

func TestEveryStop(t *testing.T) {
	var calls atomic.Int32
	task := Every(context.Background(), time.Millisecond, func() bool {
		calls.Add(1)
		return true
	})

	time.Sleep(20 * time.Millisecond)
	task.Stop()
	after := calls.Load()
	time.Sleep(20 * time.Millisecond)

	if calls.Load() != after {
		t.Errorf("callback ran after Stop returned")
	}
	task.Stop()
}

func TestAfterCancelledByContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var fired atomic.Bool
	task := After(ctx, time.Hour, func() { fired.Store(true) })

	cancel()
	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("task did not observe context cancellation")
	}
	if fired.Load() {
		t.Error("callback fired after cancellation")
	}
}

func TestAfterFires(t *testing.T) {
	fired := make(chan struct{})
	task := After(context.Background(), time.Millisecond, func() { close(fired) })
	defer task.Stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
}

func TestGroupStop(t *testing.T) {
	g := NewGroup()
	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		g.Add(Every(context.Background(), time.Millisecond, func() bool {
			calls.Add(1)
			return true
		}))
	}

	time.Sleep(10 * time.Millisecond)
	g.Stop()
	after := calls.Load()
	time.Sleep(10 * time.Millisecond)
	if calls.Load() != after {
		t.Error("group task ran after Stop")
	}

	late := After(context.Background(), time.Hour, func() {})
	g.Add(late)
	select {
	case <-late.Done():
	default:
		t.Error("task added to a stopped group should be stopped")
	}
}
