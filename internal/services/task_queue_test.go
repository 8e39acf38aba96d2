package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestTaskTypeContactNotify_Constant(t *testing.T) {
	if TaskTypeContactNotify != "contact:notify" {
		t.Errorf("TaskTypeContactNotify = %q, expected %q", TaskTypeContactNotify, "contact:notify")
	}
}

func TestSyncQueue_New(t *testing.T) {
	queue := NewSyncQueue()
	if queue == nil {
		t.Error("NewSyncQueue should not return nil")
	}
}

func TestSyncQueue_IsAsync(t *testing.T) {
	queue := NewSyncQueue()
	if queue.IsAsync() {
		t.Error("SyncQueue.IsAsync() should return false")
	}
}

func TestSyncQueue_Close(t *testing.T) {
	queue := NewSyncQueue()
	if err := queue.Close(); err != nil {
		t.Errorf("SyncQueue.Close() should return nil, got %v", err)
	}
}

func TestSyncQueue_EnqueueWithoutProcessor(t *testing.T) {
	queue := NewSyncQueue()
	task := &ContactTask{MessageID: 1}

	if err := queue.Enqueue(task); err != nil {
		t.Errorf("Enqueue without processor should not error, got %v", err)
	}
}

func TestSyncQueue_EnqueueInvokesProcessor(t *testing.T) {
	queue := NewSyncQueue()

	var called int32
	done := make(chan struct{})
	queue.SetProcessor(func(ctx context.Context, task *ContactTask) error {
		if task.MessageID != 7 {
			t.Errorf("MessageID = %d, expected 7", task.MessageID)
		}
		atomic.StoreInt32(&called, 1)
		close(done)
		return nil
	})

	if err := queue.Enqueue(&ContactTask{MessageID: 7}); err != nil {
		t.Fatalf("Enqueue returned error: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("processor was not invoked")
	}

	if atomic.LoadInt32(&called) != 1 {
		t.Error("processor should have been called")
	}
}

func TestAsyncQueue_IsAsync(t *testing.T) {
	queue := &AsyncQueue{}
	if !queue.IsAsync() {
		t.Error("AsyncQueue.IsAsync() should return true")
	}
}
