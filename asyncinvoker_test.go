package vterm

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestAsyncInvokerRunsFunctionsInOrder(t *testing.T) {
	inv := NewAsyncInvoker(4)

	var order []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		i := i
		inv.Invoke(func() {
			order = append(order, i)
			if i == 4 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for queued functions to run")
	}

	inv.Close()
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want 0..4 in order", order)
		}
	}
}

func TestAsyncInvokerNilFuncIsNoop(t *testing.T) {
	inv := NewAsyncInvoker(1)
	inv.Invoke(nil)
	inv.Close() // must not hang or panic
}

func TestAsyncInvokerCloseWaitsForDrain(t *testing.T) {
	inv := NewAsyncInvoker(8)
	var n int32
	for i := 0; i < 8; i++ {
		inv.Invoke(func() { atomic.AddInt32(&n, 1) })
	}
	inv.Close()
	if got := atomic.LoadInt32(&n); got != 8 {
		t.Fatalf("functions run = %d, want 8", got)
	}
}
