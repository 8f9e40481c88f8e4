package notify

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestHubSubscribeNotifyUnsubscribe(t *testing.T) {
	h := NewHub()

	var first, second int
	tokenA := h.Subscribe(func() { first++ })
	tokenB := h.Subscribe(func() { second++ })
	if h.Len() != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", h.Len())
	}

	h.Notify()
	if first != 1 || second != 1 {
		t.Fatalf("expected both subscribers notified once, got %d and %d", first, second)
	}

	h.Unsubscribe(tokenA)
	h.Notify()
	if first != 1 || second != 2 {
		t.Fatalf("expected only the remaining subscriber notified, got %d and %d", first, second)
	}

	h.Unsubscribe(tokenB)
	h.Unsubscribe("unknown-token")
	h.Notify()
	if first != 1 || second != 2 {
		t.Fatal("expected no delivery after unsubscribing everyone")
	}
}

func TestHubNilSubscriber(t *testing.T) {
	h := NewHub()
	h.Subscribe(nil)
	if h.Len() != 0 {
		t.Fatalf("expected a nil callback to be ignored, got %d subscriptions", h.Len())
	}
	h.Notify()
}

func TestHubClose(t *testing.T) {
	h := NewHub()
	var calls int
	h.Subscribe(func() { calls++ })

	h.Close()
	h.Notify()
	if calls != 0 {
		t.Fatalf("expected no delivery after Close, got %d", calls)
	}

	h.Subscribe(func() { calls++ })
	h.Notify()
	if calls != 0 {
		t.Fatalf("expected Subscribe after Close to be a no-op, got %d", calls)
	}
}

func TestHubUnsubscribeDuringNotify(t *testing.T) {
	h := NewHub()
	var token string
	var calls int
	token = h.Subscribe(func() {
		calls++
		h.Unsubscribe(token)
	})

	h.Notify()
	h.Notify()
	if calls != 1 {
		t.Fatalf("expected a self-unsubscribing callback to fire once, got %d", calls)
	}
}

func TestHubConcurrentNotify(t *testing.T) {
	h := NewHub()
	var calls atomic.Int64
	h.Subscribe(func() { calls.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Notify()
			}
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 1000 {
		t.Fatalf("expected 1000 deliveries, got %d", got)
	}
}
