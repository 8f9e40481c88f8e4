package loadstate

import (
	"errors"
	"testing"
)

func TestLoaderResolve(t *testing.T) {
	l := NewLoader[string]()
	if s := l.Snapshot(); s.Status != StatusIdle {
		t.Fatalf("expected Idle before the first Begin, got %s", s.Status)
	}

	gen := l.Begin()
	if s := l.Snapshot(); s.Status != StatusLoading {
		t.Fatalf("expected Loading after Begin, got %s", s.Status)
	}
	if !l.Resolve(gen, "hello") {
		t.Fatal("expected Resolve with the current generation to apply")
	}
	s := l.Snapshot()
	if s.Status != StatusSuccess || s.Value != "hello" {
		t.Fatalf("expected Success(hello), got %s(%q)", s.Status, s.Value)
	}
}

func TestLoaderStaleResolveDiscarded(t *testing.T) {
	l := NewLoader[string]()
	genA := l.Begin()
	genB := l.Begin()

	if !l.Resolve(genB, "b") {
		t.Fatal("expected the latest generation to resolve")
	}
	if l.Resolve(genA, "a") {
		t.Fatal("expected the superseded generation to be discarded")
	}
	if s := l.Snapshot(); s.Value != "b" {
		t.Fatalf("expected the state to stay at b, got %q", s.Value)
	}
}

func TestLoaderOneTerminalPerGeneration(t *testing.T) {
	l := NewLoader[int]()
	gen := l.Begin()
	if !l.Resolve(gen, 1) {
		t.Fatal("expected the first completion to apply")
	}
	if l.Resolve(gen, 2) {
		t.Fatal("expected a second Resolve for the same generation to be a no-op")
	}
	if l.Reject(gen, errors.New("late failure")) {
		t.Fatal("expected a Reject after a terminal state to be a no-op")
	}
	if s := l.Snapshot(); s.Status != StatusSuccess || s.Value != 1 {
		t.Fatalf("expected Success(1) to stick, got %s(%d)", s.Status, s.Value)
	}
}

func TestLoaderCancel(t *testing.T) {
	l := NewLoader[int]()
	gen := l.Begin()
	l.Cancel()

	if l.Resolve(gen, 42) {
		t.Fatal("expected a completion after Cancel to be a no-op")
	}
	if l.Reject(gen, errors.New("boom")) {
		t.Fatal("expected a rejection after Cancel to be a no-op")
	}
	if s := l.Snapshot(); s.Status != StatusLoading {
		t.Fatalf("expected no visible transition after Cancel, got %s", s.Status)
	}
}

func TestLoaderBeginClearsCancel(t *testing.T) {
	l := NewLoader[int]()
	l.Begin()
	l.Cancel()

	gen := l.Begin()
	if !l.Resolve(gen, 7) {
		t.Fatal("expected a fresh generation after Cancel to resolve normally")
	}
}

func TestLoaderRejectMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "message from error", err: errors.New("connection refused"), want: "connection refused"},
		{name: "empty error message", err: errors.New(""), want: GenericFailureMessage},
		{name: "nil error", err: nil, want: GenericFailureMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader[int]()
			gen := l.Begin()
			if !l.Reject(gen, tt.err) {
				t.Fatal("expected Reject to apply")
			}
			if s := l.Snapshot(); s.Status != StatusFailure || s.Message != tt.want {
				t.Fatalf("expected Failure(%q), got %s(%q)", tt.want, s.Status, s.Message)
			}
		})
	}
}

func TestLoaderNotFound(t *testing.T) {
	l := NewLoader[*int]()
	gen := l.Begin()
	if !l.ResolveAbsent(gen) {
		t.Fatal("expected ResolveAbsent to apply")
	}
	s := l.Snapshot()
	if s.Status != StatusNotFound {
		t.Fatalf("expected NotFound, got %s", s.Status)
	}
	if s.Message != "" {
		t.Fatalf("expected no failure message for NotFound, got %q", s.Message)
	}
	if !s.Status.Terminal() {
		t.Fatal("expected NotFound to be terminal")
	}
}

func TestLoaderReentryDiscardsValue(t *testing.T) {
	l := NewLoader[string]()
	gen := l.Begin()
	l.Resolve(gen, "first")

	next := l.Begin()
	s := l.Snapshot()
	if s.Status != StatusLoading || s.Value != "" {
		t.Fatalf("expected Loading with a cleared value, got %s(%q)", s.Status, s.Value)
	}
	if next <= gen {
		t.Fatalf("expected the generation to increase, got %d then %d", gen, next)
	}
}
