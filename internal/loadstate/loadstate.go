// Package loadstate models the lifecycle of one in-flight remote fetch:
// Idle -> Loading -> Success | Failure | NotFound.
package loadstate

import "sync"

// GenericFailureMessage is the fallback copy shown when a failure carries no
// message of its own.
const GenericFailureMessage = "Something went wrong. Please try again."

// Status is the phase of the async load lifecycle.
type Status string

const (
	StatusIdle     Status = "Idle"
	StatusLoading  Status = "Loading"
	StatusSuccess  Status = "Success"
	StatusFailure  Status = "Failure"
	StatusNotFound Status = "NotFound"
)

// Terminal reports whether the lifecycle has settled. A terminal state holds
// until the next Begin.
func (s Status) Terminal() bool {
	switch s {
	case StatusSuccess, StatusFailure, StatusNotFound:
		return true
	}
	return false
}

// Snapshot is an immutable read of a Loader. Value is meaningful only in the
// Success state; Message only in the Failure state.
type Snapshot[T any] struct {
	Status     Status
	Value      T
	Message    string
	Generation uint64
}

// Loader is a generation-guarded async load state machine. Each Begin bumps
// the generation; completions carrying a superseded generation are discarded
// silently. That guard is what makes rapid re-loads safe without
// transport-level cancellation: only the newest fetch's completion ever
// mutates visible state.
type Loader[T any] struct {
	mu       sync.Mutex
	status   Status
	value    T
	message  string
	gen      uint64
	canceled bool
}

// NewLoader returns a Loader in the Idle state.
func NewLoader[T any]() *Loader[T] {
	return &Loader[T]{status: StatusIdle}
}

// Begin transitions to Loading, discards the previous value and message, and
// returns the generation token the eventual completion must present.
func (l *Loader[T]) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.status = StatusLoading
	var zero T
	l.value = zero
	l.message = ""
	l.canceled = false
	return l.gen
}

// applies reports whether a completion for generation gen may transition the
// loader. Callers must hold l.mu. The status check enforces at most one
// terminal transition per generation.
func (l *Loader[T]) applies(gen uint64) bool {
	return !l.canceled && gen == l.gen && l.status == StatusLoading
}

// Resolve transitions to Success(value) and reports whether the transition
// applied. Stale or canceled generations are discarded.
func (l *Loader[T]) Resolve(gen uint64, value T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.applies(gen) {
		return false
	}
	l.status = StatusSuccess
	l.value = value
	return true
}

// ResolveAbsent transitions to NotFound: the fetch succeeded but no record
// exists. Distinct from Failure so the view can render "not found" instead of
// an error banner.
func (l *Loader[T]) ResolveAbsent(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.applies(gen) {
		return false
	}
	l.status = StatusNotFound
	return true
}

// Reject transitions to Failure with a human-readable message derived from
// err, falling back to GenericFailureMessage when err is nil or carries no
// text.
func (l *Loader[T]) Reject(gen uint64, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.applies(gen) {
		return false
	}
	l.status = StatusFailure
	l.message = GenericFailureMessage
	if err != nil && err.Error() != "" {
		l.message = err.Error()
	}
	return true
}

// Cancel abandons the in-flight generation on consumer teardown. Any late
// completion for it is a silent no-op; Cancel itself performs no visible
// transition.
func (l *Loader[T]) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.canceled = true
}

// Snapshot returns an immutable read of the current state.
func (l *Loader[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot[T]{
		Status:     l.status,
		Value:      l.value,
		Message:    l.message,
		Generation: l.gen,
	}
}
