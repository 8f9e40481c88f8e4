package gateway

import (
	"context"
	"sync"

	"academy-core/internal/model"
)

// FakeGateway is a scripted CourseGateway for tests and offline demo runs.
// Results are captured at call entry, so a test can change the script
// between two calls and still control which result each call observes. Hold
// and Release let a test decide completion order.
type FakeGateway struct {
	mu          sync.Mutex
	courses     []model.Course
	details     map[string]model.CourseDetail
	listQueue   []listResult
	listErr     error
	detailErr   error
	listCalls   int
	detailCalls int
	lastQuery   ListQuery
	lastID      string
	holding     bool
	pending     []chan struct{}
}

type listResult struct {
	courses []model.Course
	err     error
}

// NewFakeGateway creates an empty fake.
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{details: make(map[string]model.CourseDetail)}
}

// SetCourses sets the default list result.
func (f *FakeGateway) SetCourses(courses []model.Course) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.courses = courses
}

// SetDetail registers a detail record, keyed by its ID.
func (f *FakeGateway) SetDetail(d model.CourseDetail) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.details[d.ID] = d
}

// EnqueueList scripts the result of one future ListCourses call. Queued
// results are consumed in FIFO order before the default list result.
func (f *FakeGateway) EnqueueList(courses []model.Course, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listQueue = append(f.listQueue, listResult{courses: courses, err: err})
}

// FailList makes every unscripted ListCourses call return err. Pass nil to
// clear.
func (f *FakeGateway) FailList(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listErr = err
}

// FailDetail makes every GetCourseByID call return err. Pass nil to clear.
func (f *FakeGateway) FailDetail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailErr = err
}

// ListCalls reports how many ListCourses calls were made.
func (f *FakeGateway) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

// DetailCalls reports how many GetCourseByID calls were made.
func (f *FakeGateway) DetailCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.detailCalls
}

// LastListQuery returns the query of the most recent ListCourses call.
func (f *FakeGateway) LastListQuery() ListQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastQuery
}

// LastDetailID returns the id of the most recent GetCourseByID call.
func (f *FakeGateway) LastDetailID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastID
}

// Hold makes subsequent calls block until released with Release.
func (f *FakeGateway) Hold() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.holding = true
}

// PendingCalls reports how many calls have entered while holding.
func (f *FakeGateway) PendingCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// Release unblocks the i-th held call in arrival order. Releasing an already
// released call is a no-op.
func (f *FakeGateway) Release(i int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.pending) || f.pending[i] == nil {
		return
	}
	close(f.pending[i])
	f.pending[i] = nil
}

// ReleaseAll unblocks every held call and stops holding new ones.
func (f *FakeGateway) ReleaseAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, ch := range f.pending {
		if ch != nil {
			close(ch)
			f.pending[i] = nil
		}
	}
	f.holding = false
}

// wait blocks the caller until its gate is released, the fake is not
// holding, or ctx ends.
func (f *FakeGateway) wait(ctx context.Context) error {
	f.mu.Lock()
	if !f.holding {
		f.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	f.pending = append(f.pending, ch)
	f.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ListCourses implements CourseGateway.
func (f *FakeGateway) ListCourses(ctx context.Context, q ListQuery) ([]model.Course, error) {
	f.mu.Lock()
	f.listCalls++
	f.lastQuery = q
	var res listResult
	if len(f.listQueue) > 0 {
		res = f.listQueue[0]
		f.listQueue = f.listQueue[1:]
	} else {
		res = listResult{courses: f.courses, err: f.listErr}
	}
	f.mu.Unlock()

	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if res.err != nil {
		return nil, res.err
	}
	out := make([]model.Course, len(res.courses))
	copy(out, res.courses)
	return out, nil
}

// GetCourseByID implements CourseGateway.
func (f *FakeGateway) GetCourseByID(ctx context.Context, id string) (*model.CourseDetail, error) {
	f.mu.Lock()
	f.detailCalls++
	f.lastID = id
	err := f.detailErr
	d, ok := f.details[id]
	f.mu.Unlock()

	if werr := f.wait(ctx); werr != nil {
		return nil, werr
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	out := d
	return &out, nil
}
