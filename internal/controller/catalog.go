// Package controller owns the view state of the catalog and detail screens.
// Views read snapshots and projections, dispatch intents (load, retry,
// filter change, phase change) and subscribe for re-render signals; they
// never mutate fetched data.
package controller

import (
	"context"
	"sync"

	"academy-core/internal/gateway"
	"academy-core/internal/loadstate"
	"academy-core/internal/model"
	"academy-core/internal/notify"

	"github.com/rs/zerolog"
)

// CatalogController owns the fetched course list and the active category
// filter for one catalog screen instance.
type CatalogController struct {
	mu     sync.Mutex
	gw     gateway.CourseGateway
	loader *loadstate.Loader[[]model.Course]
	hub    *notify.Hub
	logger zerolog.Logger

	filter    model.StatusFilter
	lastQuery gateway.ListQuery
	loaded    bool

	memo       []model.Course
	memoGen    uint64
	memoStatus loadstate.Status
	memoFilter model.StatusFilter
	memoValid  bool
}

// NewCatalogController creates a CatalogController fetching through gw.
func NewCatalogController(gw gateway.CourseGateway, logger zerolog.Logger) *CatalogController {
	return &CatalogController{
		gw:     gw,
		loader: loadstate.NewLoader[[]model.Course](),
		hub:    notify.NewHub(),
		logger: logger.With().Str("component", "catalog_controller").Logger(),
		filter: model.FilterAll,
	}
}

// Load issues one list fetch under a fresh generation. The query is held
// opaquely and replayed verbatim by Retry. There is no automatic re-fetch on
// failure.
func (c *CatalogController) Load(ctx context.Context, q gateway.ListQuery) {
	c.mu.Lock()
	gen := c.loader.Begin()
	c.lastQuery = q
	c.loaded = true
	c.memoValid = false
	c.mu.Unlock()
	c.hub.Notify()

	go func() {
		courses, err := c.gw.ListCourses(ctx, q)
		c.complete(gen, courses, err)
	}()
}

// Retry replays the most recent Load. A Retry before any Load is a no-op.
func (c *CatalogController) Retry(ctx context.Context) {
	c.mu.Lock()
	if !c.loaded {
		c.mu.Unlock()
		return
	}
	q := c.lastQuery
	c.mu.Unlock()
	c.Load(ctx, q)
}

func (c *CatalogController) complete(gen uint64, courses []model.Course, err error) {
	c.mu.Lock()
	var applied bool
	if err != nil {
		applied = c.loader.Reject(gen, err)
	} else {
		applied = c.loader.Resolve(gen, courses)
	}
	if applied {
		c.memoValid = false
	}
	c.mu.Unlock()

	if !applied {
		c.logger.Debug().Uint64("generation", gen).Msg("Discarding stale course list result")
		return
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("Course list fetch failed")
	}
	c.hub.Notify()
}

// SetFilter updates the category filter. No re-fetch happens; the change
// takes effect on the next FilteredCourses read. Unknown values are ignored.
func (c *CatalogController) SetFilter(f model.StatusFilter) {
	if !f.Valid() {
		c.logger.Debug().Str("filter", string(f)).Msg("Ignoring unknown filter value")
		return
	}
	c.mu.Lock()
	changed := c.filter != f
	c.filter = f
	c.mu.Unlock()
	if changed {
		c.hub.Notify()
	}
}

// Filter returns the active category filter.
func (c *CatalogController) Filter() model.StatusFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Snapshot returns the current load state.
func (c *CatalogController) Snapshot() loadstate.Snapshot[[]model.Course] {
	return c.loader.Snapshot()
}

// FilteredCourses returns the loaded list narrowed to the active filter,
// preserving source order. The result is memoized on (generation, status,
// filter) and recomputed only when one of them changes. When nothing is
// loaded it returns an empty slice, never an error.
func (c *CatalogController) FilteredCourses() []model.Course {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.loader.Snapshot()
	if c.memoValid && c.memoGen == snap.Generation && c.memoStatus == snap.Status && c.memoFilter == c.filter {
		return c.memo
	}

	var out []model.Course
	switch {
	case snap.Status != loadstate.StatusSuccess:
		out = []model.Course{}
	case c.filter == model.FilterAll:
		out = snap.Value
	default:
		out = make([]model.Course, 0, len(snap.Value))
		for _, course := range snap.Value {
			if c.filter.Matches(course.Status) {
				out = append(out, course)
			}
		}
	}

	c.memo = out
	c.memoGen = snap.Generation
	c.memoStatus = snap.Status
	c.memoFilter = c.filter
	c.memoValid = true
	return out
}

// Subscribe registers a re-render callback and returns its token.
func (c *CatalogController) Subscribe(fn func()) string {
	return c.hub.Subscribe(fn)
}

// Unsubscribe removes a re-render callback.
func (c *CatalogController) Unsubscribe(token string) {
	c.hub.Unsubscribe(token)
}

// Close tears the controller down. Pending completions become silent no-ops
// and no further notifications are delivered.
func (c *CatalogController) Close() {
	c.loader.Cancel()
	c.hub.Close()
}
