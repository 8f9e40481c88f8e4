package controller

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"academy-core/internal/gateway"
	"academy-core/internal/loadstate"
	"academy-core/internal/model"
	"academy-core/internal/notify"

	"github.com/rs/zerolog"
)

// WeeksPerPhase is the fixed number of study weeks in one syllabus phase.
const WeeksPerPhase = 4

// fallbackPhaseCount stands in for the phase count in the synthesized spec
// triple when a course carries no syllabus.
const fallbackPhaseCount = 6

// DetailController owns one fetched course-detail record and the syllabus
// phase selection for one detail screen instance.
type DetailController struct {
	mu     sync.Mutex
	gw     gateway.CourseGateway
	loader *loadstate.Loader[*model.CourseDetail]
	hub    *notify.Hub
	logger zerolog.Logger

	nav    PhaseNavigator
	lastID string
	loaded bool

	memoValid    bool
	memoGen      uint64
	memoStatus   loadstate.Status
	memoDiscount int
	memoWeeks    int
	memoSpecs    []model.TechnicalSpec
	memoParts    []string
}

// NewDetailController creates a DetailController fetching through gw.
func NewDetailController(gw gateway.CourseGateway, logger zerolog.Logger) *DetailController {
	return &DetailController{
		gw:     gw,
		loader: loadstate.NewLoader[*model.CourseDetail](),
		hub:    notify.NewHub(),
		logger: logger.With().Str("component", "detail_controller").Logger(),
	}
}

// Load fetches the detail record for id under a fresh generation. A blank id
// fails fast locally without touching the gateway. Every Load resets the
// phase selection to the first phase and supersedes any in-flight fetch.
func (c *DetailController) Load(ctx context.Context, id string) {
	c.mu.Lock()
	gen := c.loader.Begin()
	c.lastID = id
	c.loaded = true
	c.nav.Reset(0)
	c.memoValid = false
	if strings.TrimSpace(id) == "" {
		c.loader.Reject(gen, errors.New("Course ID is required"))
		c.mu.Unlock()
		c.hub.Notify()
		return
	}
	c.mu.Unlock()
	c.hub.Notify()

	go func() {
		detail, err := c.gw.GetCourseByID(ctx, id)
		c.complete(gen, detail, err)
	}()
}

// Retry replays the most recent Load. A Retry before any Load is a no-op.
func (c *DetailController) Retry(ctx context.Context) {
	c.mu.Lock()
	if !c.loaded {
		c.mu.Unlock()
		return
	}
	id := c.lastID
	c.mu.Unlock()
	c.Load(ctx, id)
}

func (c *DetailController) complete(gen uint64, detail *model.CourseDetail, err error) {
	c.mu.Lock()
	var applied bool
	switch {
	case err != nil:
		applied = c.loader.Reject(gen, err)
	case detail == nil:
		// Absence is a distinct terminal, not a failure.
		applied = c.loader.ResolveAbsent(gen)
	default:
		applied = c.loader.Resolve(gen, detail)
		if applied {
			c.nav.Reset(len(detail.SyllabusPhases))
		}
	}
	if applied {
		c.memoValid = false
	}
	c.mu.Unlock()

	if !applied {
		c.logger.Debug().Uint64("generation", gen).Msg("Discarding stale course detail result")
		return
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("Course detail fetch failed")
	}
	c.hub.Notify()
}

// Snapshot returns the current load state.
func (c *DetailController) Snapshot() loadstate.Snapshot[*model.CourseDetail] {
	return c.loader.Snapshot()
}

// refreshMemo recomputes the derived projections when the underlying record
// changed. Callers must hold c.mu.
func (c *DetailController) refreshMemo() {
	snap := c.loader.Snapshot()
	if c.memoValid && c.memoGen == snap.Generation && c.memoStatus == snap.Status {
		return
	}

	c.memoGen = snap.Generation
	c.memoStatus = snap.Status
	c.memoValid = true

	d := snap.Value
	if snap.Status != loadstate.StatusSuccess || d == nil {
		c.memoDiscount = 0
		c.memoWeeks = 0
		c.memoSpecs = []model.TechnicalSpec{}
		c.memoParts = []string{}
		return
	}

	c.memoDiscount = discountPercent(d.OriginalPrice, d.DiscountedPrice)
	c.memoWeeks = len(d.SyllabusPhases) * WeeksPerPhase
	c.memoParts = strings.Fields(d.Name)
	if len(d.TechnicalSpecs) > 0 {
		c.memoSpecs = d.TechnicalSpecs
	} else {
		c.memoSpecs = fallbackSpecs(d)
	}
}

// discountPercent rounds the saving to a whole percent. A zero or absent
// original price yields 0 rather than a division by zero, and the result is
// never negative.
func discountPercent(original, discounted float64) int {
	if original <= 0 {
		return 0
	}
	p := math.Round((original - discounted) / original * 100)
	if p < 0 {
		return 0
	}
	return int(p)
}

// fallbackSpecs synthesizes the deterministic spec triple shown when a
// record carries no technical specs of its own: duration, method, language,
// in that fixed order.
func fallbackSpecs(d *model.CourseDetail) []model.TechnicalSpec {
	months := len(d.SyllabusPhases)
	if months == 0 {
		months = fallbackPhaseCount
	}
	return []model.TechnicalSpec{
		{Label: "Duration", Value: fmt.Sprintf("%d Months", months), Icon: "duration"},
		{Label: "Method", Value: string(d.Status), Icon: "method"},
		{Label: "Language", Value: d.Language, Icon: "language"},
	}
}

// DiscountPercent returns the rounded discount of the loaded course, 0 when
// nothing is loaded.
func (c *DetailController) DiscountPercent() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshMemo()
	return c.memoDiscount
}

// TotalWeeks returns the course length in weeks, phases times WeeksPerPhase.
func (c *DetailController) TotalWeeks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshMemo()
	return c.memoWeeks
}

// TechnicalSpecs returns the record's own spec list, or the synthesized
// fallback triple when the record carries none.
func (c *DetailController) TechnicalSpecs() []model.TechnicalSpec {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshMemo()
	return c.memoSpecs
}

// CourseNameParts returns the display name split on whitespace, order
// preserved. The view styles each word separately.
func (c *DetailController) CourseNameParts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshMemo()
	return c.memoParts
}

// Phases returns the syllabus phases of the loaded course, empty when
// nothing is loaded.
func (c *DetailController) Phases() []model.SyllabusPhase {
	snap := c.loader.Snapshot()
	if snap.Status != loadstate.StatusSuccess || snap.Value == nil {
		return []model.SyllabusPhase{}
	}
	return snap.Value.SyllabusPhases
}

// ActivePhaseIndex returns the active syllabus phase index.
func (c *DetailController) ActivePhaseIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nav.ActiveIndex()
}

// ActivePhase returns the active phase, nil when the course has none.
func (c *DetailController) ActivePhase() *model.SyllabusPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.loader.Snapshot()
	if snap.Status != loadstate.StatusSuccess || snap.Value == nil {
		return nil
	}
	phases := snap.Value.SyllabusPhases
	idx := c.nav.ActiveIndex()
	if idx < 0 || idx >= len(phases) {
		return nil
	}
	return &phases[idx]
}

// SelectPhase activates phase i and reports whether it did. Out-of-range
// requests are silent no-ops and never trigger a fetch.
func (c *DetailController) SelectPhase(i int) bool {
	c.mu.Lock()
	applied := c.nav.Select(i)
	c.mu.Unlock()
	if applied {
		c.hub.Notify()
	}
	return applied
}

// Subscribe registers a re-render callback and returns its token.
func (c *DetailController) Subscribe(fn func()) string {
	return c.hub.Subscribe(fn)
}

// Unsubscribe removes a re-render callback.
func (c *DetailController) Unsubscribe(token string) {
	c.hub.Unsubscribe(token)
}

// Close tears the controller down. Pending completions become silent no-ops
// and no further notifications are delivered.
func (c *DetailController) Close() {
	c.loader.Cancel()
	c.hub.Close()
}
