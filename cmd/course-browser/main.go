// Command course-browser is a terminal reference driver playing the role of
// the presentation layer: it subscribes to controller state, dispatches the
// user intents (load, retry, filter change, phase change) and prints the
// projections. It doubles as a manual smoke test of the whole core.
package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"academy-core/internal/cache"
	"academy-core/internal/config"
	"academy-core/internal/controller"
	"academy-core/internal/fixture"
	"academy-core/internal/gateway"
	"academy-core/internal/loadstate"
	"academy-core/internal/logger"
	"academy-core/internal/model"

	"github.com/joho/godotenv"
)

func main() {
	courseID := flag.String("course", "", "Course ID to open in the detail view (default: first filtered course)")
	filterFlag := flag.String("filter", "All", "Catalog filter: All|Online|Offline|Hybrid")
	offline := flag.Bool("offline", false, "Run against the canned catalog instead of the HTTP API")
	retryOnce := flag.Bool("retry", false, "Retry once when the course list fails to load")
	flag.Parse()

	logger := logger.New()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("Warning: no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Msgf("Error loading config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Build the gateway chain: a scripted fake offline, the cached HTTP
	// client otherwise.
	var gw gateway.CourseGateway
	if *offline {
		fake := gateway.NewFakeGateway()
		fake.SetCourses(fixture.Summaries())
		for _, d := range fixture.Catalog() {
			fake.SetDetail(d)
		}
		gw = fake
	} else {
		gw = gateway.NewCachedGateway(
			gateway.NewHTTPGateway(cfg, logger),
			cache.New(cfg.CacheMaxItems),
			time.Duration(cfg.CacheTTLSec)*time.Second,
		)
	}

	// Catalog screen.
	catalog := controller.NewCatalogController(gw, logger)
	defer catalog.Close()

	changed := make(chan struct{}, 1)
	token := catalog.Subscribe(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer catalog.Unsubscribe(token)

	catalog.Load(ctx, gateway.ListQuery{Sort: "-createdAt", Limit: 6})
	if !await(ctx, changed, func() bool { return catalog.Snapshot().Status.Terminal() }) {
		logger.Fatal().Msg("Timed out waiting for the course list")
	}
	if s := catalog.Snapshot(); s.Status == loadstate.StatusFailure && *retryOnce {
		logger.Warn().Str("error", s.Message).Msg("Course list failed, retrying once")
		catalog.Retry(ctx)
		if !await(ctx, changed, func() bool { return catalog.Snapshot().Status.Terminal() }) {
			logger.Fatal().Msg("Timed out waiting for the retried course list")
		}
	}
	snap := catalog.Snapshot()
	if snap.Status != loadstate.StatusSuccess {
		logger.Fatal().Str("error", snap.Message).Msg("Could not load the course list")
	}

	if f := model.StatusFilter(*filterFlag); f.Valid() {
		catalog.SetFilter(f)
	} else {
		logger.Warn().Str("filter", *filterFlag).Msg("Unknown filter, showing all courses")
	}

	courses := catalog.FilteredCourses()
	fmt.Printf("Courses (%s): %d\n", catalog.Filter(), len(courses))
	for _, c := range courses {
		fmt.Printf("  %-30s %-8s $%.0f (was $%.0f)\n", c.Name, c.Status, c.DiscountedPrice, c.OriginalPrice)
	}

	// Detail screen.
	id := *courseID
	if id == "" && len(courses) > 0 {
		id = courses[0].ID
	}
	if id == "" {
		return
	}

	detail := controller.NewDetailController(gw, logger)
	defer detail.Close()

	detailChanged := make(chan struct{}, 1)
	detailToken := detail.Subscribe(func() {
		select {
		case detailChanged <- struct{}{}:
		default:
		}
	})
	defer detail.Unsubscribe(detailToken)

	detail.Load(ctx, id)
	if !await(ctx, detailChanged, func() bool { return detail.Snapshot().Status.Terminal() }) {
		logger.Fatal().Msg("Timed out waiting for the course detail")
	}
	dsnap := detail.Snapshot()
	switch dsnap.Status {
	case loadstate.StatusNotFound:
		fmt.Println("course not found")
		return
	case loadstate.StatusFailure:
		logger.Fatal().Str("error", dsnap.Message).Msg("Could not load the course")
	}

	fmt.Printf("\n%s\n", strings.Join(detail.CourseNameParts(), " "))
	fmt.Printf("  %d%% off, %d weeks total\n", detail.DiscountPercent(), detail.TotalWeeks())
	for _, spec := range detail.TechnicalSpecs() {
		fmt.Printf("  %s: %s\n", spec.Label, spec.Value)
	}

	// Walk the syllabus browser.
	phases := detail.Phases()
	for i := range phases {
		detail.SelectPhase(i)
		p := detail.ActivePhase()
		if p == nil {
			continue
		}
		fmt.Printf("  Phase %d/%d %s (%s): %d weeks\n",
			detail.ActivePhaseIndex()+1, len(phases), p.Title, p.Month, len(p.Weeks))
	}
}

// await blocks on change notifications until done reports true, giving up
// when ctx ends or nothing changes for too long.
func await(ctx context.Context, changed <-chan struct{}, done func() bool) bool {
	for !done() {
		select {
		case <-changed:
		case <-ctx.Done():
			return false
		case <-time.After(15 * time.Second):
			return false
		}
	}
	return true
}
