package gateway

import (
	"context"
	"fmt"
	"time"

	"academy-core/internal/cache"
	"academy-core/internal/model"
)

// CachedGateway decorates a CourseGateway with a read-through TTL cache.
// Errors and absent records are never cached, so a retry always reaches the
// remote side.
type CachedGateway struct {
	next  CourseGateway
	cache *cache.Cache
	ttl   time.Duration
}

// NewCachedGateway wraps next with the given cache and TTL.
func NewCachedGateway(next CourseGateway, c *cache.Cache, ttl time.Duration) *CachedGateway {
	return &CachedGateway{next: next, cache: c, ttl: ttl}
}

// ListCourses returns the cached list for q when fresh, fetching otherwise.
func (g *CachedGateway) ListCourses(ctx context.Context, q ListQuery) ([]model.Course, error) {
	key := listKey(q)
	if v, ok := g.cache.Get(key); ok {
		if courses, ok := v.([]model.Course); ok {
			return courses, nil
		}
	}
	courses, err := g.next.ListCourses(ctx, q)
	if err != nil {
		return nil, err
	}
	g.cache.Set(key, courses, g.ttl)
	return courses, nil
}

// GetCourseByID returns the cached detail record when fresh, fetching
// otherwise.
func (g *CachedGateway) GetCourseByID(ctx context.Context, id string) (*model.CourseDetail, error) {
	key := detailKey(id)
	if v, ok := g.cache.Get(key); ok {
		if detail, ok := v.(*model.CourseDetail); ok {
			return detail, nil
		}
	}
	detail, err := g.next.GetCourseByID(ctx, id)
	if err != nil || detail == nil {
		return detail, err
	}
	g.cache.Set(key, detail, g.ttl)
	return detail, nil
}

func listKey(q ListQuery) string {
	return fmt.Sprintf("courses:%s:%d", q.Sort, q.Limit)
}

func detailKey(id string) string {
	return "course:" + id
}
