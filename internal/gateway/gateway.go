// Package gateway is the client side of the remote catalog API.
package gateway

import (
	"context"

	"academy-core/internal/model"
)

// ListQuery is the catalog list query. Controllers hold it opaquely and
// replay it verbatim on retry; extending the wire query means extending this
// struct, not the controllers.
type ListQuery struct {
	Sort  string
	Limit int
}

// CourseGateway defines the interface for fetching catalog data.
type CourseGateway interface {
	// ListCourses returns the course summaries matching q. "No results" is an
	// empty slice, never an error.
	ListCourses(ctx context.Context, q ListQuery) ([]model.Course, error)
	// GetCourseByID retrieves one detail record. A well-formed id with no
	// record yields (nil, nil); callers must treat that as absence, not as a
	// failure.
	GetCourseByID(ctx context.Context, id string) (*model.CourseDetail, error)
}
