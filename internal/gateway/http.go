package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"academy-core/internal/api/v1/dto"
	"academy-core/internal/config"
	"academy-core/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// HTTPGateway is the CourseGateway backed by the remote catalog API. It
// retries transient transport failures (network errors, 429, 5xx) within a
// single logical call; callers never see intermediate attempts.
type HTTPGateway struct {
	client   *resty.Client
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewHTTPGateway creates an HTTPGateway from the catalog client settings.
func NewHTTPGateway(cfg *config.Config, logger zerolog.Logger) *HTTPGateway {
	client := resty.New().
		SetBaseURL(cfg.CatalogBaseURL).
		SetTimeout(time.Duration(cfg.CatalogTimeoutSec) * time.Second).
		SetRetryCount(cfg.CatalogRetryCount).
		SetRetryWaitTime(time.Duration(cfg.CatalogRetryWaitMs) * time.Millisecond).
		SetRetryMaxWaitTime(time.Duration(cfg.CatalogRetryMaxWaitMs) * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests ||
				r.StatusCode() >= http.StatusInternalServerError
		})
	return &HTTPGateway{
		client:   client,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With().Str("component", "http_gateway").Logger(),
	}
}

// ListCourses fetches course summaries from GET /v1/courses.
func (g *HTTPGateway) ListCourses(ctx context.Context, q ListQuery) ([]model.Course, error) {
	req := g.client.R().SetContext(ctx).SetResult(&dto.CourseListResponseDTO{})
	if q.Sort != "" {
		req.SetQueryParam("sort", q.Sort)
	}
	if q.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(q.Limit))
	}

	resp, err := req.Get("/v1/courses")
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	body, ok := resp.Result().(*dto.CourseListResponseDTO)
	if !ok || body == nil {
		return nil, fmt.Errorf("catalog returned an unexpected list payload")
	}

	courses := make([]model.Course, 0, len(body.Courses))
	for _, c := range body.Courses {
		if err := g.validate.Struct(&c); err != nil {
			return nil, fmt.Errorf("catalog returned a malformed course record: %w", err)
		}
		courses = append(courses, c.ToModel())
	}
	g.logger.Debug().Int("count", len(courses)).Msg("Fetched course list")
	return courses, nil
}

// GetCourseByID fetches one detail record from GET /v1/courses/{id}. An HTTP
// 404 is mapped to (nil, nil).
func (g *HTTPGateway) GetCourseByID(ctx context.Context, id string) (*model.CourseDetail, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&dto.CourseDetailDTO{}).
		Get("/v1/courses/" + url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		g.logger.Debug().Str("course_id", id).Msg("Course not found")
		return nil, nil
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	body, ok := resp.Result().(*dto.CourseDetailDTO)
	if !ok || body == nil {
		return nil, fmt.Errorf("catalog returned an unexpected detail payload")
	}
	if err := g.validate.Struct(body); err != nil {
		return nil, fmt.Errorf("catalog returned a malformed course record: %w", err)
	}

	detail := body.ToModel()
	return &detail, nil
}

// apiError builds a descriptive error from a non-2xx catalog response,
// preferring the API's own error payload over a raw body snippet.
func apiError(resp *resty.Response) error {
	var apiErr dto.ErrorResponseDTO
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("catalog returned %d: %s", resp.StatusCode(), apiErr.Error)
	}
	snippet := resp.String()
	if len(snippet) > 200 {
		snippet = snippet[:200]
	}
	return fmt.Errorf("catalog returned %d: %s", resp.StatusCode(), snippet)
}
