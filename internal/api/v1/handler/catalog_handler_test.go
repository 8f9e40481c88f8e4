package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"academy-core/internal/api/v1/dto"
	"academy-core/internal/fixture"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

func newTestMux() *http.ServeMux {
	h := NewCatalogHandler(validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestListCoursesDefaults(t *testing.T) {
	rec := doRequest(t, newTestMux(), "/courses")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body dto.CourseListResponseDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Count != 6 || len(body.Courses) != 6 {
		t.Fatalf("expected all 6 fixture courses, got count=%d len=%d", body.Count, len(body.Courses))
	}
	// Default sort is newest first, matching the fixture order.
	want := fixture.Summaries()
	for i, c := range body.Courses {
		if c.ID != want[i].ID {
			t.Fatalf("expected %q at index %d, got %q", want[i].ID, i, c.ID)
		}
	}
}

func TestListCoursesLimit(t *testing.T) {
	rec := doRequest(t, newTestMux(), "/courses?limit=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body dto.CourseListResponseDTO
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Count != 2 {
		t.Fatalf("expected 2 courses, got %d", body.Count)
	}
}

func TestListCoursesSortByName(t *testing.T) {
	rec := doRequest(t, newTestMux(), "/courses?sort=name")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body dto.CourseListResponseDTO
	json.Unmarshal(rec.Body.Bytes(), &body)
	for i := 1; i < len(body.Courses); i++ {
		if body.Courses[i].Name < body.Courses[i-1].Name {
			t.Fatalf("courses not sorted by name at index %d", i)
		}
	}
}

func TestListCoursesInvalidQuery(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "unknown sort", path: "/courses?sort=price"},
		{name: "zero limit", path: "/courses?limit=0"},
		{name: "limit too large", path: "/courses?limit=51"},
		{name: "limit not a number", path: "/courses?limit=six"},
	}
	mux := newTestMux()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, mux, tt.path)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var body dto.ErrorResponseDTO
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Error == "" {
				t.Fatalf("expected an error payload, got %s", rec.Body.String())
			}
		})
	}
}

func TestGetCourse(t *testing.T) {
	rec := doRequest(t, newTestMux(), "/courses/fullstack-web-development")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body dto.CourseDetailDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.ID != "fullstack-web-development" {
		t.Fatalf("unexpected course: %q", body.ID)
	}
	if len(body.SyllabusPhases) == 0 {
		t.Fatal("expected syllabus phases in the detail record")
	}
}

func TestGetCourseNotFound(t *testing.T) {
	rec := doRequest(t, newTestMux(), "/courses/missing-id")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a well-formed unknown id, got %d", rec.Code)
	}
	var body dto.ErrorResponseDTO
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Error != "course not found" {
		t.Fatalf("expected the not-found copy, got %q", body.Error)
	}
}

func TestGetCourseMalformedID(t *testing.T) {
	for _, path := range []string{"/courses/Bad_ID", "/courses/UPPER", "/courses/a--b"} {
		rec := doRequest(t, newTestMux(), path)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", path, rec.Code)
		}
	}
}
