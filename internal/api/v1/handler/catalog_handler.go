package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"academy-core/internal/api/v1/dto"
	"academy-core/internal/fixture"
	"academy-core/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// courseIDPattern is the shape of a well-formed course id: a lowercase slug.
// Anything else is a 400; a well-formed id with no record is a 404.
var courseIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CatalogHandler serves the stub catalog API from the canned fixture set.
type CatalogHandler struct {
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(validate *validator.Validate, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		validate: validate,
		logger:   logger.With().Str("component", "catalog_handler").Logger(),
	}
}

// RegisterRoutes mounts catalog routes
func (h *CatalogHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/courses", h.listCourses)
	mux.HandleFunc("/courses/", h.getCourse)
}

// listQueryParams carries the parsed query string of the list endpoint.
type listQueryParams struct {
	Sort  string `validate:"oneof=-createdAt createdAt name"`
	Limit int    `validate:"min=1,max=50"`
}

// listCourses godoc
// @Summary List courses
// @Description Returns the canned course catalog, sorted and limited.
// @Tags courses
// @Produce json
// @Param sort query string false "Sort order" Enums(-createdAt, createdAt, name) default(-createdAt)
// @Param limit query int false "Maximum number of courses (1..50)" default(6)
// @Success 200 {object} dto.CourseListResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Router /courses [get]
func (h *CatalogHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != "/courses" {
		h.writeError(w, http.StatusNotFound, "not found")
		return
	}

	params := listQueryParams{Sort: "-createdAt", Limit: 6}
	if v := r.URL.Query().Get("sort"); v != "" {
		params.Sort = v
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		params.Limit = n
	}
	if err := h.validate.Struct(&params); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid query: "+err.Error())
		return
	}

	courses := fixture.Summaries()
	sortCourses(courses, params.Sort)
	if len(courses) > params.Limit {
		courses = courses[:params.Limit]
	}

	out := make([]dto.CourseDTO, 0, len(courses))
	for _, c := range courses {
		out = append(out, dto.CourseFromModel(c))
	}
	h.writeJSON(w, http.StatusOK, dto.CourseListResponseDTO{Courses: out, Count: len(out)})
}

// getCourse godoc
// @Summary Get a course
// @Description Retrieves a course detail record by its ID.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID (lowercase slug)"
// @Success 200 {object} dto.CourseDetailDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /courses/{courseId} [get]
func (h *CatalogHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/courses/")
	if !courseIDPattern.MatchString(id) {
		h.writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}
	detail := fixture.ByID(id)
	if detail == nil {
		h.writeError(w, http.StatusNotFound, "course not found")
		return
	}
	h.writeJSON(w, http.StatusOK, dto.CourseDetailFromModel(*detail))
}

// sortCourses orders courses in place for one of the validated sort keys.
func sortCourses(courses []model.Course, key string) {
	switch key {
	case "-createdAt":
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].CreatedAt.After(courses[j].CreatedAt)
		})
	case "createdAt":
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].CreatedAt.Before(courses[j].CreatedAt)
		})
	case "name":
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].Name < courses[j].Name
		})
	}
}

func (h *CatalogHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *CatalogHandler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, dto.ErrorResponseDTO{Error: msg})
}
