package model

import "time"

// CourseStatus is the delivery mode of a course as published by the catalog API.
type CourseStatus string

const (
	StatusOnline  CourseStatus = "Online"
	StatusOffline CourseStatus = "Offline"
	StatusHybrid  CourseStatus = "Hybrid"
)

// Valid reports whether s is one of the statuses the catalog publishes.
func (s CourseStatus) Valid() bool {
	switch s {
	case StatusOnline, StatusOffline, StatusHybrid:
		return true
	}
	return false
}

// StatusFilter is the catalog screen's category filter. FilterAll passes every
// course; the other values pass only courses with the matching status.
type StatusFilter string

const (
	FilterAll     StatusFilter = "All"
	FilterOnline  StatusFilter = "Online"
	FilterOffline StatusFilter = "Offline"
	FilterHybrid  StatusFilter = "Hybrid"
)

// Valid reports whether f is a known filter value.
func (f StatusFilter) Valid() bool {
	switch f {
	case FilterAll, FilterOnline, FilterOffline, FilterHybrid:
		return true
	}
	return false
}

// Matches reports whether a course with status s passes the filter.
func (f StatusFilter) Matches(s CourseStatus) bool {
	return f == FilterAll || string(f) == string(s)
}

// Course is one catalog entry. Records are read-only once fetched: a re-fetch
// replaces the whole value, nothing mutates fields in place.
type Course struct {
	ID              string
	Name            string
	Status          CourseStatus
	CreatedAt       time.Time
	OriginalPrice   float64
	DiscountedPrice float64
}

// CourseDetail is the full course record behind the detail screen.
type CourseDetail struct {
	Course
	Description      string
	Language         string
	CertificateImage string // URL, may be empty
	TechnicalSpecs   []TechnicalSpec
	SyllabusPhases   []SyllabusPhase // chronological, phase N precedes N+1
}

// TechnicalSpec is a display-only label/value pair on the detail screen.
type TechnicalSpec struct {
	Label string
	Value string
	Icon  string // icon key resolved by the presentation layer
}

// SyllabusPhase is one block of the syllabus browser.
type SyllabusPhase struct {
	Month string
	Title string
	Desc  string
	Weeks []Week
}

// Week is one row inside a syllabus phase.
type Week struct {
	Label  string
	Title  string
	Topics []Topic
}

// Topic is a single syllabus bullet point.
type Topic struct {
	Name string
}
