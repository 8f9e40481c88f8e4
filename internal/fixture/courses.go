// Package fixture is the canned catalog the stub server serves. It exists so
// the client core can be developed and demoed without the real backend.
package fixture

import (
	"time"

	"academy-core/internal/model"
)

// Catalog returns the canned course records, newest first. Callers get a
// fresh slice on every call; records themselves are treated as read-only.
func Catalog() []model.CourseDetail {
	return []model.CourseDetail{
		{
			Course: model.Course{
				ID:              "fullstack-web-development",
				Name:            "Full Stack Web Development",
				Status:          model.StatusOnline,
				CreatedAt:       time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC),
				OriginalPrice:   1000,
				DiscountedPrice: 750,
			},
			Description:      "Build and ship modern web applications, from markup to deployment.",
			Language:         "English",
			CertificateImage: "https://cdn.example.com/certificates/fullstack.png",
			TechnicalSpecs: []model.TechnicalSpec{
				{Label: "Duration", Value: "3 Months", Icon: "duration"},
				{Label: "Method", Value: "Online", Icon: "method"},
				{Label: "Language", Value: "English", Icon: "language"},
				{Label: "Projects", Value: "5 portfolio projects", Icon: "projects"},
			},
			SyllabusPhases: []model.SyllabusPhase{
				{
					Month: "Month 1",
					Title: "Foundations",
					Desc:  "HTML, CSS and the JavaScript language.",
					Weeks: []model.Week{
						{Label: "Week 1", Title: "Structure and style", Topics: []model.Topic{{Name: "Semantic HTML"}, {Name: "CSS layout"}}},
						{Label: "Week 2", Title: "JavaScript basics", Topics: []model.Topic{{Name: "Types and functions"}, {Name: "The DOM"}}},
					},
				},
				{
					Month: "Month 2",
					Title: "Frontend frameworks",
					Desc:  "Component-driven interfaces and state management.",
					Weeks: []model.Week{
						{Label: "Week 1", Title: "Components", Topics: []model.Topic{{Name: "Props and state"}}},
						{Label: "Week 2", Title: "Data fetching", Topics: []model.Topic{{Name: "Async patterns"}, {Name: "Error states"}}},
					},
				},
				{
					Month: "Month 3",
					Title: "Backend and deployment",
					Desc:  "APIs, databases and going live.",
					Weeks: []model.Week{
						{Label: "Week 1", Title: "REST APIs", Topics: []model.Topic{{Name: "Routing"}, {Name: "Persistence"}}},
						{Label: "Week 2", Title: "Shipping", Topics: []model.Topic{{Name: "CI pipelines"}, {Name: "Monitoring"}}},
					},
				},
			},
		},
		{
			Course: model.Course{
				ID:              "data-science-bootcamp",
				Name:            "Data Science Bootcamp",
				Status:          model.StatusOffline,
				CreatedAt:       time.Date(2025, 6, 30, 9, 0, 0, 0, time.UTC),
				OriginalPrice:   1400,
				DiscountedPrice: 980,
			},
			Description: "From spreadsheets to statistical models, taught in our campus labs.",
			Language:    "English",
			SyllabusPhases: []model.SyllabusPhase{
				{
					Month: "Month 1",
					Title: "Data wrangling",
					Desc:  "Collect, clean and reshape real datasets.",
					Weeks: []model.Week{
						{Label: "Week 1", Title: "Tabular data", Topics: []model.Topic{{Name: "Dataframes"}}},
						{Label: "Week 2", Title: "Cleaning", Topics: []model.Topic{{Name: "Missing values"}, {Name: "Outliers"}}},
					},
				},
				{
					Month: "Month 2",
					Title: "Modeling",
					Desc:  "Regression, classification and evaluation.",
					Weeks: []model.Week{
						{Label: "Week 1", Title: "Linear models", Topics: []model.Topic{{Name: "Least squares"}}},
						{Label: "Week 2", Title: "Validation", Topics: []model.Topic{{Name: "Cross-validation"}}},
					},
				},
			},
		},
		{
			Course: model.Course{
				ID:              "mobile-app-development",
				Name:            "Mobile App Development",
				Status:          model.StatusOnline,
				CreatedAt:       time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
				OriginalPrice:   900,
				DiscountedPrice: 720,
			},
			Description: "Design, build and publish apps for both major mobile platforms.",
			Language:    "English",
			SyllabusPhases: []model.SyllabusPhase{
				{
					Month: "Month 1",
					Title: "Mobile foundations",
					Desc:  "Layouts, navigation and device APIs.",
					Weeks: []model.Week{
						{Label: "Week 1", Title: "Screens", Topics: []model.Topic{{Name: "Navigation stacks"}}},
						{Label: "Week 2", Title: "Device features", Topics: []model.Topic{{Name: "Camera"}, {Name: "Location"}}},
					},
				},
				{
					Month: "Month 2",
					Title: "Release",
					Desc:  "Testing, store listings and updates.",
					Weeks: []model.Week{
						{Label: "Week 1", Title: "Quality", Topics: []model.Topic{{Name: "UI testing"}}},
						{Label: "Week 2", Title: "Publishing", Topics: []model.Topic{{Name: "Store review"}}},
					},
				},
			},
		},
		{
			Course: model.Course{
				ID:              "ui-ux-design",
				Name:            "UI UX Design",
				Status:          model.StatusHybrid,
				CreatedAt:       time.Date(2025, 5, 19, 9, 0, 0, 0, time.UTC),
				OriginalPrice:   800,
				DiscountedPrice: 600,
			},
			Description: "Research, prototype and test product interfaces that people enjoy.",
			Language:    "Indonesian",
			SyllabusPhases: []model.SyllabusPhase{
				{
					Month: "Month 1",
					Title: "Research and ideation",
					Desc:  "Understand users before drawing pixels.",
					Weeks: []model.Week{
						{Label: "Week 1", Title: "User research", Topics: []model.Topic{{Name: "Interviews"}, {Name: "Personas"}}},
						{Label: "Week 2", Title: "Wireframing", Topics: []model.Topic{{Name: "Low fidelity flows"}}},
					},
				},
				{
					Month: "Month 2",
					Title: "Visual design",
					Desc:  "Type, color and component systems.",
					Weeks: []model.Week{
						{Label: "Week 1", Title: "Design systems", Topics: []model.Topic{{Name: "Tokens"}, {Name: "Components"}}},
						{Label: "Week 2", Title: "Prototyping", Topics: []model.Topic{{Name: "Usability tests"}}},
					},
				},
			},
		},
		{
			Course: model.Course{
				ID:              "cloud-devops-engineering",
				Name:            "Cloud DevOps Engineering",
				Status:          model.StatusHybrid,
				CreatedAt:       time.Date(2025, 5, 5, 9, 0, 0, 0, time.UTC),
				OriginalPrice:   1200,
				DiscountedPrice: 900,
			},
			Description: "Automate infrastructure and deliver software continuously.",
			Language:    "English",
			SyllabusPhases: []model.SyllabusPhase{
				{
					Month: "Month 1",
					Title: "Infrastructure as code",
					Desc:  "Reproducible environments from declarative definitions.",
					Weeks: []model.Week{
						{Label: "Week 1", Title: "Provisioning", Topics: []model.Topic{{Name: "Templates"}}},
						{Label: "Week 2", Title: "Containers", Topics: []model.Topic{{Name: "Images"}, {Name: "Orchestration"}}},
					},
				},
				{
					Month: "Month 2",
					Title: "Delivery pipelines",
					Desc:  "From commit to production without manual steps.",
					Weeks: []model.Week{
						{Label: "Week 1", Title: "CI", Topics: []model.Topic{{Name: "Build automation"}}},
						{Label: "Week 2", Title: "CD", Topics: []model.Topic{{Name: "Progressive rollout"}}},
					},
				},
			},
		},
		{
			Course: model.Course{
				ID:              "cybersecurity-fundamentals",
				Name:            "Cybersecurity Fundamentals",
				Status:          model.StatusOffline,
				CreatedAt:       time.Date(2025, 4, 21, 9, 0, 0, 0, time.UTC),
				OriginalPrice:   0,
				DiscountedPrice: 0,
			},
			Description: "A free introductory classroom course on defensive security basics.",
			Language:    "Indonesian",
			SyllabusPhases: []model.SyllabusPhase{
				{
					Month: "Month 1",
					Title: "Security basics",
					Desc:  "Threats, assets and everyday hygiene.",
					Weeks: []model.Week{
						{Label: "Week 1", Title: "Threat landscape", Topics: []model.Topic{{Name: "Common attacks"}}},
						{Label: "Week 2", Title: "Defenses", Topics: []model.Topic{{Name: "Passwords"}, {Name: "Updates"}}},
					},
				},
			},
		},
	}
}

// Summaries returns the course summaries of the canned catalog, newest
// first.
func Summaries() []model.Course {
	catalog := Catalog()
	courses := make([]model.Course, 0, len(catalog))
	for _, d := range catalog {
		courses = append(courses, d.Course)
	}
	return courses
}

// ByID returns a copy of the canned detail record with the given id, nil
// when none exists.
func ByID(id string) *model.CourseDetail {
	for _, d := range Catalog() {
		if d.ID == id {
			out := d
			return &out
		}
	}
	return nil
}
