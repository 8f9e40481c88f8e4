package dto

import (
	"time"

	"academy-core/internal/model"
)

// Wire shapes of the catalog API. Shared by the HTTP gateway (decoding) and
// the stub server (encoding) so both sides agree on the contract.

// CourseDTO is one course summary in a list response.
type CourseDTO struct {
	ID              string    `json:"id" validate:"required"`
	Name            string    `json:"name" validate:"required"`
	Status          string    `json:"status" validate:"required,oneof=Online Offline Hybrid"`
	CreatedAt       time.Time `json:"created_at"`
	OriginalPrice   float64   `json:"original_price" validate:"gte=0"`
	DiscountedPrice float64   `json:"discounted_price" validate:"gte=0,ltefield=OriginalPrice"`
}

// CourseListResponseDTO is the body of GET /v1/courses.
type CourseListResponseDTO struct {
	Courses []CourseDTO `json:"courses"`
	Count   int         `json:"count"`
}

// TechnicalSpecDTO is a display-only label/value pair on a detail record.
type TechnicalSpecDTO struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// TopicDTO is a single syllabus bullet point.
type TopicDTO struct {
	Name string `json:"name"`
}

// WeekDTO is one row inside a syllabus phase.
type WeekDTO struct {
	Label  string     `json:"label"`
	Title  string     `json:"title"`
	Topics []TopicDTO `json:"topics"`
}

// SyllabusPhaseDTO is one block of the syllabus browser, in chronological
// order within the detail record.
type SyllabusPhaseDTO struct {
	Month string    `json:"month"`
	Title string    `json:"title"`
	Desc  string    `json:"desc"`
	Weeks []WeekDTO `json:"weeks"`
}

// CourseDetailDTO is the body of GET /v1/courses/{courseId}.
type CourseDetailDTO struct {
	CourseDTO
	Description      string             `json:"description"`
	Language         string             `json:"language"`
	CertificateImage string             `json:"certificate_image,omitempty"`
	TechnicalSpecs   []TechnicalSpecDTO `json:"technical_specs,omitempty" validate:"omitempty,dive"`
	SyllabusPhases   []SyllabusPhaseDTO `json:"syllabus_phases"`
}

// ErrorResponseDTO is the body of every non-2xx catalog response.
type ErrorResponseDTO struct {
	Error string `json:"error"`
}

// ToModel converts a wire course summary into the domain record.
func (d CourseDTO) ToModel() model.Course {
	return model.Course{
		ID:              d.ID,
		Name:            d.Name,
		Status:          model.CourseStatus(d.Status),
		CreatedAt:       d.CreatedAt,
		OriginalPrice:   d.OriginalPrice,
		DiscountedPrice: d.DiscountedPrice,
	}
}

// ToModel converts a wire detail record into the domain record.
func (d CourseDetailDTO) ToModel() model.CourseDetail {
	detail := model.CourseDetail{
		Course:           d.CourseDTO.ToModel(),
		Description:      d.Description,
		Language:         d.Language,
		CertificateImage: d.CertificateImage,
	}
	for _, s := range d.TechnicalSpecs {
		detail.TechnicalSpecs = append(detail.TechnicalSpecs, model.TechnicalSpec{
			Label: s.Label,
			Value: s.Value,
			Icon:  s.Icon,
		})
	}
	for _, p := range d.SyllabusPhases {
		phase := model.SyllabusPhase{Month: p.Month, Title: p.Title, Desc: p.Desc}
		for _, w := range p.Weeks {
			week := model.Week{Label: w.Label, Title: w.Title}
			for _, topic := range w.Topics {
				week.Topics = append(week.Topics, model.Topic{Name: topic.Name})
			}
			phase.Weeks = append(phase.Weeks, week)
		}
		detail.SyllabusPhases = append(detail.SyllabusPhases, phase)
	}
	return detail
}

// CourseFromModel converts a domain course summary into its wire shape.
func CourseFromModel(m model.Course) CourseDTO {
	return CourseDTO{
		ID:              m.ID,
		Name:            m.Name,
		Status:          string(m.Status),
		CreatedAt:       m.CreatedAt,
		OriginalPrice:   m.OriginalPrice,
		DiscountedPrice: m.DiscountedPrice,
	}
}

// CourseDetailFromModel converts a domain detail record into its wire shape.
func CourseDetailFromModel(m model.CourseDetail) CourseDetailDTO {
	d := CourseDetailDTO{
		CourseDTO:        CourseFromModel(m.Course),
		Description:      m.Description,
		Language:         m.Language,
		CertificateImage: m.CertificateImage,
	}
	for _, s := range m.TechnicalSpecs {
		d.TechnicalSpecs = append(d.TechnicalSpecs, TechnicalSpecDTO{
			Label: s.Label,
			Value: s.Value,
			Icon:  s.Icon,
		})
	}
	for _, p := range m.SyllabusPhases {
		phase := SyllabusPhaseDTO{Month: p.Month, Title: p.Title, Desc: p.Desc}
		for _, w := range p.Weeks {
			week := WeekDTO{Label: w.Label, Title: w.Title}
			for _, topic := range w.Topics {
				week.Topics = append(week.Topics, TopicDTO{Name: topic.Name})
			}
			phase.Weeks = append(phase.Weeks, week)
		}
		d.SyllabusPhases = append(d.SyllabusPhases, phase)
	}
	return d
}
