package dto

import "nortetech-site/internal/models"

// UpdateProfileRequest defines the editable profile fields.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=150"`
	Phone    string `json:"phone" validate:"required,max=20"`
}

// AddEducationRequest defines an academic entry. Dates use YYYY-MM-DD.
type AddEducationRequest struct {
	Course      string `json:"course" validate:"required,max=100"`
	Institution string `json:"institution" validate:"required,max=100"`
	Level       string `json:"level" validate:"required,max=50"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// AddExperienceRequest defines a professional entry. Dates use YYYY-MM-DD.
type AddExperienceRequest struct {
	Role        string `json:"role" validate:"required,max=100"`
	Company     string `json:"company" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// AddCourseRequest defines an extra course.
type AddCourseRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Institution    string `json:"institution" validate:"required,max=100"`
	Hours          int    `json:"hours" validate:"gte=0,lte=10000"`
	CompletionYear int    `json:"completion_year" validate:"required,gte=1950,lte=2100"`
}

// ProfileResponse is the "my profile" page.
type ProfileResponse struct {
	Profile  models.Profile        `json:"profile"`
	Resume   models.ResumeSnapshot `json:"resume"`
	Complete bool                  `json:"complete"`
}
