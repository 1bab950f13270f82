package dto

// CreateJobRequest defines the structure for publishing a job.
type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Department  string `json:"department" validate:"omitempty,max=100"`
	Location    string `json:"location" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"required"`
	IsActive    *bool  `json:"is_active"` // Defaults to true
}

// SetJobActiveRequest toggles a job on or off the careers page.
type SetJobActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
