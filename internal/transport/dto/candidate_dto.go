package dto

import (
	"nortetech-site/internal/models"

	"github.com/google/uuid"
)

// ListCandidatesRequest defines the HR candidate list filters.
type ListCandidatesRequest struct {
	Status     *models.CandidateStatus `form:"status" validate:"omitempty,candidate_status"`
	JobID      string                  `form:"job_id" validate:"omitempty,uuid"`
	TalentPool bool                    `form:"talent_pool"` // Only candidates without a job
	Search     string                  `form:"q" validate:"omitempty,max=100"` // Name, e-mail or HR notes
	SentFrom   string                  `form:"sent_from" validate:"omitempty,datetime=2006-01-02"`
	SentTo     string                  `form:"sent_to" validate:"omitempty,datetime=2006-01-02"`
	Limit      int                     `form:"limit,default=50" validate:"omitempty,gte=1,lte=200"`
	Offset     int                     `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// UpdateCandidateRequest defines the HR review of an application.
type UpdateCandidateRequest struct {
	ID      uuid.UUID               `json:"-"` // From path
	Status  *models.CandidateStatus `json:"status" validate:"omitempty,candidate_status"`
	HRNotes *string                 `json:"hr_notes" validate:"omitempty,max=5000"`
}

// CandidateSummary is one row of the HR candidate list.
type CandidateSummary struct {
	models.Candidate
	JobDisplay string            `json:"job_display"`
	DocsStatus models.DocsStatus `json:"docs_status"`
}

// CandidateDetail is the HR view of one application.
type CandidateDetail struct {
	CandidateSummary
	Documents     []DocumentResponse `json:"documents"`
	OnboardingURL string             `json:"onboarding_url"`
}

// ApplicationResponse is one entry of "my applications".
type ApplicationResponse struct {
	ID            uuid.UUID              `json:"id"`
	JobDisplay    string                 `json:"job_display"`
	Status        models.CandidateStatus `json:"status"`
	SentAt        string                 `json:"sent_at"`
	OnboardingURL string                 `json:"onboarding_url"`
}
