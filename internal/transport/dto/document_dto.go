package dto

import (
	"io"

	"nortetech-site/internal/models"

	"github.com/google/uuid"
)

// CreateDocumentTypeRequest defines a new catalog entry.
type CreateDocumentTypeRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// RequestDocumentRequest asks a candidate for one document type.
type RequestDocumentRequest struct {
	CandidateID uuid.UUID `json:"-"` // From path
	DocTypeID   string    `json:"doc_type_id" validate:"required,uuid"`
}

// ReviewDocumentRequest defines the HR decision on one document.
type ReviewDocumentRequest struct {
	ID              uuid.UUID             `json:"-"` // From path
	CandidateID     uuid.UUID             `json:"-"` // From path
	Status          models.DocumentStatus `json:"status" validate:"required,document_status"`
	RejectionReason string                `json:"rejection_reason" validate:"omitempty,max=1000"`
}

// SubmitDocumentRequest is built by the onboarding handler from the multipart form.
type SubmitDocumentRequest struct {
	CandidateID uuid.UUID
	DocumentID  uuid.UUID
	UserID      uuid.UUID
	Filename    string
	File        io.Reader
}

// DocumentResponse is a requested document as shown to candidates and HR.
type DocumentResponse struct {
	models.CandidateDocument
	StatusLabel string `json:"status_label"`
}

// OnboardingResponse is the candidate's onboarding page.
type OnboardingResponse struct {
	CandidateID uuid.UUID          `json:"candidate_id"`
	Name        string             `json:"name"`
	JobDisplay  string             `json:"job_display"`
	Documents   []DocumentResponse `json:"documents"`
}

// NewDocumentResponse adds the display label to a document.
func NewDocumentResponse(d models.CandidateDocument) DocumentResponse {
	return DocumentResponse{CandidateDocument: d, StatusLabel: d.Status.Label()}
}

// NewDocumentResponses maps a list of documents, never returning nil.
func NewDocumentResponses(docs []models.CandidateDocument) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, NewDocumentResponse(d))
	}
	return out
}
