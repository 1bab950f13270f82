package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"nortetech-site/internal/blob"
	"nortetech-site/internal/models"
	"nortetech-site/internal/report"
	"nortetech-site/internal/storage"
	"nortetech-site/internal/transport/dto"

	"github.com/google/uuid"
)

type hrService struct {
	jobs       storage.JobRepository
	docTypes   storage.DocumentTypeRepository
	candidates storage.CandidateRepository
	documents  storage.CandidateDocumentRepository
	files      FileStore
	publicURL  string
	now        func() time.Time
}

// NewHRService creates a new instance of HRService. publicURL prefixes the
// onboarding links handed to HR.
func NewHRService(jobs storage.JobRepository, docTypes storage.DocumentTypeRepository, candidates storage.CandidateRepository, documents storage.CandidateDocumentRepository, files FileStore, publicURL string) HRService {
	return &hrService{
		jobs:       jobs,
		docTypes:   docTypes,
		candidates: candidates,
		documents:  documents,
		files:      files,
		publicURL:  publicURL,
		now:        time.Now,
	}
}

// OnboardingURL is the page where a candidate uploads the requested documents.
func OnboardingURL(publicURL string, candidateID uuid.UUID) string {
	return strings.TrimRight(publicURL, "/") + "/onboarding/" + candidateID.String() + "/"
}

func (s *hrService) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing jobs")
	}
	return jobs, nil
}

func (s *hrService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job, err := s.jobs.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating job")
	}
	return job, nil
}

func (s *hrService) SetJobActive(ctx context.Context, id uuid.UUID, active bool) (*models.Job, error) {
	job, err := s.jobs.SetActive(ctx, id, active)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating job %s", id))
	}
	return job, nil
}

func (s *hrService) ListDocumentTypes(ctx context.Context) ([]models.DocumentType, error) {
	types, err := s.docTypes.List(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing document types")
	}
	return types, nil
}

func (s *hrService) CreateDocumentType(ctx context.Context, req *dto.CreateDocumentTypeRequest) (*models.DocumentType, error) {
	docType, err := s.docTypes.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating document type")
	}
	return docType, nil
}

// ListCandidates returns the filtered candidates with their documents status.
// The status is recomputed from the documents on every call.
func (s *hrService) ListCandidates(ctx context.Context, req *dto.ListCandidatesRequest) ([]dto.CandidateSummary, error) {
	from, err := parseDate(req.SentFrom)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(req.SentTo)
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, fmt.Errorf("%w: sent_to is before sent_from", ErrValidation)
	}

	candidates, err := s.candidates.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing candidates")
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	counts, err := s.documents.CountByStatus(ctx, ids)
	if err != nil {
		return nil, mapRepoError(err, "counting candidate documents")
	}

	summaries := make([]dto.CandidateSummary, 0, len(candidates))
	for _, c := range candidates {
		summaries = append(summaries, dto.CandidateSummary{
			Candidate:  c,
			JobDisplay: c.JobDisplay(),
			DocsStatus: counts[c.ID].Summarize(),
		})
	}
	return summaries, nil
}

func (s *hrService) GetCandidate(ctx context.Context, id uuid.UUID) (*dto.CandidateDetail, error) {
	candidate, docs, err := s.candidateWithDocuments(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.CandidateDetail{
		CandidateSummary: dto.CandidateSummary{
			Candidate:  *candidate,
			JobDisplay: candidate.JobDisplay(),
			DocsStatus: models.CountDocuments(docs).Summarize(),
		},
		Documents:     dto.NewDocumentResponses(docs),
		OnboardingURL: OnboardingURL(s.publicURL, candidate.ID),
	}, nil
}

func (s *hrService) candidateWithDocuments(ctx context.Context, id uuid.UUID) (*models.Candidate, []models.CandidateDocument, error) {
	candidate, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		return nil, nil, mapRepoError(err, fmt.Sprintf("fetching candidate %s", id))
	}
	docs, err := s.documents.ListByCandidate(ctx, id)
	if err != nil {
		return nil, nil, mapRepoError(err, fmt.Sprintf("listing documents of candidate %s", id))
	}
	return candidate, docs, nil
}

// UpdateCandidate changes the status and/or the HR notes of an application.
func (s *hrService) UpdateCandidate(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	if req.Status == nil && req.HRNotes == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	candidate, err := s.candidates.UpdateReview(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating candidate %s", req.ID))
	}
	log.Printf("HR: Candidate %s updated (status %s)", candidate.ID, candidate.Status)
	return candidate, nil
}

// RequestDocument asks the candidate for a document type. A pair is requested once.
func (s *hrService) RequestDocument(ctx context.Context, req *dto.RequestDocumentRequest) (*models.CandidateDocument, error) {
	docTypeID, err := uuid.Parse(req.DocTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid doc_type_id", ErrValidation)
	}
	doc, err := s.documents.Create(ctx, req.CandidateID, docTypeID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("requesting document from candidate %s", req.CandidateID))
	}
	return doc, nil
}

// ReviewDocument stores the HR decision. A rejection needs a reason; the reason
// is dropped for any other status.
func (s *hrService) ReviewDocument(ctx context.Context, req *dto.ReviewDocumentRequest) (*models.CandidateDocument, error) {
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, req.Status)
	}
	req.RejectionReason = strings.TrimSpace(req.RejectionReason)
	if req.Status == models.DocumentStatusRejected {
		if req.RejectionReason == "" {
			return nil, fmt.Errorf("%w: rejection_reason is required when rejecting", ErrValidation)
		}
	} else {
		req.RejectionReason = ""
	}

	doc, err := s.documents.Review(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("reviewing document %s", req.ID))
	}
	return doc, nil
}

// CandidateDossier renders the printable PDF of an application.
func (s *hrService) CandidateDossier(ctx context.Context, id uuid.UUID) ([]byte, error) {
	candidate, docs, err := s.candidateWithDocuments(ctx, id)
	if err != nil {
		return nil, err
	}

	pdf, err := report.CandidateDossierPDF(report.Dossier{
		Candidate:     *candidate,
		Documents:     docs,
		DocsStatus:    models.CountDocuments(docs).Summarize(),
		OnboardingURL: OnboardingURL(s.publicURL, candidate.ID),
		GeneratedAt:   s.now(),
	})
	if err != nil {
		log.Printf("HR: Error rendering dossier for candidate %s: %v", id, err)
		return nil, fmt.Errorf("internal error rendering dossier: %w", err)
	}
	return pdf, nil
}

// OpenResume opens the résumé copied into the application.
func (s *hrService) OpenResume(ctx context.Context, candidateID uuid.UUID) (*blob.File, error) {
	candidate, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching candidate %s", candidateID))
	}
	if candidate.ResumeFile == "" {
		return nil, fmt.Errorf("%w: candidate %s has no resume", ErrNotFound, candidateID)
	}
	f, err := s.files.Open(ctx, candidate.ResumeFile)
	if err != nil {
		return nil, mapBlobError(err, fmt.Sprintf("opening resume of candidate %s", candidateID))
	}
	return f, nil
}

// OpenDocumentFile opens the last upload of a requested document. Documents are
// reached only through their own candidate.
func (s *hrService) OpenDocumentFile(ctx context.Context, candidateID, docID uuid.UUID) (*blob.File, error) {
	doc, err := s.documents.GetByID(ctx, docID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching document %s", docID))
	}
	if doc.CandidateID != candidateID {
		return nil, fmt.Errorf("%w: document %s does not belong to candidate %s", ErrNotFound, docID, candidateID)
	}
	if doc.File == nil || *doc.File == "" {
		return nil, fmt.Errorf("%w: document %s has no upload", ErrNotFound, docID)
	}
	f, err := s.files.Open(ctx, *doc.File)
	if err != nil {
		return nil, mapBlobError(err, fmt.Sprintf("opening document %s", docID))
	}
	return f, nil
}
