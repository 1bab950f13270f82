package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"nortetech-site/internal/models"
	"nortetech-site/internal/storage"
	"nortetech-site/internal/transport/dto"

	"github.com/google/uuid"
)

type onboardingService struct {
	candidates storage.CandidateRepository
	documents  storage.CandidateDocumentRepository
	users      storage.UserRepository
	files      FileStore
}

// NewOnboardingService creates a new instance of OnboardingService.
func NewOnboardingService(candidates storage.CandidateRepository, documents storage.CandidateDocumentRepository, users storage.UserRepository, files FileStore) OnboardingService {
	return &onboardingService{candidates: candidates, documents: documents, users: users, files: files}
}

// ownedCandidate loads the candidate and checks it belongs to userID. A candidate
// owned by someone else is reported as not found.
func (s *onboardingService) ownedCandidate(ctx context.Context, candidateID, userID uuid.UUID) (*models.Candidate, error) {
	candidate, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching candidate %s", candidateID))
	}

	if candidate.UserID != nil {
		if *candidate.UserID == userID {
			return candidate, nil
		}
		log.Printf("Onboarding: User %s denied access to candidate %s", userID, candidateID)
		return nil, fmt.Errorf("%w: candidate %s", ErrNotFound, candidateID)
	}

	// Rows entered by HR carry no user; fall back to the e-mail.
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: candidate %s", ErrNotFound, candidateID)
		}
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", userID))
	}
	if !sameEmail(user.Email, candidate.Email) {
		log.Printf("Onboarding: User %s denied access to candidate %s", userID, candidateID)
		return nil, fmt.Errorf("%w: candidate %s", ErrNotFound, candidateID)
	}
	return candidate, nil
}

// ListRequestedDocuments returns the candidate and the documents HR asked for.
func (s *onboardingService) ListRequestedDocuments(ctx context.Context, candidateID, userID uuid.UUID) (*models.Candidate, []models.CandidateDocument, error) {
	candidate, err := s.ownedCandidate(ctx, candidateID, userID)
	if err != nil {
		return nil, nil, err
	}

	docs, err := s.documents.ListByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, nil, mapRepoError(err, "listing requested documents")
	}
	return candidate, docs, nil
}

// SubmitDocument stores the upload and marks the request SUBMITTED, whatever its
// previous status. The rejection reason is cleared.
func (s *onboardingService) SubmitDocument(ctx context.Context, req *dto.SubmitDocumentRequest) (*models.CandidateDocument, error) {
	if req.DocumentID == uuid.Nil {
		return nil, fmt.Errorf("%w: doc_id is required", ErrValidation)
	}
	if req.File == nil {
		return nil, fmt.Errorf("%w: file is required", ErrValidation)
	}

	candidate, err := s.ownedCandidate(ctx, req.CandidateID, req.UserID)
	if err != nil {
		return nil, err
	}

	doc, err := s.documents.GetByID(ctx, req.DocumentID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching document %s", req.DocumentID))
	}
	if doc.CandidateID != candidate.ID {
		log.Printf("SubmitDocument: Document %s does not belong to candidate %s", doc.ID, candidate.ID)
		return nil, fmt.Errorf("%w: document %s", ErrNotFound, req.DocumentID)
	}

	dir := fmt.Sprintf("candidates/%s/%s", candidate.ID, doc.ID)
	key, err := s.files.Save(ctx, dir, req.File)
	if err != nil {
		return nil, mapBlobError(err, "saving document")
	}

	updated, err := s.documents.MarkSubmitted(ctx, doc.ID, key)
	if err != nil {
		if delErr := s.files.Delete(ctx, key); delErr != nil {
			log.Printf("SubmitDocument: Failed to remove orphan upload %s: %v", key, delErr)
		}
		return nil, mapRepoError(err, "marking document submitted")
	}

	if doc.File != nil && *doc.File != "" && *doc.File != key {
		if err := s.files.Delete(ctx, *doc.File); err != nil {
			log.Printf("SubmitDocument: Failed to remove replaced upload %s: %v", *doc.File, err)
		}
	}

	log.Printf("SubmitDocument: Candidate %s submitted document %s (%s)", candidate.ID, doc.ID, req.Filename)
	return updated, nil
}
