package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"nortetech-site/internal/models"
	"nortetech-site/internal/storage"

	"github.com/google/uuid"
)

type careersService struct {
	jobs       storage.JobRepository
	profiles   storage.ProfileRepository
	users      storage.UserRepository
	candidates storage.CandidateRepository
	tx         storage.TxManager
}

// NewCareersService creates a new instance of CareersService.
func NewCareersService(jobs storage.JobRepository, profiles storage.ProfileRepository, users storage.UserRepository, candidates storage.CandidateRepository, tx storage.TxManager) CareersService {
	return &careersService{jobs: jobs, profiles: profiles, users: users, candidates: candidates, tx: tx}
}

// ListOpenJobs returns every active job.
func (s *careersService) ListOpenJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobs.ListActive(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing open jobs")
	}
	return jobs, nil
}

// Apply turns the user's profile into an application for jobID. The checks run in
// order: the job must be open, the profile complete, and no application may exist
// for the same e-mail and job. Name, phone, résumé and résumé lists are copied.
func (s *careersService) Apply(ctx context.Context, userID, jobID uuid.UUID) (*models.Candidate, error) {
	// 1. The job must exist and be published
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", jobID))
	}
	if !job.IsActive {
		log.Printf("ApplyToJob: Attempt to apply to inactive job %s", jobID)
		return nil, fmt.Errorf("%w: job %s is not open", ErrNotFound, jobID)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching applicant %s", userID))
	}

	// 2. The profile must carry everything the application copies
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "fetching applicant profile")
	}
	if !profile.IsComplete() {
		log.Printf("ApplyToJob: User %s tried to apply to job %s with an incomplete profile", userID, jobID)
		return nil, ErrIncompleteProfile
	}

	resume, err := s.profiles.GetResume(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "fetching applicant resume")
	}

	candidate := &models.Candidate{
		JobID:          &job.ID,
		UserID:         &user.ID,
		Name:           profile.FullName,
		Email:          user.Email,
		Phone:          profile.Phone,
		ResumeFile:     profile.ResumeFile,
		Message:        fmt.Sprintf("Aplicação via perfil do usuário %s", user.Name),
		Status:         models.CandidateStatusNew,
		ResumeSnapshot: *resume,
	}

	// 3. Duplicate check and insert share one transaction; the unique index catches
	// a concurrent request that slips between them.
	var created *models.Candidate
	err = s.tx.WithinTx(ctx, func(repos storage.Careers) error {
		exists, err := repos.Candidates.ExistsForEmailAndJob(ctx, user.Email, &job.ID)
		if err != nil {
			return mapRepoError(err, "checking existing application")
		}
		if exists {
			return ErrDuplicateApplication
		}

		created, err = repos.Candidates.Create(ctx, candidate)
		if err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return ErrDuplicateApplication
			}
			return mapRepoError(err, "creating application")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateApplication) {
			log.Printf("ApplyToJob: %s already applied to job %s", user.Email, jobID)
		}
		return nil, err
	}

	log.Printf("ApplyToJob: Candidate %s created for job %s", created.ID, jobID)
	return created, nil
}

// ListMyApplications returns the user's applications, newest first.
func (s *careersService) ListMyApplications(ctx context.Context, userID uuid.UUID) ([]models.Candidate, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", userID))
	}
	candidates, err := s.candidates.ListByUser(ctx, user.ID, user.Email)
	if err != nil {
		return nil, mapRepoError(err, "listing applications")
	}
	return candidates, nil
}
