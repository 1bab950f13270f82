package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"nortetech-site/internal/models"
	"nortetech-site/internal/storage"
	"nortetech-site/internal/transport/dto"

	"github.com/google/uuid"
)

// Résumés are accepted as PDF only.
const resumeMIME = "application/pdf"

type profileService struct {
	repo  storage.ProfileRepository
	files FileStore
}

// NewProfileService creates a new instance of ProfileService.
func NewProfileService(repo storage.ProfileRepository, files FileStore) ProfileService {
	return &profileService{repo: repo, files: files}
}

// GetProfile returns the profile and résumé lists. A user who never saved a
// profile gets an empty one.
func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, mapRepoError(err, "fetching profile")
		}
		profile = &models.Profile{UserID: userID}
	}

	resume, err := s.repo.GetResume(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "fetching resume")
	}

	return &dto.ProfileResponse{
		Profile:  *profile,
		Resume:   *resume,
		Complete: profile.IsComplete(),
	}, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.repo.Upsert(ctx, &models.Profile{
		UserID:   userID,
		FullName: strings.TrimSpace(req.FullName),
		Phone:    strings.TrimSpace(req.Phone),
	})
	if err != nil {
		return nil, mapRepoError(err, "saving profile")
	}
	return profile, nil
}

// UploadResume stores a new PDF résumé. Previous files are kept: applications
// already sent point at the file they copied.
func (s *profileService) UploadResume(ctx context.Context, userID uuid.UUID, file io.Reader) (*models.Profile, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: file is required", ErrValidation)
	}

	key, err := s.files.Save(ctx, "resumes/"+userID.String(), file, resumeMIME)
	if err != nil {
		return nil, mapBlobError(err, "saving resume")
	}

	profile, err := s.repo.SetResumeFile(ctx, userID, key)
	if err != nil {
		if delErr := s.files.Delete(ctx, key); delErr != nil {
			log.Printf("UploadResume: Error removing orphan file %s: %v", key, delErr)
		}
		return nil, mapRepoError(err, "saving resume reference")
	}
	return profile, nil
}

func (s *profileService) AddEducation(ctx context.Context, userID uuid.UUID, req *dto.AddEducationRequest) (*models.Education, error) {
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	e, err := s.repo.AddEducation(ctx, &models.Education{
		UserID:      userID,
		Course:      req.Course,
		Institution: req.Institution,
		Level:       req.Level,
		EndDate:     endDate,
	})
	if err != nil {
		return nil, mapRepoError(err, "adding education")
	}
	return e, nil
}

func (s *profileService) DeleteEducation(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.DeleteEducation(ctx, userID, id); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting education %s", id))
	}
	return nil
}

func (s *profileService) AddExperience(ctx context.Context, userID uuid.UUID, req *dto.AddExperienceRequest) (*models.Experience, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	if startDate == nil {
		return nil, fmt.Errorf("%w: start date is required", ErrValidation)
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate != nil && endDate.Before(*startDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrValidation)
	}

	e, err := s.repo.AddExperience(ctx, &models.Experience{
		UserID:      userID,
		Role:        req.Role,
		Company:     req.Company,
		Description: req.Description,
		StartDate:   *startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return nil, mapRepoError(err, "adding experience")
	}
	return e, nil
}

func (s *profileService) DeleteExperience(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.DeleteExperience(ctx, userID, id); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting experience %s", id))
	}
	return nil
}

func (s *profileService) AddCourse(ctx context.Context, userID uuid.UUID, req *dto.AddCourseRequest) (*models.Course, error) {
	if req.CompletionYear > time.Now().Year()+1 {
		return nil, fmt.Errorf("%w: completion year %d is in the future", ErrValidation, req.CompletionYear)
	}
	c, err := s.repo.AddCourse(ctx, &models.Course{
		UserID:         userID,
		Name:           req.Name,
		Institution:    req.Institution,
		Hours:          req.Hours,
		CompletionYear: req.CompletionYear,
	})
	if err != nil {
		return nil, mapRepoError(err, "adding course")
	}
	return c, nil
}

func (s *profileService) DeleteCourse(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.DeleteCourse(ctx, userID, id); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting course %s", id))
	}
	return nil
}
