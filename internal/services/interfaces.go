package services

import (
	"context"
	"io"
	"time"

	"nortetech-site/internal/blob"
	"nortetech-site/internal/models"
	"nortetech-site/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService defines the interface for account business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenPair, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenPair, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// ProfileService defines the interface for the candidate's own résumé.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error)
	UploadResume(ctx context.Context, userID uuid.UUID, file io.Reader) (*models.Profile, error)
	AddEducation(ctx context.Context, userID uuid.UUID, req *dto.AddEducationRequest) (*models.Education, error)
	DeleteEducation(ctx context.Context, userID, id uuid.UUID) error
	AddExperience(ctx context.Context, userID uuid.UUID, req *dto.AddExperienceRequest) (*models.Experience, error)
	DeleteExperience(ctx context.Context, userID, id uuid.UUID) error
	AddCourse(ctx context.Context, userID uuid.UUID, req *dto.AddCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, userID, id uuid.UUID) error
}

// CareersService defines the interface for the job catalog and application intake.
type CareersService interface {
	ListOpenJobs(ctx context.Context) ([]models.Job, error)
	Apply(ctx context.Context, userID, jobID uuid.UUID) (*models.Candidate, error)
	ListMyApplications(ctx context.Context, userID uuid.UUID) ([]models.Candidate, error)
}

// OnboardingService defines the interface for the candidate's document uploads.
type OnboardingService interface {
	ListRequestedDocuments(ctx context.Context, candidateID, userID uuid.UUID) (*models.Candidate, []models.CandidateDocument, error)
	SubmitDocument(ctx context.Context, req *dto.SubmitDocumentRequest) (*models.CandidateDocument, error)
}

// HRService defines the interface for the administrative surface.
type HRService interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	SetJobActive(ctx context.Context, id uuid.UUID, active bool) (*models.Job, error)
	ListDocumentTypes(ctx context.Context) ([]models.DocumentType, error)
	CreateDocumentType(ctx context.Context, req *dto.CreateDocumentTypeRequest) (*models.DocumentType, error)
	ListCandidates(ctx context.Context, req *dto.ListCandidatesRequest) ([]dto.CandidateSummary, error)
	GetCandidate(ctx context.Context, id uuid.UUID) (*dto.CandidateDetail, error)
	UpdateCandidate(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error)
	RequestDocument(ctx context.Context, req *dto.RequestDocumentRequest) (*models.CandidateDocument, error)
	ReviewDocument(ctx context.Context, req *dto.ReviewDocumentRequest) (*models.CandidateDocument, error)
	CandidateDossier(ctx context.Context, id uuid.UUID) ([]byte, error)
	OpenResume(ctx context.Context, candidateID uuid.UUID) (*blob.File, error)
	OpenDocumentFile(ctx context.Context, candidateID, docID uuid.UUID) (*blob.File, error)
}

// ContentService defines the interface for the institutional pages.
type ContentService interface {
	Home(ctx context.Context) (*dto.HomeResponse, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, slug string) (*models.Service, error)
	About(ctx context.Context) (*dto.AboutResponse, error)
	ListNews(ctx context.Context) ([]models.News, error)
	GetNews(ctx context.Context, slug string) (*models.News, error)
	ContactPage(ctx context.Context) (*dto.ContactPageResponse, error)
	SubmitContactMessage(ctx context.Context, req *dto.ContactMessageRequest) (*models.ContactMessage, error)
	UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (*models.CompanySettings, error)
	CreateVideo(ctx context.Context, req *dto.CreateVideoRequest) (*models.HomeVideo, error)
	ActivateVideo(ctx context.Context, id uint) (*models.HomeVideo, error)
	ListContactMessages(ctx context.Context, unreadOnly bool) ([]models.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id uint) error
}

// TokenStore keeps refresh tokens.
type TokenStore interface {
	Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Consume(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}

// FileStore keeps uploaded files and validates their content.
type FileStore interface {
	Save(ctx context.Context, dir string, r io.Reader, allowed ...string) (string, error)
	Open(ctx context.Context, key string) (*blob.File, error)
	Delete(ctx context.Context, key string) error
}

// ContentStore is the site content repository.
type ContentStore interface {
	GetSettings(ctx context.Context) (models.CompanySettings, error)
	SaveSettings(ctx context.Context, settings *models.CompanySettings) error
	ListCertifications(ctx context.Context) ([]models.Certification, error)
	ListActiveCarousel(ctx context.Context) ([]models.CarouselImage, error)
	ListNews(ctx context.Context, limit int) ([]models.News, error)
	GetNewsBySlug(ctx context.Context, slug string) (*models.News, error)
	ListActiveServices(ctx context.Context, limit int) ([]models.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error)
	ListOperatingBases(ctx context.Context) ([]models.OperatingBase, error)
	ListContactChannels(ctx context.Context) ([]models.ContactChannel, error)
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error
	ListContactMessages(ctx context.Context, unreadOnly bool) ([]models.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id uint) error
	ActiveVideo(ctx context.Context) (*models.HomeVideo, error)
	CreateVideo(ctx context.Context, v *models.HomeVideo) error
	ActivateVideo(ctx context.Context, id uint) (*models.HomeVideo, error)
}
