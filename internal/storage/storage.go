package storage

import (
	"context"

	"nortetech-site/internal/models"
	"nortetech-site/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, req *dto.CreateUserRequest, role models.Role) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	WithTx(tx pgx.Tx) UserRepository
}

// ProfileRepository defines the interface for the candidate profile and résumé lists.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	SetResumeFile(ctx context.Context, userID uuid.UUID, key string) (*models.Profile, error)
	GetResume(ctx context.Context, userID uuid.UUID) (*models.ResumeSnapshot, error)

	AddEducation(ctx context.Context, e *models.Education) (*models.Education, error)
	DeleteEducation(ctx context.Context, userID, id uuid.UUID) error
	AddExperience(ctx context.Context, e *models.Experience) (*models.Experience, error)
	DeleteExperience(ctx context.Context, userID, id uuid.UUID) error
	AddCourse(ctx context.Context, c *models.Course) (*models.Course, error)
	DeleteCourse(ctx context.Context, userID, id uuid.UUID) error

	WithTx(tx pgx.Tx) ProfileRepository
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListActive(ctx context.Context) ([]models.Job, error)
	ListAll(ctx context.Context) ([]models.Job, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Job, error)
	WithTx(tx pgx.Tx) JobRepository
}

// CandidateRepository defines the interface for application (candidate) data operations.
type CandidateRepository interface {
	Create(ctx context.Context, c *models.Candidate) (*models.Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	ExistsForEmailAndJob(ctx context.Context, email string, jobID *uuid.UUID) (bool, error)
	List(ctx context.Context, req *dto.ListCandidatesRequest) ([]models.Candidate, error)
	ListByUser(ctx context.Context, userID uuid.UUID, email string) ([]models.Candidate, error)
	UpdateReview(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error)
	WithTx(tx pgx.Tx) CandidateRepository
}

// DocumentTypeRepository defines the interface for the document-type catalog.
type DocumentTypeRepository interface {
	Create(ctx context.Context, req *dto.CreateDocumentTypeRequest) (*models.DocumentType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.DocumentType, error)
	List(ctx context.Context) ([]models.DocumentType, error)
	EnsureTitles(ctx context.Context, types []models.DocumentType) (int, error)
	WithTx(tx pgx.Tx) DocumentTypeRepository
}

// CandidateDocumentRepository defines the interface for requested documents and their uploads.
type CandidateDocumentRepository interface {
	Create(ctx context.Context, candidateID, docTypeID uuid.UUID) (*models.CandidateDocument, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CandidateDocument, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.CandidateDocument, error)
	CountByStatus(ctx context.Context, candidateIDs []uuid.UUID) (map[uuid.UUID]models.DocumentCounts, error)
	MarkSubmitted(ctx context.Context, id uuid.UUID, fileKey string) (*models.CandidateDocument, error)
	Review(ctx context.Context, req *dto.ReviewDocumentRequest) (*models.CandidateDocument, error)
	WithTx(tx pgx.Tx) CandidateDocumentRepository
}

// Careers groups the repositories an application touches inside one transaction.
type Careers struct {
	Jobs       JobRepository
	Candidates CandidateRepository
	Documents  CandidateDocumentRepository
}

// TxManager runs fn inside a database transaction, committing when fn returns nil.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(repos Careers) error) error
}
