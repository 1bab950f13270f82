package services_test

import (
	"context"
	"io"
	"time"

	"nortetech-site/internal/blob"
	"nortetech-site/internal/models"
	"nortetech-site/internal/storage"
	"nortetech-site/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- repositories ---

type MockUserRepository struct{ mock.Mock }

var _ storage.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, req *dto.CreateUserRequest, role models.Role) (*models.User, error) {
	args := m.Called(ctx, req, role)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) WithTx(tx pgx.Tx) storage.UserRepository { return m }

type MockProfileRepository struct{ mock.Mock }

var _ storage.ProfileRepository = (*MockProfileRepository)(nil)

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*models.Profile)
	return p, args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	args := m.Called(ctx, profile)
	p, _ := args.Get(0).(*models.Profile)
	return p, args.Error(1)
}

func (m *MockProfileRepository) SetResumeFile(ctx context.Context, userID uuid.UUID, key string) (*models.Profile, error) {
	args := m.Called(ctx, userID, key)
	p, _ := args.Get(0).(*models.Profile)
	return p, args.Error(1)
}

func (m *MockProfileRepository) GetResume(ctx context.Context, userID uuid.UUID) (*models.ResumeSnapshot, error) {
	args := m.Called(ctx, userID)
	r, _ := args.Get(0).(*models.ResumeSnapshot)
	return r, args.Error(1)
}

func (m *MockProfileRepository) AddEducation(ctx context.Context, e *models.Education) (*models.Education, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*models.Education)
	return out, args.Error(1)
}

func (m *MockProfileRepository) DeleteEducation(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockProfileRepository) AddExperience(ctx context.Context, e *models.Experience) (*models.Experience, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*models.Experience)
	return out, args.Error(1)
}

func (m *MockProfileRepository) DeleteExperience(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockProfileRepository) AddCourse(ctx context.Context, c *models.Course) (*models.Course, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*models.Course)
	return out, args.Error(1)
}

func (m *MockProfileRepository) DeleteCourse(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockProfileRepository) WithTx(tx pgx.Tx) storage.ProfileRepository { return m }

type MockJobRepository struct{ mock.Mock }

var _ storage.JobRepository = (*MockJobRepository)(nil)

func (m *MockJobRepository) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	j, _ := args.Get(0).(*models.Job)
	return j, args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, id)
	j, _ := args.Get(0).(*models.Job)
	return j, args.Error(1)
}

func (m *MockJobRepository) ListActive(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	j, _ := args.Get(0).([]models.Job)
	return j, args.Error(1)
}

func (m *MockJobRepository) ListAll(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	j, _ := args.Get(0).([]models.Job)
	return j, args.Error(1)
}

func (m *MockJobRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Job, error) {
	args := m.Called(ctx, id, active)
	j, _ := args.Get(0).(*models.Job)
	return j, args.Error(1)
}

func (m *MockJobRepository) WithTx(tx pgx.Tx) storage.JobRepository { return m }

type MockCandidateRepository struct{ mock.Mock }

var _ storage.CandidateRepository = (*MockCandidateRepository)(nil)

func (m *MockCandidateRepository) Create(ctx context.Context, c *models.Candidate) (*models.Candidate, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*models.Candidate)
	return out, args.Error(1)
}

func (m *MockCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.Candidate)
	return out, args.Error(1)
}

func (m *MockCandidateRepository) ExistsForEmailAndJob(ctx context.Context, email string, jobID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCandidateRepository) List(ctx context.Context, req *dto.ListCandidatesRequest) ([]models.Candidate, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).([]models.Candidate)
	return out, args.Error(1)
}

func (m *MockCandidateRepository) ListByUser(ctx context.Context, userID uuid.UUID, email string) ([]models.Candidate, error) {
	args := m.Called(ctx, userID, email)
	out, _ := args.Get(0).([]models.Candidate)
	return out, args.Error(1)
}

func (m *MockCandidateRepository) UpdateReview(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*models.Candidate)
	return out, args.Error(1)
}

func (m *MockCandidateRepository) WithTx(tx pgx.Tx) storage.CandidateRepository { return m }

type MockDocumentTypeRepository struct{ mock.Mock }

var _ storage.DocumentTypeRepository = (*MockDocumentTypeRepository)(nil)

func (m *MockDocumentTypeRepository) Create(ctx context.Context, req *dto.CreateDocumentTypeRequest) (*models.DocumentType, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*models.DocumentType)
	return out, args.Error(1)
}

func (m *MockDocumentTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DocumentType, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.DocumentType)
	return out, args.Error(1)
}

func (m *MockDocumentTypeRepository) List(ctx context.Context) ([]models.DocumentType, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.DocumentType)
	return out, args.Error(1)
}

func (m *MockDocumentTypeRepository) EnsureTitles(ctx context.Context, types []models.DocumentType) (int, error) {
	args := m.Called(ctx, types)
	return args.Int(0), args.Error(1)
}

func (m *MockDocumentTypeRepository) WithTx(tx pgx.Tx) storage.DocumentTypeRepository { return m }

type MockCandidateDocumentRepository struct{ mock.Mock }

var _ storage.CandidateDocumentRepository = (*MockCandidateDocumentRepository)(nil)

func (m *MockCandidateDocumentRepository) Create(ctx context.Context, candidateID, docTypeID uuid.UUID) (*models.CandidateDocument, error) {
	args := m.Called(ctx, candidateID, docTypeID)
	out, _ := args.Get(0).(*models.CandidateDocument)
	return out, args.Error(1)
}

func (m *MockCandidateDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CandidateDocument, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.CandidateDocument)
	return out, args.Error(1)
}

func (m *MockCandidateDocumentRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.CandidateDocument, error) {
	args := m.Called(ctx, candidateID)
	out, _ := args.Get(0).([]models.CandidateDocument)
	return out, args.Error(1)
}

func (m *MockCandidateDocumentRepository) CountByStatus(ctx context.Context, candidateIDs []uuid.UUID) (map[uuid.UUID]models.DocumentCounts, error) {
	args := m.Called(ctx, candidateIDs)
	out, _ := args.Get(0).(map[uuid.UUID]models.DocumentCounts)
	return out, args.Error(1)
}

func (m *MockCandidateDocumentRepository) MarkSubmitted(ctx context.Context, id uuid.UUID, fileKey string) (*models.CandidateDocument, error) {
	args := m.Called(ctx, id, fileKey)
	out, _ := args.Get(0).(*models.CandidateDocument)
	return out, args.Error(1)
}

func (m *MockCandidateDocumentRepository) Review(ctx context.Context, req *dto.ReviewDocumentRequest) (*models.CandidateDocument, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*models.CandidateDocument)
	return out, args.Error(1)
}

func (m *MockCandidateDocumentRepository) WithTx(tx pgx.Tx) storage.CandidateDocumentRepository {
	return m
}

// fakeTxManager runs fn directly against the mocks.
type fakeTxManager struct {
	repos storage.Careers
	calls int
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(repos storage.Careers) error) error {
	f.calls++
	return fn(f.repos)
}

// --- stores ---

type MockTokenStore struct{ mock.Mock }

func (m *MockTokenStore) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	return m.Called(ctx, token, userID, ttl).Error(0)
}

func (m *MockTokenStore) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *MockTokenStore) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type MockFileStore struct{ mock.Mock }

func (m *MockFileStore) Save(ctx context.Context, dir string, r io.Reader, allowed ...string) (string, error) {
	args := m.Called(ctx, dir, r, allowed)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Open(ctx context.Context, key string) (*blob.File, error) {
	args := m.Called(ctx, key)
	out, _ := args.Get(0).(*blob.File)
	return out, args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockContentStore struct{ mock.Mock }

func (m *MockContentStore) GetSettings(ctx context.Context) (models.CompanySettings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(models.CompanySettings)
	return s, args.Error(1)
}

func (m *MockContentStore) SaveSettings(ctx context.Context, settings *models.CompanySettings) error {
	return m.Called(ctx, settings).Error(0)
}

func (m *MockContentStore) ListCertifications(ctx context.Context) ([]models.Certification, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Certification)
	return out, args.Error(1)
}

func (m *MockContentStore) ListActiveCarousel(ctx context.Context) ([]models.CarouselImage, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.CarouselImage)
	return out, args.Error(1)
}

func (m *MockContentStore) ListNews(ctx context.Context, limit int) ([]models.News, error) {
	args := m.Called(ctx, limit)
	out, _ := args.Get(0).([]models.News)
	return out, args.Error(1)
}

func (m *MockContentStore) GetNewsBySlug(ctx context.Context, slug string) (*models.News, error) {
	args := m.Called(ctx, slug)
	out, _ := args.Get(0).(*models.News)
	return out, args.Error(1)
}

func (m *MockContentStore) ListActiveServices(ctx context.Context, limit int) ([]models.Service, error) {
	args := m.Called(ctx, limit)
	out, _ := args.Get(0).([]models.Service)
	return out, args.Error(1)
}

func (m *MockContentStore) GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	args := m.Called(ctx, slug)
	out, _ := args.Get(0).(*models.Service)
	return out, args.Error(1)
}

func (m *MockContentStore) ListOperatingBases(ctx context.Context) ([]models.OperatingBase, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.OperatingBase)
	return out, args.Error(1)
}

func (m *MockContentStore) ListContactChannels(ctx context.Context) ([]models.ContactChannel, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.ContactChannel)
	return out, args.Error(1)
}

func (m *MockContentStore) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockContentStore) ListContactMessages(ctx context.Context, unreadOnly bool) ([]models.ContactMessage, error) {
	args := m.Called(ctx, unreadOnly)
	out, _ := args.Get(0).([]models.ContactMessage)
	return out, args.Error(1)
}

func (m *MockContentStore) MarkContactMessageRead(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockContentStore) ActiveVideo(ctx context.Context) (*models.HomeVideo, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(*models.HomeVideo)
	return out, args.Error(1)
}

func (m *MockContentStore) CreateVideo(ctx context.Context, v *models.HomeVideo) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockContentStore) ActivateVideo(ctx context.Context, id uint) (*models.HomeVideo, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.HomeVideo)
	return out, args.Error(1)
}
