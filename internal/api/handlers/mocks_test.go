package handlers_test

import (
	"context"
	"testing"
	"time"

	"nortetech-site/internal/api/middleware"
	"nortetech-site/internal/auth"
	"nortetech-site/internal/models"
	"nortetech-site/internal/services"
	"nortetech-site/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "handlers-test-secret"

// MockUserService is a mock type for the services.UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenPair, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.User), args.Get(1).(*dto.TokenPair), args.Error(2)
}

func (m *MockUserService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenPair, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenPair), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

var _ services.UserService = (*MockUserService)(nil)

// MockCareersService is a mock type for the services.CareersService interface
type MockCareersService struct {
	mock.Mock
}

func (m *MockCareersService) ListOpenJobs(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockCareersService) Apply(ctx context.Context, userID, jobID uuid.UUID) (*models.Candidate, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCareersService) ListMyApplications(ctx context.Context, userID uuid.UUID) ([]models.Candidate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Candidate), args.Error(1)
}

var _ services.CareersService = (*MockCareersService)(nil)

// MockOnboardingService is a mock type for the services.OnboardingService interface
type MockOnboardingService struct {
	mock.Mock
}

func (m *MockOnboardingService) ListRequestedDocuments(ctx context.Context, candidateID, userID uuid.UUID) (*models.Candidate, []models.CandidateDocument, error) {
	args := m.Called(ctx, candidateID, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Candidate), args.Get(1).([]models.CandidateDocument), args.Error(2)
}

func (m *MockOnboardingService) SubmitDocument(ctx context.Context, req *dto.SubmitDocumentRequest) (*models.CandidateDocument, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CandidateDocument), args.Error(1)
}

var _ services.OnboardingService = (*MockOnboardingService)(nil)

// --- Helpers ---

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// authed wraps the handler with the real JWT middleware.
func authed(h gin.HandlerFunc) []gin.HandlerFunc {
	return []gin.HandlerFunc{middleware.JWTAuthMiddleware(testSecret), h}
}

func bearer(t *testing.T, userID uuid.UUID, role models.Role) string {
	t.Helper()
	token, err := auth.IssueAccessToken(&models.User{ID: userID, Role: role}, testSecret, time.Hour, time.Now())
	require.NoError(t, err)
	return "Bearer " + token
}
