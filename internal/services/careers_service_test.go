package services_test

import (
	"context"
	"testing"

	"nortetech-site/internal/models"
	"nortetech-site/internal/services"
	"nortetech-site/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type careersFixture struct {
	jobs       *MockJobRepository
	profiles   *MockProfileRepository
	users      *MockUserRepository
	candidates *MockCandidateRepository
	tx         *fakeTxManager
	service    services.CareersService
}

func newCareersFixture() *careersFixture {
	f := &careersFixture{
		jobs:       new(MockJobRepository),
		profiles:   new(MockProfileRepository),
		users:      new(MockUserRepository),
		candidates: new(MockCandidateRepository),
	}
	f.tx = &fakeTxManager{repos: storage.Careers{Jobs: f.jobs, Candidates: f.candidates}}
	f.service = services.NewCareersService(f.jobs, f.profiles, f.users, f.candidates, f.tx)
	return f
}

func completeProfile(userID uuid.UUID) *models.Profile {
	return &models.Profile{UserID: userID, FullName: "Maria Souza", Phone: "92999990000", ResumeFile: "resumes/x/cv.pdf"}
}

func TestCareersService_Apply(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	jobID := uuid.New()
	user := &models.User{ID: userID, Name: "maria", Email: "maria@example.com"}
	activeJob := &models.Job{ID: jobID, Title: "Eletricista", IsActive: true}

	t.Run("Success copies the profile snapshot", func(t *testing.T) {
		f := newCareersFixture()
		resume := &models.ResumeSnapshot{Courses: []models.Course{{Name: "NR-10"}}}

		f.jobs.On("GetByID", ctx, jobID).Return(activeJob, nil)
		f.users.On("GetByID", ctx, userID).Return(user, nil)
		f.profiles.On("GetByUserID", ctx, userID).Return(completeProfile(userID), nil)
		f.profiles.On("GetResume", ctx, userID).Return(resume, nil)
		f.candidates.On("ExistsForEmailAndJob", ctx, user.Email, &jobID).Return(false, nil)
		f.candidates.On("Create", ctx, mock.MatchedBy(func(c *models.Candidate) bool {
			return c.Name == "Maria Souza" &&
				c.Phone == "92999990000" &&
				c.ResumeFile == "resumes/x/cv.pdf" &&
				c.Email == user.Email &&
				c.Status == models.CandidateStatusNew &&
				*c.UserID == userID &&
				*c.JobID == jobID &&
				len(c.ResumeSnapshot.Courses) == 1
		})).Return(&models.Candidate{ID: uuid.New(), Status: models.CandidateStatusNew}, nil)

		created, err := f.service.Apply(ctx, userID, jobID)

		require.NoError(t, err)
		assert.Equal(t, models.CandidateStatusNew, created.Status)
		assert.Equal(t, 1, f.tx.calls)
		f.candidates.AssertExpectations(t)
	})

	t.Run("Inactive job is not found", func(t *testing.T) {
		f := newCareersFixture()
		f.jobs.On("GetByID", ctx, jobID).Return(&models.Job{ID: jobID, IsActive: false}, nil)

		_, err := f.service.Apply(ctx, userID, jobID)

		assert.ErrorIs(t, err, services.ErrNotFound)
		f.candidates.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Missing job is not found", func(t *testing.T) {
		f := newCareersFixture()
		f.jobs.On("GetByID", ctx, jobID).Return(nil, storage.ErrNotFound)

		_, err := f.service.Apply(ctx, userID, jobID)

		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("Profile without resume is incomplete", func(t *testing.T) {
		f := newCareersFixture()
		profile := completeProfile(userID)
		profile.ResumeFile = ""

		f.jobs.On("GetByID", ctx, jobID).Return(activeJob, nil)
		f.users.On("GetByID", ctx, userID).Return(user, nil)
		f.profiles.On("GetByUserID", ctx, userID).Return(profile, nil)

		_, err := f.service.Apply(ctx, userID, jobID)

		assert.ErrorIs(t, err, services.ErrIncompleteProfile)
		assert.Equal(t, 0, f.tx.calls)
	})

	t.Run("User without profile is incomplete", func(t *testing.T) {
		f := newCareersFixture()
		f.jobs.On("GetByID", ctx, jobID).Return(activeJob, nil)
		f.users.On("GetByID", ctx, userID).Return(user, nil)
		f.profiles.On("GetByUserID", ctx, userID).Return(nil, storage.ErrNotFound)

		_, err := f.service.Apply(ctx, userID, jobID)

		assert.ErrorIs(t, err, services.ErrIncompleteProfile)
	})

	t.Run("Second application is a duplicate", func(t *testing.T) {
		f := newCareersFixture()
		f.jobs.On("GetByID", ctx, jobID).Return(activeJob, nil)
		f.users.On("GetByID", ctx, userID).Return(user, nil)
		f.profiles.On("GetByUserID", ctx, userID).Return(completeProfile(userID), nil)
		f.profiles.On("GetResume", ctx, userID).Return(&models.ResumeSnapshot{}, nil)
		f.candidates.On("ExistsForEmailAndJob", ctx, user.Email, &jobID).Return(true, nil)

		_, err := f.service.Apply(ctx, userID, jobID)

		assert.ErrorIs(t, err, services.ErrDuplicateApplication)
		f.candidates.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unique violation is a duplicate", func(t *testing.T) {
		f := newCareersFixture()
		f.jobs.On("GetByID", ctx, jobID).Return(activeJob, nil)
		f.users.On("GetByID", ctx, userID).Return(user, nil)
		f.profiles.On("GetByUserID", ctx, userID).Return(completeProfile(userID), nil)
		f.profiles.On("GetResume", ctx, userID).Return(&models.ResumeSnapshot{}, nil)
		f.candidates.On("ExistsForEmailAndJob", ctx, user.Email, &jobID).Return(false, nil)
		f.candidates.On("Create", ctx, mock.Anything).Return(nil, storage.ErrConflict)

		_, err := f.service.Apply(ctx, userID, jobID)

		assert.ErrorIs(t, err, services.ErrDuplicateApplication)
	})
}

func TestCareersService_ListOpenJobs(t *testing.T) {
	ctx := context.Background()
	f := newCareersFixture()
	jobs := []models.Job{{ID: uuid.New(), Title: "Técnico", IsActive: true}}
	f.jobs.On("ListActive", ctx).Return(jobs, nil)

	got, err := f.service.ListOpenJobs(ctx)

	require.NoError(t, err)
	assert.Equal(t, jobs, got)
}

func TestCareersService_ListMyApplications(t *testing.T) {
	ctx := context.Background()
	f := newCareersFixture()
	user := &models.User{ID: uuid.New(), Email: "ana@example.com"}
	apps := []models.Candidate{{ID: uuid.New()}}

	f.users.On("GetByID", ctx, user.ID).Return(user, nil)
	f.candidates.On("ListByUser", ctx, user.ID, user.Email).Return(apps, nil)

	got, err := f.service.ListMyApplications(ctx, user.ID)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
