package postgres_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"nortetech-site/internal/database"
	"nortetech-site/internal/models"
	"nortetech-site/internal/storage"
	"nortetech-site/internal/storage/postgres"
	"nortetech-site/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getTestPool connects to TEST_DATABASE_URL, applies migrations and empties the
// tables. Tests are skipped when the variable is unset.
func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewConnectionPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE candidate_documents, document_types, candidates, jobs,
		courses, experiences, educations, candidate_profiles, users CASCADE`)
	require.NoError(t, err)
	return pool
}

func createTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool, email string) *models.User {
	t.Helper()
	user, err := postgres.NewUserRepo(pool).Create(ctx, &dto.CreateUserRequest{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
	}, models.RoleCandidate)
	require.NoError(t, err, "Failed to create test user %s", email)
	return user
}

func createTestJob(t *testing.T, ctx context.Context, pool *pgxpool.Pool, title string) *models.Job {
	t.Helper()
	job, err := postgres.NewJobRepo(pool).Create(ctx, &dto.CreateJobRequest{Title: title, Description: "Descrição"})
	require.NoError(t, err, "Failed to create test job %s", title)
	return job
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()

	createTestUser(t, ctx, pool, "ana@example.com")

	_, err := postgres.NewUserRepo(pool).Create(ctx, &dto.CreateUserRequest{
		Name:     "Other",
		Email:    "ANA@example.com",
		Password: "password123",
	}, models.RoleCandidate)
	assert.ErrorIs(t, err, storage.ErrDuplicateEmail)
}

func TestCandidateRepo_Applications(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()
	repo := postgres.NewCandidateRepo(pool)

	user := createTestUser(t, ctx, pool, "maria@example.com")
	job := createTestJob(t, ctx, pool, "Desenvolvedor Go")

	created, err := repo.Create(ctx, &models.Candidate{
		JobID:  &job.ID,
		UserID: &user.ID,
		Name:   "Maria",
		Email:  "maria@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CandidateStatusNew, created.Status)
	assert.Equal(t, "Desenvolvedor Go", created.JobDisplay())

	t.Run("Duplicate for the same job", func(t *testing.T) {
		exists, err := repo.ExistsForEmailAndJob(ctx, "MARIA@example.com", &job.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		_, err = repo.Create(ctx, &models.Candidate{JobID: &job.ID, Name: "Maria", Email: "maria@example.com"})
		assert.ErrorIs(t, err, storage.ErrConflict)
	})

	t.Run("Talent pool application is separate", func(t *testing.T) {
		exists, err := repo.ExistsForEmailAndJob(ctx, "maria@example.com", nil)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Guest application with the same email is listed", func(t *testing.T) {
		_, err := repo.Create(ctx, &models.Candidate{Name: "Maria", Email: "Maria@Example.com"})
		require.NoError(t, err)

		apps, err := repo.ListByUser(ctx, user.ID, user.Email)
		require.NoError(t, err)
		assert.Len(t, apps, 2)
	})
}

func TestCandidateRepo_ListFilters(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()
	repo := postgres.NewCandidateRepo(pool)

	noted, err := repo.Create(ctx, &models.Candidate{Name: "Carla", Email: "carla@example.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Candidate{Name: "Pedro", Email: "pedro@example.com"})
	require.NoError(t, err)

	notes := "Indicada pela equipe de Manaus"
	_, err = repo.UpdateReview(ctx, &dto.UpdateCandidateRequest{ID: noted.ID, HRNotes: &notes})
	require.NoError(t, err)

	t.Run("Search covers HR notes", func(t *testing.T) {
		got, err := repo.List(ctx, &dto.ListCandidatesRequest{Search: "manaus"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, noted.ID, got[0].ID)
	})

	today := time.Now().UTC()
	yesterday := today.AddDate(0, 0, -1).Format(time.DateOnly)

	t.Run("Sent range includes the end day", func(t *testing.T) {
		got, err := repo.List(ctx, &dto.ListCandidatesRequest{SentFrom: yesterday, SentTo: today.Format(time.DateOnly)})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Sent range before the applications", func(t *testing.T) {
		got, err := repo.List(ctx, &dto.ListCandidatesRequest{SentTo: yesterday})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCandidateDocumentRepo_Lifecycle(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()

	candidate, err := postgres.NewCandidateRepo(pool).Create(ctx, &models.Candidate{Name: "João", Email: "joao@example.com"})
	require.NoError(t, err)

	docTypes := postgres.NewDocumentTypeRepo(pool)
	added, err := docTypes.EnsureTitles(ctx, []models.DocumentType{{Title: "RG"}, {Title: "CPF"}})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = docTypes.EnsureTitles(ctx, []models.DocumentType{{Title: "RG"}})
	require.NoError(t, err)
	assert.Equal(t, 0, added, "existing titles are left alone")

	types, err := docTypes.List(ctx)
	require.NoError(t, err)
	require.Len(t, types, 2)

	repo := postgres.NewCandidateDocumentRepo(pool)
	first, err := repo.Create(ctx, candidate.ID, types[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusPending, first.Status)
	second, err := repo.Create(ctx, candidate.ID, types[1].ID)
	require.NoError(t, err)

	_, err = repo.Create(ctx, candidate.ID, types[0].ID)
	assert.ErrorIs(t, err, storage.ErrConflict, "a type is requested once per candidate")

	rejected, err := repo.Review(ctx, &dto.ReviewDocumentRequest{
		ID:              first.ID,
		CandidateID:     candidate.ID,
		Status:          models.DocumentStatusRejected,
		RejectionReason: "Ilegível",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ilegível", rejected.RejectionReason)

	counts, err := repo.CountByStatus(ctx, []uuid.UUID{candidate.ID})
	require.NoError(t, err)
	assert.Equal(t, "1 Rejeitado(s)", counts[candidate.ID].Summarize().Label)

	resubmitted, err := repo.MarkSubmitted(ctx, first.ID, "candidates/x/y/z.pdf")
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusSubmitted, resubmitted.Status)
	assert.Empty(t, resubmitted.RejectionReason)
	require.NotNil(t, resubmitted.UploadedAt)

	_, err = repo.Review(ctx, &dto.ReviewDocumentRequest{ID: second.ID, CandidateID: uuid.New(), Status: models.DocumentStatusApproved})
	assert.ErrorIs(t, err, storage.ErrNotFound, "documents are reviewed through their own candidate")
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()
	errAbort := errors.New("abort")

	err := postgres.NewTxManager(pool).WithinTx(ctx, func(repos storage.Careers) error {
		if _, err := repos.Candidates.Create(ctx, &models.Candidate{Name: "Rollback", Email: "rollback@example.com"}); err != nil {
			return err
		}
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	exists, err := postgres.NewCandidateRepo(pool).ExistsForEmailAndJob(ctx, "rollback@example.com", nil)
	require.NoError(t, err)
	assert.False(t, exists)
}
