package postgres

import (
	"context"
	"errors"
	"log"
	"strings"

	"nortetech-site/internal/models"
	"nortetech-site/internal/storage"
	"nortetech-site/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, title, department, location, description, is_active, created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo with the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func scanJob(row rowScanner) (models.Job, error) {
	var j models.Job
	err := row.Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.Description, &j.IsActive, &j.CreatedAt, &j.UpdatedAt)
	return j, err
}

// Create saves a new job posting. Jobs are published unless IsActive is explicitly false.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	query := `
		INSERT INTO jobs (id, title, department, location, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + jobColumns

	job, err := scanJob(r.db.QueryRow(ctx, query,
		uuid.New(),
		strings.TrimSpace(req.Title),
		req.Department,
		req.Location,
		req.Description,
		active,
	))
	if err != nil {
		return nil, logAndWrap(err, "to create job")
	}

	log.Printf("Job created successfully with ID: %s", job.ID)
	return &job, nil
}

// GetByID retrieves a specific job by its ID, active or not.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		return nil, logAndWrap(err, "to get job by ID %s", id)
	}
	return &job, nil
}

// ListActive returns the jobs shown on the careers page, newest first.
func (r *JobRepo) ListActive(ctx context.Context) ([]models.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs WHERE is_active ORDER BY created_at DESC`)
}

// ListAll returns every job for HR, newest first.
func (r *JobRepo) ListAll(ctx context.Context) ([]models.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
}

func (r *JobRepo) list(ctx context.Context, query string) ([]models.Job, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, logAndWrap(err, "to query jobs")
	}
	jobs, err := collect(rows, scanJob)
	if err != nil {
		return nil, logAndWrap(err, "to scan jobs")
	}
	return jobs, nil
}

// SetActive publishes or hides a job.
func (r *JobRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Job, error) {
	query := `UPDATE jobs SET is_active = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + jobColumns
	job, err := scanJob(r.db.QueryRow(ctx, query, id, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, logAndWrap(err, "to update job %s", id)
	}
	log.Printf("Job %s is_active set to %t", id, active)
	return &job, nil
}
