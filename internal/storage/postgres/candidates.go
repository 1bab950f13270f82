package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"nortetech-site/internal/models"
	"nortetech-site/internal/storage"
	"nortetech-site/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// candidateSelect joins the job so the title is available for display.
const candidateSelect = `
	SELECT c.id, c.job_id, j.title, c.user_id, c.name, c.email, c.phone, c.resume_file,
	       c.message, c.sent_at, c.status, c.hr_notes, c.resume_snapshot, c.updated_at
	FROM candidates c
	LEFT JOIN jobs j ON j.id = c.job_id`

// CandidateRepo implements the storage.CandidateRepository interface using PostgreSQL.
type CandidateRepo struct {
	db Querier
}

// NewCandidateRepo creates a new CandidateRepo.
func NewCandidateRepo(db *pgxpool.Pool) *CandidateRepo {
	return &CandidateRepo{db: db}
}

// WithTx creates a new CandidateRepo with the transaction.
func (r *CandidateRepo) WithTx(tx pgx.Tx) storage.CandidateRepository {
	return &CandidateRepo{db: tx}
}

var _ storage.CandidateRepository = (*CandidateRepo)(nil)

func scanCandidate(row rowScanner) (models.Candidate, error) {
	var c models.Candidate
	err := row.Scan(
		&c.ID,
		&c.JobID,
		&c.JobTitle,
		&c.UserID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.ResumeFile,
		&c.Message,
		&c.SentAt,
		&c.Status,
		&c.HRNotes,
		&c.ResumeSnapshot,
		&c.UpdatedAt,
	)
	return c, err
}

// Create stores a new application. A second application for the same e-mail and
// job violates candidates_email_job_key and is reported as storage.ErrConflict.
func (r *CandidateRepo) Create(ctx context.Context, c *models.Candidate) (*models.Candidate, error) {
	status := c.Status
	if status == "" {
		status = models.CandidateStatusNew
	}

	query := `
		WITH c AS (
			INSERT INTO candidates (id, job_id, user_id, name, email, phone, resume_file, message,
			                        sent_at, status, hr_notes, resume_snapshot, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), $9, '', $10, NOW())
			RETURNING *
		)
		SELECT c.id, c.job_id, j.title, c.user_id, c.name, c.email, c.phone, c.resume_file,
		       c.message, c.sent_at, c.status, c.hr_notes, c.resume_snapshot, c.updated_at
		FROM c LEFT JOIN jobs j ON j.id = c.job_id`

	created, err := scanCandidate(r.db.QueryRow(ctx, query,
		uuid.New(),
		c.JobID,
		c.UserID,
		c.Name,
		normalizeEmail(c.Email),
		c.Phone,
		c.ResumeFile,
		c.Message,
		status,
		c.ResumeSnapshot,
	))
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			log.Printf("Error creating candidate: %s already applied (constraint %s)\n", c.Email, constraintName(err))
			return nil, fmt.Errorf("failed to create candidate: %w", storage.ErrConflict)
		case pgForeignKeyViolation:
			log.Printf("Error creating candidate: invalid reference: %v\n", err)
			return nil, fmt.Errorf("failed to create candidate: invalid job or user: %w", storage.ErrNotFound)
		}
		return nil, logAndWrap(err, "to create candidate")
	}

	log.Printf("Candidate created successfully with ID: %s", created.ID)
	return &created, nil
}

// GetByID retrieves a candidate by its ID.
func (r *CandidateRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	c, err := scanCandidate(r.db.QueryRow(ctx, candidateSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Candidate not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		return nil, logAndWrap(err, "to get candidate %s", id)
	}
	return &c, nil
}

// ExistsForEmailAndJob reports whether an application exists for the pair. A nil
// jobID addresses the general talent pool.
func (r *CandidateRepo) ExistsForEmailAndJob(ctx context.Context, email string, jobID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM candidates
			WHERE lower(email) = $1 AND job_id IS NOT DISTINCT FROM $2
		)`, normalizeEmail(email), jobID).Scan(&exists)
	if err != nil {
		return false, logAndWrap(err, "to check existing application for %s", email)
	}
	return exists, nil
}

// List returns candidates for HR, most recent first.
func (r *CandidateRepo) List(ctx context.Context, req *dto.ListCandidatesRequest) ([]models.Candidate, error) {
	var conditions []string
	args := []any{}

	if req.Status != nil {
		args = append(args, *req.Status)
		conditions = append(conditions, fmt.Sprintf("c.status = $%d", len(args)))
	}
	if req.TalentPool {
		conditions = append(conditions, "c.job_id IS NULL")
	} else if req.JobID != "" {
		jobID, err := uuid.Parse(req.JobID)
		if err != nil {
			return nil, fmt.Errorf("invalid job filter %q: %w", req.JobID, err)
		}
		args = append(args, jobID)
		conditions = append(conditions, fmt.Sprintf("c.job_id = $%d", len(args)))
	}
	if search := strings.TrimSpace(req.Search); search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("(c.name ILIKE $%d OR c.email ILIKE $%d OR c.hr_notes ILIKE $%d)", len(args), len(args), len(args)))
	}
	if req.SentFrom != "" {
		from, err := time.Parse(time.DateOnly, req.SentFrom)
		if err != nil {
			return nil, fmt.Errorf("invalid sent_from filter %q: %w", req.SentFrom, err)
		}
		args = append(args, from)
		conditions = append(conditions, fmt.Sprintf("c.sent_at >= $%d", len(args)))
	}
	if req.SentTo != "" {
		to, err := time.Parse(time.DateOnly, req.SentTo)
		if err != nil {
			return nil, fmt.Errorf("invalid sent_to filter %q: %w", req.SentTo, err)
		}
		// the whole end day is included
		args = append(args, to.AddDate(0, 0, 1))
		conditions = append(conditions, fmt.Sprintf("c.sent_at < $%d", len(args)))
	}

	query := buildListQuery(candidateSelect, conditions, "c.sent_at DESC", &args, req.Limit, req.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, logAndWrap(err, "to query candidates")
	}
	candidates, err := collect(rows, scanCandidate)
	if err != nil {
		return nil, logAndWrap(err, "to scan candidates")
	}
	return candidates, nil
}

// ListByUser returns the applications of a user: those linked to the account, plus
// unlinked ones made with the same e-mail.
func (r *CandidateRepo) ListByUser(ctx context.Context, userID uuid.UUID, email string) ([]models.Candidate, error) {
	query := candidateSelect + `
		WHERE c.user_id = $1 OR (c.user_id IS NULL AND lower(c.email) = $2)
		ORDER BY c.sent_at DESC`

	rows, err := r.db.Query(ctx, query, userID, normalizeEmail(email))
	if err != nil {
		return nil, logAndWrap(err, "to query applications of user %s", userID)
	}
	candidates, err := collect(rows, scanCandidate)
	if err != nil {
		return nil, logAndWrap(err, "to scan applications of user %s", userID)
	}
	return candidates, nil
}

// UpdateReview changes the status and/or HR notes of a candidate.
func (r *CandidateRepo) UpdateReview(ctx context.Context, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	var setClauses []string
	args := []any{}

	if req.Status != nil {
		args = append(args, *req.Status)
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if req.HRNotes != nil {
		args = append(args, *req.HRNotes)
		setClauses = append(setClauses, fmt.Sprintf("hr_notes = $%d", len(args)))
	}
	if len(setClauses) == 0 {
		log.Printf("UpdateReview called for candidate %s with no fields to change.", req.ID)
		return r.GetByID(ctx, req.ID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`UPDATE candidates SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), len(args))
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, logAndWrap(err, "to update candidate %s", req.ID)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}

	log.Printf("Candidate updated successfully: %s", req.ID)
	return r.GetByID(ctx, req.ID)
}
