package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"nortetech-site/internal/models"
	"nortetech-site/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepo implements the storage.ProfileRepository interface using PostgreSQL.
type ProfileRepo struct {
	db Querier
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// WithTx creates a new ProfileRepo bound to the transaction.
func (r *ProfileRepo) WithTx(tx pgx.Tx) storage.ProfileRepository {
	return &ProfileRepo{db: tx}
}

var _ storage.ProfileRepository = (*ProfileRepo)(nil)

const profileColumns = `user_id, full_name, phone, resume_file, updated_at`

func scanProfile(row rowScanner) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.UserID, &p.FullName, &p.Phone, &p.ResumeFile, &p.UpdatedAt)
	return p, err
}

// GetByUserID retrieves the profile of a user.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	p, err := scanProfile(r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM candidate_profiles WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, logAndWrap(err, "to get profile of user %s", userID)
	}
	return &p, nil
}

// Upsert creates or replaces the name and phone of a profile, keeping its résumé.
func (r *ProfileRepo) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query := `
		INSERT INTO candidate_profiles (user_id, full_name, phone, resume_file, updated_at)
		VALUES ($1, $2, $3, '', NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET full_name = EXCLUDED.full_name, phone = EXCLUDED.phone, updated_at = NOW()
		RETURNING ` + profileColumns

	p, err := scanProfile(r.db.QueryRow(ctx, query, profile.UserID, profile.FullName, profile.Phone))
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, fmt.Errorf("failed to save profile: unknown user: %w", storage.ErrNotFound)
		}
		return nil, logAndWrap(err, "to save profile of user %s", profile.UserID)
	}
	return &p, nil
}

// SetResumeFile stores the blob key of the uploaded résumé, creating the profile if needed.
func (r *ProfileRepo) SetResumeFile(ctx context.Context, userID uuid.UUID, key string) (*models.Profile, error) {
	query := `
		INSERT INTO candidate_profiles (user_id, full_name, phone, resume_file, updated_at)
		VALUES ($1, '', '', $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET resume_file = EXCLUDED.resume_file, updated_at = NOW()
		RETURNING ` + profileColumns

	p, err := scanProfile(r.db.QueryRow(ctx, query, userID, key))
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, fmt.Errorf("failed to save resume: unknown user: %w", storage.ErrNotFound)
		}
		return nil, logAndWrap(err, "to save resume of user %s", userID)
	}
	return &p, nil
}

// GetResume loads the education, experience and course lists of a user.
func (r *ProfileRepo) GetResume(ctx context.Context, userID uuid.UUID) (*models.ResumeSnapshot, error) {
	resume := &models.ResumeSnapshot{}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, course, institution, level, end_date
		FROM educations WHERE user_id = $1 ORDER BY end_date DESC NULLS FIRST`, userID)
	if err != nil {
		return nil, logAndWrap(err, "to query educations of user %s", userID)
	}
	resume.Educations, err = collect(rows, func(row rowScanner) (models.Education, error) {
		var e models.Education
		err := row.Scan(&e.ID, &e.UserID, &e.Course, &e.Institution, &e.Level, &e.EndDate)
		return e, err
	})
	if err != nil {
		return nil, logAndWrap(err, "to scan educations of user %s", userID)
	}

	rows, err = r.db.Query(ctx, `
		SELECT id, user_id, role, company, description, start_date, end_date
		FROM experiences WHERE user_id = $1 ORDER BY start_date DESC`, userID)
	if err != nil {
		return nil, logAndWrap(err, "to query experiences of user %s", userID)
	}
	resume.Experiences, err = collect(rows, func(row rowScanner) (models.Experience, error) {
		var e models.Experience
		err := row.Scan(&e.ID, &e.UserID, &e.Role, &e.Company, &e.Description, &e.StartDate, &e.EndDate)
		return e, err
	})
	if err != nil {
		return nil, logAndWrap(err, "to scan experiences of user %s", userID)
	}

	rows, err = r.db.Query(ctx, `
		SELECT id, user_id, name, institution, hours, completion_year
		FROM courses WHERE user_id = $1 ORDER BY completion_year DESC`, userID)
	if err != nil {
		return nil, logAndWrap(err, "to query courses of user %s", userID)
	}
	resume.Courses, err = collect(rows, func(row rowScanner) (models.Course, error) {
		var c models.Course
		err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Institution, &c.Hours, &c.CompletionYear)
		return c, err
	})
	if err != nil {
		return nil, logAndWrap(err, "to scan courses of user %s", userID)
	}

	return resume, nil
}

// AddEducation inserts an academic entry.
func (r *ProfileRepo) AddEducation(ctx context.Context, e *models.Education) (*models.Education, error) {
	created := *e
	created.ID = uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO educations (id, user_id, course, institution, level, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		created.ID, created.UserID, created.Course, created.Institution, created.Level, created.EndDate)
	if err != nil {
		return nil, logAndWrap(err, "to add education for user %s", e.UserID)
	}
	return &created, nil
}

// AddExperience inserts a professional entry.
func (r *ProfileRepo) AddExperience(ctx context.Context, e *models.Experience) (*models.Experience, error) {
	created := *e
	created.ID = uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO experiences (id, user_id, role, company, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		created.ID, created.UserID, created.Role, created.Company, created.Description, created.StartDate, created.EndDate)
	if err != nil {
		return nil, logAndWrap(err, "to add experience for user %s", e.UserID)
	}
	return &created, nil
}

// AddCourse inserts an extra course.
func (r *ProfileRepo) AddCourse(ctx context.Context, c *models.Course) (*models.Course, error) {
	created := *c
	created.ID = uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO courses (id, user_id, name, institution, hours, completion_year)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		created.ID, created.UserID, created.Name, created.Institution, created.Hours, created.CompletionYear)
	if err != nil {
		return nil, logAndWrap(err, "to add course for user %s", c.UserID)
	}
	return &created, nil
}

// DeleteEducation removes an entry owned by userID.
func (r *ProfileRepo) DeleteEducation(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteOwned(ctx, "educations", userID, id)
}

// DeleteExperience removes an entry owned by userID.
func (r *ProfileRepo) DeleteExperience(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteOwned(ctx, "experiences", userID, id)
}

// DeleteCourse removes an entry owned by userID.
func (r *ProfileRepo) DeleteCourse(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteOwned(ctx, "courses", userID, id)
}

// deleteOwned deletes by id and owner so a user can never remove another user's row.
// table is always one of the package's constants.
func (r *ProfileRepo) deleteOwned(ctx context.Context, table string, userID, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return logAndWrap(err, "to delete from %s %s", table, id)
	}
	if cmdTag.RowsAffected() == 0 {
		log.Printf("Nothing deleted from %s for id %s and user %s\n", table, id, userID)
		return storage.ErrNotFound
	}
	return nil
}
