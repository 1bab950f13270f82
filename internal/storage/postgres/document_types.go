package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"nortetech-site/internal/models"
	"nortetech-site/internal/storage"
	"nortetech-site/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const documentTypeColumns = `id, title, description, created_at`

// DocumentTypeRepo implements the storage.DocumentTypeRepository interface using PostgreSQL.
type DocumentTypeRepo struct {
	db Querier
}

// NewDocumentTypeRepo creates a new DocumentTypeRepo.
func NewDocumentTypeRepo(db *pgxpool.Pool) *DocumentTypeRepo {
	return &DocumentTypeRepo{db: db}
}

// WithTx creates a new DocumentTypeRepo with the transaction.
func (r *DocumentTypeRepo) WithTx(tx pgx.Tx) storage.DocumentTypeRepository {
	return &DocumentTypeRepo{db: tx}
}

var _ storage.DocumentTypeRepository = (*DocumentTypeRepo)(nil)

func scanDocumentType(row rowScanner) (models.DocumentType, error) {
	var d models.DocumentType
	err := row.Scan(&d.ID, &d.Title, &d.Description, &d.CreatedAt)
	return d, err
}

// Create adds a catalog entry. Titles are unique.
func (r *DocumentTypeRepo) Create(ctx context.Context, req *dto.CreateDocumentTypeRequest) (*models.DocumentType, error) {
	query := `
		INSERT INTO document_types (id, title, description, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING ` + documentTypeColumns

	d, err := scanDocumentType(r.db.QueryRow(ctx, query, uuid.New(), strings.TrimSpace(req.Title), req.Description))
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, fmt.Errorf("document type %q already exists: %w", req.Title, storage.ErrConflict)
		}
		return nil, logAndWrap(err, "to create document type")
	}
	log.Printf("Document type created successfully with ID: %s", d.ID)
	return &d, nil
}

// GetByID retrieves a catalog entry.
func (r *DocumentTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.DocumentType, error) {
	d, err := scanDocumentType(r.db.QueryRow(ctx, `SELECT `+documentTypeColumns+` FROM document_types WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, logAndWrap(err, "to get document type %s", id)
	}
	return &d, nil
}

// List returns the catalog ordered by title.
func (r *DocumentTypeRepo) List(ctx context.Context) ([]models.DocumentType, error) {
	rows, err := r.db.Query(ctx, `SELECT `+documentTypeColumns+` FROM document_types ORDER BY title`)
	if err != nil {
		return nil, logAndWrap(err, "to query document types")
	}
	types, err := collect(rows, scanDocumentType)
	if err != nil {
		return nil, logAndWrap(err, "to scan document types")
	}
	return types, nil
}

// EnsureTitles inserts the entries whose title is not in the catalog yet and
// returns how many were added.
func (r *DocumentTypeRepo) EnsureTitles(ctx context.Context, types []models.DocumentType) (int, error) {
	added := 0
	for _, t := range types {
		cmdTag, err := r.db.Exec(ctx, `
			INSERT INTO document_types (id, title, description, created_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (title) DO NOTHING`, uuid.New(), strings.TrimSpace(t.Title), t.Description)
		if err != nil {
			return added, logAndWrap(err, "to seed document type %q", t.Title)
		}
		added += int(cmdTag.RowsAffected())
	}
	return added, nil
}
