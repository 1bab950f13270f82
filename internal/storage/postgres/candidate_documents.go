package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"nortetech-site/internal/models"
	"nortetech-site/internal/storage"
	"nortetech-site/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const candidateDocumentSelect = `
	SELECT d.id, d.candidate_id, d.doc_type_id, t.title, d.file, d.status, d.rejection_reason,
	       d.uploaded_at, d.created_at, d.updated_at
	FROM candidate_documents d
	JOIN document_types t ON t.id = d.doc_type_id`

// CandidateDocumentRepo implements the storage.CandidateDocumentRepository interface using PostgreSQL.
type CandidateDocumentRepo struct {
	db Querier
}

// NewCandidateDocumentRepo creates a new CandidateDocumentRepo.
func NewCandidateDocumentRepo(db *pgxpool.Pool) *CandidateDocumentRepo {
	return &CandidateDocumentRepo{db: db}
}

// WithTx creates a new CandidateDocumentRepo with the transaction.
func (r *CandidateDocumentRepo) WithTx(tx pgx.Tx) storage.CandidateDocumentRepository {
	return &CandidateDocumentRepo{db: tx}
}

var _ storage.CandidateDocumentRepository = (*CandidateDocumentRepo)(nil)

func scanCandidateDocument(row rowScanner) (models.CandidateDocument, error) {
	var d models.CandidateDocument
	err := row.Scan(
		&d.ID,
		&d.CandidateID,
		&d.DocTypeID,
		&d.DocTypeTitle,
		&d.File,
		&d.Status,
		&d.RejectionReason,
		&d.UploadedAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

// Create requests a document type from a candidate. Each pair exists at most once.
func (r *CandidateDocumentRepo) Create(ctx context.Context, candidateID, docTypeID uuid.UUID) (*models.CandidateDocument, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO candidate_documents (id, candidate_id, doc_type_id, status, rejection_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, '', NOW(), NOW())`,
		id, candidateID, docTypeID, models.DocumentStatusPending)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, fmt.Errorf("document already requested: %w", storage.ErrConflict)
		case pgForeignKeyViolation:
			return nil, fmt.Errorf("failed to request document: unknown candidate or type: %w", storage.ErrNotFound)
		}
		return nil, logAndWrap(err, "to request document for candidate %s", candidateID)
	}

	log.Printf("Document %s requested from candidate %s", docTypeID, candidateID)
	return r.GetByID(ctx, id)
}

// GetByID retrieves one requested document.
func (r *CandidateDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CandidateDocument, error) {
	d, err := scanCandidateDocument(r.db.QueryRow(ctx, candidateDocumentSelect+` WHERE d.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, logAndWrap(err, "to get candidate document %s", id)
	}
	return &d, nil
}

// ListByCandidate returns the documents requested from a candidate in request order.
func (r *CandidateDocumentRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.CandidateDocument, error) {
	rows, err := r.db.Query(ctx, candidateDocumentSelect+` WHERE d.candidate_id = $1 ORDER BY d.created_at, t.title`, candidateID)
	if err != nil {
		return nil, logAndWrap(err, "to query documents of candidate %s", candidateID)
	}
	docs, err := collect(rows, scanCandidateDocument)
	if err != nil {
		return nil, logAndWrap(err, "to scan documents of candidate %s", candidateID)
	}
	return docs, nil
}

// CountByStatus counts documents per status for each of the given candidates.
// Candidates without documents are absent from the result.
func (r *CandidateDocumentRepo) CountByStatus(ctx context.Context, candidateIDs []uuid.UUID) (map[uuid.UUID]models.DocumentCounts, error) {
	counts := make(map[uuid.UUID]models.DocumentCounts, len(candidateIDs))
	if len(candidateIDs) == 0 {
		return counts, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT candidate_id, status, COUNT(*)
		FROM candidate_documents
		WHERE candidate_id = ANY($1::uuid[])
		GROUP BY candidate_id, status`, candidateIDs)
	if err != nil {
		return nil, logAndWrap(err, "to count candidate documents")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			candidateID uuid.UUID
			status      models.DocumentStatus
			n           int
		)
		if err := rows.Scan(&candidateID, &status, &n); err != nil {
			return nil, logAndWrap(err, "to scan document counts")
		}
		if counts[candidateID] == nil {
			counts[candidateID] = models.DocumentCounts{}
		}
		counts[candidateID][status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, logAndWrap(err, "to read document counts")
	}
	return counts, nil
}

// MarkSubmitted records an upload: the file reference is replaced, the status becomes
// SUBMITTED and any rejection reason is cleared, whatever the previous state.
func (r *CandidateDocumentRepo) MarkSubmitted(ctx context.Context, id uuid.UUID, fileKey string) (*models.CandidateDocument, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE candidate_documents
		SET file = $2, status = $3, rejection_reason = '', uploaded_at = NOW(), updated_at = NOW()
		WHERE id = $1`, id, fileKey, models.DocumentStatusSubmitted)
	if err != nil {
		return nil, logAndWrap(err, "to record upload of document %s", id)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Review stores the HR decision on a document.
func (r *CandidateDocumentRepo) Review(ctx context.Context, req *dto.ReviewDocumentRequest) (*models.CandidateDocument, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE candidate_documents
		SET status = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $1 AND candidate_id = $2`, req.ID, req.CandidateID, req.Status, req.RejectionReason)
	if err != nil {
		return nil, logAndWrap(err, "to review document %s", req.ID)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}
	log.Printf("Document %s of candidate %s reviewed as %s", req.ID, req.CandidateID, req.Status)
	return r.GetByID(ctx, req.ID)
}
