package postgres

import (
	"context"
	"fmt"
	"log"

	"nortetech-site/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager implements storage.TxManager on a pgx pool.
type TxManager struct {
	pool       *pgxpool.Pool
	jobs       *JobRepo
	candidates *CandidateRepo
	documents  *CandidateDocumentRepo
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{
		pool:       pool,
		jobs:       NewJobRepo(pool),
		candidates: NewCandidateRepo(pool),
		documents:  NewCandidateDocumentRepo(pool),
	}
}

var _ storage.TxManager = (*TxManager)(nil)

// WithinTx runs fn with transaction-bound repositories. The transaction is rolled
// back when fn returns an error and committed otherwise.
func (m *TxManager) WithinTx(ctx context.Context, fn func(repos storage.Careers) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		log.Printf("WithinTx: Error beginning transaction: %v", err)
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // No-op after a successful commit

	repos := storage.Careers{
		Jobs:       m.jobs.WithTx(tx),
		Candidates: m.candidates.WithTx(tx),
		Documents:  m.documents.WithTx(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("WithinTx: Error committing transaction: %v", err)
		return fmt.Errorf("internal error committing transaction: %w", err)
	}
	return nil
}
