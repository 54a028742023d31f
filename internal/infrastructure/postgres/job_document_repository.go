package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
	"github.com/velaparedes/backrrhh-api/internal/domain/repository"
)

var _ repository.JobDocumentRepository = (*JobDocumentRepo)(nil)

// JobDocumentRepo implementación del puerto JobDocumentRepository sobre PostgreSQL.
type JobDocumentRepo struct {
	pool *pgxpool.Pool
}

// NewJobDocumentRepository construye el adaptador de persistencia para documentos.
func NewJobDocumentRepository(pool *pgxpool.Pool) *JobDocumentRepo {
	return &JobDocumentRepo{pool: pool}
}

// Create persiste la metadata de un documento.
func (r *JobDocumentRepo) Create(ctx context.Context, doc *entity.JobDocument) error {
	query := `
		INSERT INTO job_documents (id, job_posting_id, title, document_url, document_type, is_public, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		doc.ID, doc.JobPostingID, doc.Title, doc.DocumentURL, doc.DocumentType, doc.IsPublic, doc.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID. Devuelve (nil, nil) si no existe.
func (r *JobDocumentRepo) GetByID(ctx context.Context, id string) (*entity.JobDocument, error) {
	query := `
		SELECT id, job_posting_id, title, document_url, document_type, is_public, uploaded_at
		FROM job_documents WHERE id = $1`
	var d entity.JobDocument
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.JobPostingID, &d.Title, &d.DocumentURL, &d.DocumentType, &d.IsPublic, &d.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job document: %w", err)
	}
	return &d, nil
}

// ListByJobPosting lista los documentos de una convocatoria, más recientes
// primero. Con onlyPublic en true omite los ocultos al portal.
func (r *JobDocumentRepo) ListByJobPosting(ctx context.Context, jobPostingID string, onlyPublic bool) ([]*entity.JobDocument, error) {
	query := `
		SELECT id, job_posting_id, title, document_url, document_type, is_public, uploaded_at
		FROM job_documents WHERE job_posting_id = $1`
	if onlyPublic {
		query += ` AND is_public = TRUE`
	}
	query += ` ORDER BY uploaded_at DESC`
	rows, err := r.pool.Query(ctx, query, jobPostingID)
	if err != nil {
		return nil, fmt.Errorf("list job documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.JobDocument
	for rows.Next() {
		var d entity.JobDocument
		if err := rows.Scan(&d.ID, &d.JobPostingID, &d.Title, &d.DocumentURL, &d.DocumentType, &d.IsPublic, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan job document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateVisibility cambia la visibilidad pública de un documento.
func (r *JobDocumentRepo) UpdateVisibility(ctx context.Context, id string, isPublic bool) error {
	_, err := r.pool.Exec(ctx, `UPDATE job_documents SET is_public = $2 WHERE id = $1`, id, isPublic)
	if err != nil {
		return fmt.Errorf("update job document visibility: %w", err)
	}
	return nil
}

// Delete elimina la metadata de un documento.
func (r *JobDocumentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM job_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job document: %w", err)
	}
	return nil
}
