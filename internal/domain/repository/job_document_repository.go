package repository

import (
	"context"

	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
)

// JobDocumentRepository puerto de persistencia para documentos de convocatoria.
type JobDocumentRepository interface {
	Create(ctx context.Context, doc *entity.JobDocument) error
	GetByID(ctx context.Context, id string) (*entity.JobDocument, error)
	ListByJobPosting(ctx context.Context, jobPostingID string, onlyPublic bool) ([]*entity.JobDocument, error)
	UpdateVisibility(ctx context.Context, id string, isPublic bool) error
	Delete(ctx context.Context, id string) error
}
