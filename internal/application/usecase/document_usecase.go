package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/velaparedes/backrrhh-api/internal/application/dto"
	"github.com/velaparedes/backrrhh-api/internal/domain"
	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
	"github.com/velaparedes/backrrhh-api/internal/domain/repository"
)

// DocumentUseCase metadata de documentos de convocatoria. La subida del
// archivo en sí es externa; aquí solo se registra URL, tipo y visibilidad.
type DocumentUseCase struct {
	docRepo repository.JobDocumentRepository
	jobRepo repository.JobPostingRepository
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(docRepo repository.JobDocumentRepository, jobRepo repository.JobPostingRepository) *DocumentUseCase {
	return &DocumentUseCase{docRepo: docRepo, jobRepo: jobRepo}
}

// Register registra la metadata de un documento de la convocatoria jobID.
func (uc *DocumentUseCase) Register(ctx context.Context, jobID string, in dto.CreateJobDocumentRequest) (*dto.JobDocumentResponse, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.ValidDocumentType(in.DocumentType) {
		return nil, domain.ErrInvalidInput
	}
	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}
	doc := &entity.JobDocument{
		ID:           uuid.New().String(),
		JobPostingID: job.ID,
		Title:        in.Title,
		DocumentURL:  in.DocumentURL,
		DocumentType: in.DocumentType,
		IsPublic:     isPublic,
		UploadedAt:   time.Now(),
	}
	if err := uc.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// ListByJob lista los documentos de una convocatoria. Con onlyPublic en true
// se omiten los documentos ocultos al portal público.
func (uc *DocumentUseCase) ListByJob(ctx context.Context, jobID string, onlyPublic bool) ([]dto.JobDocumentResponse, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	docs, err := uc.docRepo.ListByJobPosting(ctx, jobID, onlyPublic)
	if err != nil {
		return nil, err
	}
	items := make([]dto.JobDocumentResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, *toDocumentResponse(d))
	}
	return items, nil
}

// SetVisibility cambia la visibilidad pública de un documento.
func (uc *DocumentUseCase) SetVisibility(ctx context.Context, id string, isPublic bool) error {
	doc, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	return uc.docRepo.UpdateVisibility(ctx, id, isPublic)
}

// Delete elimina la metadata de un documento.
func (uc *DocumentUseCase) Delete(ctx context.Context, id string) error {
	doc, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	return uc.docRepo.Delete(ctx, id)
}

func toDocumentResponse(d *entity.JobDocument) *dto.JobDocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.JobDocumentResponse{
		ID:           d.ID,
		JobPostingID: d.JobPostingID,
		Title:        d.Title,
		DocumentURL:  d.DocumentURL,
		DocumentType: d.DocumentType,
		IsPublic:     d.IsPublic,
		UploadedAt:   d.UploadedAt,
	}
}
