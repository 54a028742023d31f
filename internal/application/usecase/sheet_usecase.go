package usecase

import (
	"context"

	"github.com/velaparedes/backrrhh-api/internal/domain"
	"github.com/velaparedes/backrrhh-api/internal/domain/repository"
	"github.com/velaparedes/backrrhh-api/pkg/slug"
)

// SheetUseCase genera la ficha PDF de una convocatoria con sus documentos
// públicos listados como anexos.
type SheetUseCase struct {
	jobRepo   repository.JobPostingRepository
	docRepo   repository.JobDocumentRepository
	generator JobSheetGenerator
}

// NewSheetUseCase construye el caso de uso.
func NewSheetUseCase(jobRepo repository.JobPostingRepository, docRepo repository.JobDocumentRepository, generator JobSheetGenerator) *SheetUseCase {
	return &SheetUseCase{jobRepo: jobRepo, docRepo: docRepo, generator: generator}
}

// GeneratePDF devuelve los bytes del PDF y el nombre de archivo sugerido
// (slug del código de la convocatoria).
func (uc *SheetUseCase) GeneratePDF(ctx context.Context, jobID string) ([]byte, string, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, "", err
	}
	if job == nil {
		return nil, "", domain.ErrNotFound
	}
	docs, err := uc.docRepo.ListByJobPosting(ctx, jobID, true)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateJobSheet(ctx, job, docs)
	if err != nil {
		return nil, "", err
	}
	filename := "convocatoria-" + slug.Slugify(job.Code) + ".pdf"
	return pdf, filename, nil
}
