package usecase

import (
	"context"

	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
)

// JobSheetGenerator renderiza la ficha imprimible de una convocatoria.
// Lo implementa infrastructure/pdf; el puerto evita que la aplicación
// dependa de la librería de PDF.
type JobSheetGenerator interface {
	GenerateJobSheet(ctx context.Context, job *entity.JobPosting, docs []*entity.JobDocument) ([]byte, error)
}
