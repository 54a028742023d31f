package repository

import (
	"context"

	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
)

// JobPostingFilter filtros para el listado de convocatorias.
// Search se compara contra título, código y departamento sin distinguir
// mayúsculas ni diacríticos en ninguno de los dos lados: "evaluación"
// encuentra "Evaluacion" y viceversa.
type JobPostingFilter struct {
	Status string
	Search string
	Limit  int
	Offset int
}

// JobPostingRepository puerto de persistencia para convocatorias.
type JobPostingRepository interface {
	Create(ctx context.Context, job *entity.JobPosting) error
	GetByID(ctx context.Context, id string) (*entity.JobPosting, error)
	GetByCode(ctx context.Context, code string) (*entity.JobPosting, error)
	List(ctx context.Context, filter JobPostingFilter) ([]*entity.JobPosting, error)
	Update(ctx context.Context, job *entity.JobPosting) error
	Delete(ctx context.Context, id string) error
}
