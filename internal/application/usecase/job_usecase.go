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

// JobUseCase casos de uso CRUD para convocatorias.
type JobUseCase struct {
	repo repository.JobPostingRepository
}

// NewJobUseCase construye el caso de uso.
func NewJobUseCase(repo repository.JobPostingRepository) *JobUseCase {
	return &JobUseCase{repo: repo}
}

// Create crea una convocatoria. El código debe ser único; el estado por
// defecto es DRAFT y la etapa inicial PREPARATORIA.
func (uc *JobUseCase) Create(ctx context.Context, createdBy string, in dto.CreateJobPostingRequest) (*dto.JobPostingResponse, error) {
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	status := in.Status
	if status == "" {
		status = entity.JobStatusDraft
	}
	if !entity.ValidJobStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	job := &entity.JobPosting{
		ID:              uuid.New().String(),
		Title:           in.Title,
		Code:            in.Code,
		Regime:          in.Regime,
		Vacancies:       in.Vacancies,
		Department:      in.Department,
		Description:     in.Description,
		Salary:          in.Salary,
		Status:          status,
		PublicationDate: now,
		EndDate:         in.EndDate,
		CurrentStage:    entity.JobStagePreparatoria,
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// GetByID obtiene una convocatoria por ID. Devuelve (nil, nil) si no existe.
func (uc *JobUseCase) GetByID(ctx context.Context, id string) (*dto.JobPostingResponse, error) {
	job, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, nil
	}
	return toJobResponse(job), nil
}

// Update actualiza campos de una convocatoria (semántica PATCH).
func (uc *JobUseCase) Update(ctx context.Context, id string, in dto.UpdateJobPostingRequest) (*dto.JobPostingResponse, error) {
	job, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, nil
	}
	if in.Title != nil {
		job.Title = *in.Title
	}
	if in.Regime != nil {
		job.Regime = *in.Regime
	}
	if in.Vacancies != nil {
		job.Vacancies = *in.Vacancies
	}
	if in.Department != nil {
		job.Department = *in.Department
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.Salary != nil {
		job.Salary = *in.Salary
	}
	if in.Status != nil {
		if !entity.ValidJobStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		job.Status = *in.Status
	}
	if in.CurrentStage != nil {
		if !entity.ValidJobStage(*in.CurrentStage) {
			return nil, domain.ErrInvalidInput
		}
		job.CurrentStage = *in.CurrentStage
	}
	if in.EndDate != nil {
		job.EndDate = in.EndDate
	}
	job.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// List lista convocatorias con paginación, filtro por estado y búsqueda.
// El plegado de diacríticos lo aplica el repositorio sobre ambos lados de la
// comparación: "evaluación" encuentra títulos guardados como "evaluacion" y
// viceversa.
func (uc *JobUseCase) List(ctx context.Context, in dto.ListJobPostingsRequest) (*dto.JobPostingListResponse, error) {
	in.DefaultPage()
	filter := repository.JobPostingFilter{
		Status: in.Status,
		Search: in.Search,
		Limit:  in.Limit,
		Offset: in.Offset,
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.JobPostingResponse, 0, len(list))
	for _, j := range list {
		items = append(items, *toJobResponse(j))
	}
	return &dto.JobPostingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// Delete elimina una convocatoria por ID.
func (uc *JobUseCase) Delete(ctx context.Context, id string) error {
	job, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toJobResponse(j *entity.JobPosting) *dto.JobPostingResponse {
	if j == nil {
		return nil
	}
	return &dto.JobPostingResponse{
		ID:              j.ID,
		Title:           j.Title,
		Code:            j.Code,
		Regime:          j.Regime,
		Vacancies:       j.Vacancies,
		Department:      j.Department,
		Description:     j.Description,
		Salary:          j.Salary,
		Status:          j.Status,
		PublicationDate: j.PublicationDate,
		EndDate:         j.EndDate,
		CurrentStage:    j.CurrentStage,
		CreatedBy:       j.CreatedBy,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}
