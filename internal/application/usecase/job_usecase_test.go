package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velaparedes/backrrhh-api/internal/application/dto"
	"github.com/velaparedes/backrrhh-api/internal/application/usecase"
	"github.com/velaparedes/backrrhh-api/internal/domain"
	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
	"github.com/velaparedes/backrrhh-api/internal/domain/repository"
	"github.com/velaparedes/backrrhh-api/pkg/slug"
)

// fakeJobRepo implementación en memoria del puerto de convocatorias.
type fakeJobRepo struct {
	jobs map[string]*entity.JobPosting // por ID
	err  error
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*entity.JobPosting)}
}

func (f *fakeJobRepo) Create(_ context.Context, job *entity.JobPosting) error {
	if f.err != nil {
		return f.err
	}
	cp := *job
	f.jobs[job.ID] = &cp
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (*entity.JobPosting, error) {
	if f.err != nil {
		return nil, f.err
	}
	j, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobRepo) GetByCode(_ context.Context, code string) (*entity.JobPosting, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, j := range f.jobs {
		if j.Code == code {
			cp := *j
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeJobRepo) List(_ context.Context, filter repository.JobPostingFilter) ([]*entity.JobPosting, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.JobPosting
	for _, j := range f.jobs {
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		if filter.Search != "" {
			// Mismo plegado en ambos lados que aplica el adaptador Postgres
			// con unaccent + ILIKE.
			term := slug.Fold(filter.Search)
			if !strings.Contains(slug.Fold(j.Title), term) &&
				!strings.Contains(slug.Fold(j.Code), term) &&
				!strings.Contains(slug.Fold(j.Department), term) {
				continue
			}
		}
		cp := *j
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeJobRepo) Update(_ context.Context, job *entity.JobPosting) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.jobs[job.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *job
	f.jobs[job.ID] = &cp
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.jobs, id)
	return nil
}

func validCreateRequest() dto.CreateJobPostingRequest {
	return dto.CreateJobPostingRequest{
		Title:       "Especialista en Recursos Humanos",
		Code:        "CAS-001-2026",
		Regime:      "CAS",
		Vacancies:   "2",
		Department:  "Oficina de RRHH",
		Description: "Contratación de especialista bajo régimen CAS.",
		Salary:      "S/ 4,500.00",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestJobCreate_Defaults(t *testing.T) {
	uc := usecase.NewJobUseCase(newFakeJobRepo())

	out, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID, "debe asignarse un ID")
	assert.Equal(t, entity.JobStatusDraft, out.Status, "estado inicial DRAFT")
	assert.Equal(t, entity.JobStagePreparatoria, out.CurrentStage)
	assert.Equal(t, "user-1", out.CreatedBy)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestJobCreate_CodigoDuplicado(t *testing.T) {
	uc := usecase.NewJobUseCase(newFakeJobRepo())

	_, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), "user-2", validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"dos convocatorias no pueden compartir código")
}

func TestJobCreate_EstadoInvalido(t *testing.T) {
	uc := usecase.NewJobUseCase(newFakeJobRepo())

	in := validCreateRequest()
	in.Status = "ARCHIVED"
	_, err := uc.Create(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJobGetByID_Inexistente(t *testing.T) {
	uc := usecase.NewJobUseCase(newFakeJobRepo())

	out, err := uc.GetByID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestJobUpdate_SemanticaPatch(t *testing.T) {
	uc := usecase.NewJobUseCase(newFakeJobRepo())
	created, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	status := entity.JobStatusPublished
	stage := entity.JobStageConvocatoria
	end := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateJobPostingRequest{
		Status:       &status,
		CurrentStage: &stage,
		EndDate:      &end,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.JobStatusPublished, out.Status)
	assert.Equal(t, entity.JobStageConvocatoria, out.CurrentStage)
	require.NotNil(t, out.EndDate)
	assert.True(t, out.EndDate.Equal(end))
	// Los campos no enviados se conservan.
	assert.Equal(t, created.Title, out.Title)
	assert.Equal(t, created.Code, out.Code)
}

func TestJobUpdate_EtapaInvalida(t *testing.T) {
	uc := usecase.NewJobUseCase(newFakeJobRepo())
	created, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	stage := "FINALISIMA"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateJobPostingRequest{CurrentStage: &stage})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJobUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewJobUseCase(newFakeJobRepo())

	title := "Nuevo título"
	out, err := uc.Update(context.Background(), "no-existe", dto.UpdateJobPostingRequest{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// La búsqueda pliega diacríticos en ambos lados: "evaluación" encuentra
// títulos guardados sin tilde y "evaluacion" encuentra títulos con tilde.
func TestJobList_BusquedaSinDiacriticos(t *testing.T) {
	uc := usecase.NewJobUseCase(newFakeJobRepo())

	sinTilde := validCreateRequest()
	sinTilde.Title = "Evaluacion curricular de personal"
	sinTilde.Code = "CAS-002-2026"
	_, err := uc.Create(context.Background(), "user-1", sinTilde)
	require.NoError(t, err)

	conTilde := validCreateRequest()
	conTilde.Title = "Evaluación psicológica de postulantes"
	conTilde.Code = "CAS-003-2026"
	_, err = uc.Create(context.Background(), "user-1", conTilde)
	require.NoError(t, err)

	// Término con tilde encuentra ambas.
	out, err := uc.List(context.Background(), dto.ListJobPostingsRequest{Search: "evaluación"})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	// Término sin tilde también encuentra el título guardado con tilde.
	out, err = uc.List(context.Background(), dto.ListJobPostingsRequest{Search: "psicologica"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "CAS-003-2026", out.Items[0].Code)
}

func TestJobList_FiltroPorEstado(t *testing.T) {
	uc := usecase.NewJobUseCase(newFakeJobRepo())

	first := validCreateRequest()
	_, err := uc.Create(context.Background(), "user-1", first)
	require.NoError(t, err)

	second := validCreateRequest()
	second.Code = "CAS-002-2026"
	second.Status = entity.JobStatusPublished
	_, err = uc.Create(context.Background(), "user-1", second)
	require.NoError(t, err)

	out, err := uc.List(context.Background(), dto.ListJobPostingsRequest{Status: entity.JobStatusPublished})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "CAS-002-2026", out.Items[0].Code)
}

func TestJobDelete(t *testing.T) {
	uc := usecase.NewJobUseCase(newFakeJobRepo())
	created, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, uc.Delete(context.Background(), created.ID), domain.ErrNotFound)
}
