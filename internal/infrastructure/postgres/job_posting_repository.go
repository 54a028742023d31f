package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velaparedes/backrrhh-api/internal/domain"
	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
	"github.com/velaparedes/backrrhh-api/internal/domain/repository"
)

var _ repository.JobPostingRepository = (*JobPostingRepo)(nil)

// JobPostingRepo implementación del puerto JobPostingRepository sobre PostgreSQL.
type JobPostingRepo struct {
	pool *pgxpool.Pool
}

// NewJobPostingRepository construye el adaptador de persistencia para convocatorias.
func NewJobPostingRepository(pool *pgxpool.Pool) *JobPostingRepo {
	return &JobPostingRepo{pool: pool}
}

const jobColumns = `id, title, code, regime, vacancies, COALESCE(department, ''), description,
	COALESCE(salary, ''), status, publication_date, end_date, current_stage, created_by, created_at, updated_at`

// Create persiste una nueva convocatoria.
func (r *JobPostingRepo) Create(ctx context.Context, job *entity.JobPosting) error {
	query := `
		INSERT INTO job_postings
			(id, title, code, regime, vacancies, department, description, salary, status,
			 publication_date, end_date, current_stage, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(ctx, query,
		job.ID, job.Title, job.Code, job.Regime, job.Vacancies, job.Department,
		job.Description, job.Salary, job.Status, job.PublicationDate, job.EndDate,
		job.CurrentStage, job.CreatedBy, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert job posting: %w", err)
	}
	return nil
}

// GetByID obtiene una convocatoria por ID. Devuelve (nil, nil) si no existe.
func (r *JobPostingRepo) GetByID(ctx context.Context, id string) (*entity.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByCode obtiene una convocatoria por código. Devuelve (nil, nil) si no existe.
func (r *JobPostingRepo) GetByCode(ctx context.Context, code string) (*entity.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE code = $1 LIMIT 1`
	return r.scanOne(ctx, query, code)
}

func (r *JobPostingRepo) scanOne(ctx context.Context, query string, arg any) (*entity.JobPosting, error) {
	var j entity.JobPosting
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&j.ID, &j.Title, &j.Code, &j.Regime, &j.Vacancies, &j.Department, &j.Description,
		&j.Salary, &j.Status, &j.PublicationDate, &j.EndDate, &j.CurrentStage,
		&j.CreatedBy, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job posting: %w", err)
	}
	return &j, nil
}

// List lista convocatorias con filtros y paginación, más recientes primero.
// La búsqueda pliega diacríticos en ambos lados (columna y término) con
// unaccent, así "evaluación" encuentra "Evaluacion" y viceversa. Requiere la
// extensión unaccent en la base.
func (r *JobPostingRepo) List(ctx context.Context, filter repository.JobPostingFilter) ([]*entity.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE 1=1`
	args := []any{}
	n := 0
	if filter.Status != "" {
		n++
		query += fmt.Sprintf(" AND status = $%d", n)
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		n++
		query += fmt.Sprintf(
			" AND (unaccent(title) ILIKE unaccent($%d) OR unaccent(code) ILIKE unaccent($%d) OR unaccent(department) ILIKE unaccent($%d))",
			n, n, n,
		)
		args = append(args, "%"+filter.Search+"%")
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list job postings: %w", err)
	}
	defer rows.Close()
	var list []*entity.JobPosting
	for rows.Next() {
		var j entity.JobPosting
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Code, &j.Regime, &j.Vacancies, &j.Department, &j.Description,
			&j.Salary, &j.Status, &j.PublicationDate, &j.EndDate, &j.CurrentStage,
			&j.CreatedBy, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan job posting: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}

// Update actualiza una convocatoria.
func (r *JobPostingRepo) Update(ctx context.Context, job *entity.JobPosting) error {
	query := `
		UPDATE job_postings SET
			title = $2, regime = $3, vacancies = $4, department = $5, description = $6,
			salary = $7, status = $8, end_date = $9, current_stage = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		job.ID, job.Title, job.Regime, job.Vacancies, job.Department, job.Description,
		job.Salary, job.Status, job.EndDate, job.CurrentStage, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job posting: %w", err)
	}
	return nil
}

// Delete elimina una convocatoria por ID.
func (r *JobPostingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job posting: %w", err)
	}
	return nil
}
