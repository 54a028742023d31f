package entity

import "time"

// Estados de una convocatoria.
const (
	JobStatusDraft        = "DRAFT"
	JobStatusPublished    = "PUBLISHED"
	JobStatusInEvaluation = "IN_EVALUATION"
	JobStatusClosed       = "CLOSED"
	JobStatusCancelled    = "CANCELLED"
)

// Etapas del proceso de selección.
const (
	JobStagePreparatoria = "PREPARATORIA"
	JobStageConvocatoria = "CONVOCATORIA"
	JobStageEvaluacion   = "EVALUACION_CURRICULAR"
	JobStageEntrevistas  = "ENTREVISTAS"
	JobStageConcluido    = "CONCLUIDO"
)

// ValidJobStatus informa si s es un estado conocido.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusDraft, JobStatusPublished, JobStatusInEvaluation, JobStatusClosed, JobStatusCancelled:
		return true
	}
	return false
}

// ValidJobStage informa si s es una etapa conocida.
func ValidJobStage(s string) bool {
	switch s {
	case JobStagePreparatoria, JobStageConvocatoria, JobStageEvaluacion, JobStageEntrevistas, JobStageConcluido:
		return true
	}
	return false
}

// JobPosting es una convocatoria de trabajo del back-office RRHH.
// Vacancies y Salary son texto libre: las bases suelen decir "2" o "múltiple"
// y el salario puede ser una escala, no un número.
type JobPosting struct {
	ID              string
	Title           string
	Code            string
	Regime          string // régimen laboral (ej. CAS, 728)
	Vacancies       string
	Department      string
	Description     string
	Salary          string
	Status          string
	PublicationDate time.Time
	EndDate         *time.Time // nil = convocatoria abierta sin fecha de cierre
	CurrentStage    string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
