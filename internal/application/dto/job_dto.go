package dto

import "time"

// CreateJobPostingRequest entrada para crear una convocatoria.
type CreateJobPostingRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=300"`
	Code        string     `json:"code" validate:"required,min=1,max=100"`
	Regime      string     `json:"regime" validate:"required,max=100"`
	Vacancies   string     `json:"vacancies" validate:"required,max=50"`
	Department  string     `json:"department" validate:"omitempty,max=200"`
	Description string     `json:"description" validate:"required"`
	Salary      string     `json:"salary" validate:"omitempty,max=200"`
	Status      string     `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED IN_EVALUATION CLOSED CANCELLED"`
	EndDate     *time.Time `json:"end_date" validate:"omitempty"`
}

// UpdateJobPostingRequest entrada para actualizar (campos opcionales, semántica PATCH).
type UpdateJobPostingRequest struct {
	Title        *string    `json:"title" validate:"omitempty,min=3,max=300"`
	Regime       *string    `json:"regime" validate:"omitempty,max=100"`
	Vacancies    *string    `json:"vacancies" validate:"omitempty,max=50"`
	Department   *string    `json:"department" validate:"omitempty,max=200"`
	Description  *string    `json:"description" validate:"omitempty"`
	Salary       *string    `json:"salary" validate:"omitempty,max=200"`
	Status       *string    `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED IN_EVALUATION CLOSED CANCELLED"`
	CurrentStage *string    `json:"current_stage" validate:"omitempty,oneof=PREPARATORIA CONVOCATORIA EVALUACION_CURRICULAR ENTREVISTAS CONCLUIDO"`
	EndDate      *time.Time `json:"end_date" validate:"omitempty"`
}

// ListJobPostingsRequest filtros de listado.
type ListJobPostingsRequest struct {
	PageRequest
	Status string `query:"status" validate:"omitempty,oneof=DRAFT PUBLISHED IN_EVALUATION CLOSED CANCELLED"`
	Search string `query:"search" validate:"omitempty,max=200"`
}

// JobPostingResponse salida de una convocatoria.
type JobPostingResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Code            string     `json:"code"`
	Regime          string     `json:"regime"`
	Vacancies       string     `json:"vacancies"`
	Department      string     `json:"department,omitempty"`
	Description     string     `json:"description"`
	Salary          string     `json:"salary,omitempty"`
	Status          string     `json:"status"`
	PublicationDate time.Time  `json:"publication_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	CurrentStage    string     `json:"current_stage"`
	CreatedBy       string     `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// JobPostingListResponse listado paginado.
type JobPostingListResponse struct {
	Items []JobPostingResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// CreateJobDocumentRequest entrada para registrar metadata de un documento.
// El archivo ya debe existir en el storage externo (document_url).
type CreateJobDocumentRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=300"`
	DocumentURL  string `json:"document_url" validate:"required,url"`
	DocumentType string `json:"document_type" validate:"required,oneof=BASES RESULTS_PRE COMMUNIQUE RESULTS_FINAL OTHER"`
	IsPublic     *bool  `json:"is_public" validate:"omitempty"`
}

// JobDocumentResponse salida de un documento.
type JobDocumentResponse struct {
	ID           string    `json:"id"`
	JobPostingID string    `json:"job_posting_id"`
	Title        string    `json:"title"`
	DocumentURL  string    `json:"document_url"`
	DocumentType string    `json:"document_type"`
	IsPublic     bool      `json:"is_public"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
