package entity

import "time"

// Tipos de documento adjuntos a una convocatoria.
const (
	DocTypeBases        = "BASES"
	DocTypeResultsPre   = "RESULTS_PRE"
	DocTypeCommunique   = "COMMUNIQUE"
	DocTypeResultsFinal = "RESULTS_FINAL"
	DocTypeOther        = "OTHER"
)

// ValidDocumentType informa si s es un tipo de documento conocido.
func ValidDocumentType(s string) bool {
	switch s {
	case DocTypeBases, DocTypeResultsPre, DocTypeCommunique, DocTypeResultsFinal, DocTypeOther:
		return true
	}
	return false
}

// JobDocument es la metadata de un documento de convocatoria. El archivo vive
// en un storage externo; aquí solo se guarda la URL y su visibilidad.
type JobDocument struct {
	ID           string
	JobPostingID string
	Title        string
	DocumentURL  string
	DocumentType string
	IsPublic     bool
	UploadedAt   time.Time
}
