package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velaparedes/backrrhh-api/pkg/slug"
)

func TestFold_EliminaDiacriticos(t *testing.T) {
	assert.Equal(t, "evaluacion curricular", slug.Fold("Evaluación Curricular"))
	assert.Equal(t, "nino", slug.Fold("NIÑO"))
	assert.Equal(t, "sin cambios", slug.Fold("sin cambios"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "cas-n-001-2026-especialista-rrhh", slug.Slugify("CAS N° 001-2026 / Especialista RRHH"))
	assert.Equal(t, "convocatoria", slug.Slugify("  Convocatoria!!  "))
	assert.Equal(t, "", slug.Slugify("---"))
}
