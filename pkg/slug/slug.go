// Package slug normaliza texto en español para búsquedas y nombres de
// archivo: "Evaluación Curricular" → fold → "evaluacion curricular" →
// slugify → "evaluacion-curricular".
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold elimina diacríticos y pasa a minúsculas. Si la transformación falla
// (entrada con UTF-8 inválido) devuelve la cadena original en minúsculas.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Slugify devuelve un identificador apto para URLs y nombres de archivo:
// minúsculas sin diacríticos, con grupos no alfanuméricos colapsados en un
// guion.
func Slugify(s string) string {
	folded := Fold(s)
	var b strings.Builder
	prevDash := true // evita guion inicial
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
