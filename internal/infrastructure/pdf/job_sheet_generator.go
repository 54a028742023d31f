// Package pdf implementa la Ficha de Convocatoria: una hoja A4 con los datos
// de la convocatoria y el listado de sus documentos públicos.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la convocatoria  │  Código + Estado      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: Régimen | Vacantes | Dependencia | Remuneración     │
//	│  FECHAS: Publicación / Cierre | Etapa actual                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESCRIPCIÓN DEL PUESTO                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DOCUMENTOS: Título | Tipo | Fecha                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// JobSheetGenerator implementa usecase.JobSheetGenerator usando Maroto v2.
type JobSheetGenerator struct{}

// NewJobSheetGenerator construye el generador.
func NewJobSheetGenerator() *JobSheetGenerator { return &JobSheetGenerator{} }

// GenerateJobSheet genera el PDF y devuelve sus bytes.
func (g *JobSheetGenerator) GenerateJobSheet(_ context.Context, job *entity.JobPosting, docs []*entity.JobDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de Convocatoria "+job.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(job))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(datosRow(job))
	m.AddRows(fechasRow(job))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(descripcionRows(job)...)

	if len(docs) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(documentosHeaderRow())
		for _, d := range docs {
			m.AddRows(documentoRow(d))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y código + estado (der).
func headerRow(job *entity.JobPosting) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("CONVOCATORIA DE TRABAJO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
			}),
			text.New(job.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New(job.Code, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Estado: "+job.Status, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// datosRow: régimen, vacantes, dependencia y remuneración en una línea.
func datosRow(job *entity.JobPosting) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DE LA CONVOCATORIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Régimen: %s   |   Vacantes: %s   |   Dependencia: %s   |   Remuneración: %s",
				job.Regime,
				job.Vacancies,
				nonEmpty(job.Department, "—"),
				nonEmpty(job.Salary, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// fechasRow: publicación, cierre y etapa actual.
func fechasRow(job *entity.JobPosting) core.Row {
	cierre := "abierta"
	if job.EndDate != nil {
		cierre = job.EndDate.Format("02/01/2006")
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Publicación: %s   |   Cierre: %s   |   Etapa: %s",
				job.PublicationDate.Format("02/01/2006"),
				cierre,
				job.CurrentStage,
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// descripcionRows: título de sección + cuerpo del puesto.
func descripcionRows(job *entity.JobPosting) []core.Row {
	return []core.Row{
		row.New(8).Add(
			col.New(12).Add(
				text.New("DESCRIPCIÓN DEL PUESTO", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
				}),
			),
		),
		row.New(40).Add(
			col.New(12).Add(
				text.New(job.Description, props.Text{Size: 9, Top: 1}),
			),
		),
	}
}

// documentosHeaderRow: cabecera de la tabla de documentos.
func documentosHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Documento", 7, align.Left),
		h("Tipo", 3, align.Left),
		h("Fecha", 2, align.Right),
	)
}

// documentoRow: una fila por documento público.
func documentoRow(d *entity.JobDocument) core.Row {
	return row.New(7).Add(
		col.New(7).Add(text.New(d.Title, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(3).Add(text.New(d.DocumentType, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
		col.New(2).Add(text.New(d.UploadedAt.Format("02/01/2006"), props.Text{Size: 8, Top: 1, Align: align.Right})),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
