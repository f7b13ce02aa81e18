// Package pdf genera la agenda diaria imprimible de la sucursal.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sucursal + CECO/Región  │  Día + fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  por colaborador:                                           │
//	│    Nombre · Puesto · Turno · Comida                         │
//	│    TABLA: Inicio | Fin | Actividad | Estado                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/jhoicas/gestor-sucursal/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 21, Green: 128, Blue: 61}
)

var _ ports.SchedulePDFGenerator = (*MarotoScheduleGenerator)(nil)

// MarotoScheduleGenerator implementa ports.SchedulePDFGenerator con Maroto v2.
type MarotoScheduleGenerator struct{}

// NewMarotoScheduleGenerator construye el generador.
func NewMarotoScheduleGenerator() *MarotoScheduleGenerator { return &MarotoScheduleGenerator{} }

// GenerateDailySchedule genera el PDF y devuelve sus bytes.
func (g *MarotoScheduleGenerator) GenerateDailySchedule(_ context.Context, data ports.DailySchedule) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Agenda diaria "+data.BranchName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(data.Collaborators) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin colaboradores asignados.", props.Text{Size: 9, Top: 3, Color: colorGray}),
		)))
	}
	for _, c := range data.Collaborators {
		m.AddRows(collaboratorRow(c))
		m.AddRows(tableHeaderRow())
		m.AddRows(tableRows(c.Rows)...)
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Generado por Gestor de Sucursal. Los estados reflejan la hora de emisión.", props.Text{
			Size: 6.5, Color: colorGray, Top: 3,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data ports.DailySchedule) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(data.BranchName, "Sucursal"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("CECO: %s   |   Región: %s", nonEmpty(data.CECO, "-"), nonEmpty(data.Region, "-")), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("AGENDA DEL DÍA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(data.DayName, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+data.GeneratedAt, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func collaboratorRow(c ports.CollaboratorSchedule) core.Row {
	lunch := "-"
	if len(c.AtLunch) > 0 {
		lunch = strings.Join(c.AtLunch, ", ")
	}
	return row.New(12).Add(col.New(12).Add(
		text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
		text.New(fmt.Sprintf("%s   |   Turno: %s   |   Comida: %s", nonEmpty(c.RoleTitle, "-"), nonEmpty(c.Shift, "-"), lunch), props.Text{
			Size: 8, Top: 7, Color: colorGray,
		}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Inicio", 2, align.Center),
		h("Fin", 2, align.Center),
		h("Actividad", 6, align.Left),
		h("Estado", 2, align.Center),
	)
}

func tableRows(rows []ports.ScheduleRow) []core.Row {
	if len(rows) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin actividades agendadas.", props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray}),
		))}
	}
	out := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		status := props.Text{Size: 8, Align: align.Center, Top: 1}
		if r.Status == "Completada" {
			status.Color = colorGreen
		}
		out = append(out, row.New(6).Add(
			col.New(2).Add(text.New(r.Time, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(r.EndTime, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(r.Description, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.Status, status)),
		))
	}
	return out
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
