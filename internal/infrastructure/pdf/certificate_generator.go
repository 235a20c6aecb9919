// Package pdf implementa la generación del certificado de conclusión de curso.
//
// Layout de la página A4 (horizontal):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                 CERTIFICADO DE CONCLUSIÓN                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│            Se certifica que <Empleado>                       │
//	│       concluyó el curso <Título> (<área / modalidad>)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Tienda: <Tienda>                  Fecha: <dd/mm/aaaa>       │
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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Capacitaciones-api/internal/application/usecase"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.CertificateGenerator = (*MarotoCertificateGenerator)(nil)

// MarotoCertificateGenerator implementa usecase.CertificateGenerator usando Maroto v2.
type MarotoCertificateGenerator struct{}

// NewMarotoCertificateGenerator construye el generador.
func NewMarotoCertificateGenerator() *MarotoCertificateGenerator { return &MarotoCertificateGenerator{} }

// GenerateCertificatePDF genera el PDF del certificado y devuelve sus bytes.
func (g *MarotoCertificateGenerator) GenerateCertificatePDF(
	_ context.Context,
	data usecase.CertificateData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(25).WithBottomMargin(20).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 11}).
		WithTitle("Certificado de Conclusión", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(4, props.Line{Color: colorPrimary, Thickness: 0.8}))
	m.AddRows(bodyRows(data)...)
	m.AddRows(line.NewRow(6, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar certificado: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow() core.Row {
	return row.New(24).Add(
		col.New(12).Add(
			text.New("CERTIFICADO DE CONCLUSIÓN", props.Text{
				Style: fontstyle.Bold, Size: 24, Align: align.Center,
				Color: colorPrimary, Top: 4,
			}),
			text.New("Programa de Capacitación Corporativa", props.Text{
				Size: 10, Align: align.Center, Color: colorGray, Top: 18,
			}),
		),
	)
}

func bodyRows(data usecase.CertificateData) []core.Row {
	detalle := fmt.Sprintf("Área: %s   |   Modalidad: %s",
		areaLabel(data.CourseArea), data.Modality)

	return []core.Row{
		row.New(14).Add(col.New(12).Add(
			text.New("Se certifica que", props.Text{
				Size: 12, Align: align.Center, Color: colorGray, Top: 6,
			}),
		)),
		row.New(16).Add(col.New(12).Add(
			text.New(data.EmployeeName, props.Text{
				Style: fontstyle.Bold, Size: 20, Align: align.Center, Top: 2,
			}),
		)),
		row.New(12).Add(col.New(12).Add(
			text.New("concluyó satisfactoriamente el curso", props.Text{
				Size: 12, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)),
		row.New(20).Add(col.New(12).Add(
			text.New(data.CourseTitle, props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
			text.New(detalle, props.Text{
				Size: 10, Align: align.Center, Color: colorGray, Top: 12,
			}),
		)),
	}
}

func footerRow(data usecase.CertificateData) core.Row {
	fecha := data.CompletedAt.Format("02/01/2006")
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Tienda: "+data.StoreName, props.Text{
				Size: 10, Align: align.Left, Top: 4,
			}),
		),
		col.New(6).Add(
			text.New("Fecha de conclusión: "+fecha, props.Text{
				Size: 10, Align: align.Right, Top: 4,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func areaLabel(area string) string {
	switch area {
	case "ventas":
		return "Ventas"
	case "pos_ventas":
		return "Pos-Ventas"
	}
	return area
}
