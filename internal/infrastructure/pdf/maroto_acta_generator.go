// Package pdf implementa la generación del acta de despacho: el comprobante
// impreso que firma el receptor al retirar los medicamentos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Programa  │  N° Acta + Fecha                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SOLICITUD: número + estado                                  │
//	│  RECEPTOR: nombre + cédula                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Medicamento | Lote | Almacén | Cantidad              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: Entregado por / Recibido por                        │
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

	appdespacho "github.com/donamed/donamed-api/internal/application/despacho"
	"github.com/donamed/donamed-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 78}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoActaGenerator implementa despacho.ActaPDFGenerator usando Maroto v2.
type MarotoActaGenerator struct {
	programa string // nombre del programa que encabeza el acta
}

// NewMarotoActaGenerator construye el generador.
func NewMarotoActaGenerator(programa string) *MarotoActaGenerator {
	if programa == "" {
		programa = "Programa de Donación de Medicamentos"
	}
	return &MarotoActaGenerator{programa: programa}
}

// GenerarActa genera el PDF y devuelve sus bytes.
func (g *MarotoActaGenerator) GenerarActa(
	_ context.Context,
	d *entity.Despacho,
	sol *entity.Solicitud,
	receptor *entity.Persona,
	lineas []appdespacho.ActaLinea,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Acta de Despacho", true).
		WithAuthor(g.programa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(solicitudRow(sol))
	m.AddRows(receptorRow(d, receptor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineaRows(lineas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(line.NewRow(10))
	m.AddRows(firmasRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar acta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del programa (izq) y N° de acta + fecha (der).
func (g *MarotoActaGenerator) headerRow(d *entity.Despacho) core.Row {
	fecha := d.FechaDespacho.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.programa, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Acta de entrega de medicamentos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ACTA DE DESPACHO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", d.Numero), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// solicitudRow: referencia a la solicitud que origina el despacho.
func solicitudRow(sol *entity.Solicitud) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SOLICITUD", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d   |   Estado: %s   |   Creada: %s",
				sol.Numero, sol.Estado, sol.CreadoEn.Format("02/01/2006"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// receptorRow: quién recibió físicamente los medicamentos.
func receptorRow(d *entity.Despacho, receptor *entity.Persona) core.Row {
	nombre := "—"
	cedula := nonEmpty(d.CedulaReceptor, "—")
	if receptor != nil {
		nombre = receptor.Nombre + " " + receptor.Apellido
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("RECEPTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Cédula: "+cedula, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Medicamento", 5, align.Left),
		h("Lote", 2, align.Center),
		h("Almacén", 3, align.Left),
		h("Cantidad", 2, align.Right),
	)
}

// tableLineaRows: una fila por línea del acta.
func tableLineaRows(lineas []appdespacho.ActaLinea) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				nonEmpty(l.MedicamentoNombre, l.LoteCodigo),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.LoteCodigo,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(l.AlmacenNombre, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Cantidad.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// firmasRow: líneas de firma de quien entrega y quien recibe.
func firmasRow() core.Row {
	firma := func(label string) core.Col {
		return col.New(6).Add(
			text.New("______________________________", props.Text{
				Size: 9, Align: align.Center, Top: 1,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 6, Color: colorGray,
			}),
		)
	}
	return row.New(14).Add(
		firma("Entregado por"),
		firma("Recibido por"),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
