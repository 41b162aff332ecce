// Package pdf implementa la exportación en PDF del reporte de pagos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Período del reporte                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Empleado | Total a pagar                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL GENERAL                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dguzman/staffing-api/internal/application/dto"
	"github.com/dguzman/staffing-api/internal/application/staffing"
)

var _ staffing.PaymentsPDFGenerator = (*PaymentsPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// printer formatea montos con separadores en español (1.234,56).
var printer = message.NewPrinter(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

// PaymentsPDFGenerator implementa staffing.PaymentsPDFGenerator usando Maroto v2.
type PaymentsPDFGenerator struct{}

// NewPaymentsPDFGenerator construye el generador.
func NewPaymentsPDFGenerator() *PaymentsPDFGenerator { return &PaymentsPDFGenerator{} }

// Generate genera el PDF del reporte de pagos y devuelve sus bytes.
// Los items llegan ya agregados y ordenados por la capa de aplicación.
func (g *PaymentsPDFGenerator) Generate(start, end time.Time, items []dto.EmployeePayment) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Pagos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(start, end))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	var total float64
	for _, item := range items {
		m.AddRows(paymentRow(item))
		total += item.TotalAmount
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período del reporte (der).
func headerRow(start, end time.Time) core.Row {
	periodo := start.Format("02/01/2006") + " — " + end.Format("02/01/2006")

	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE PAGOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Solo asignaciones con asistencia registrada", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodo, props.Text{
				Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: encabezado de la tabla de pagos.
func tableHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(8).Add(
			text.New("Empleado", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Total a pagar", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary,
				Align: align.Right, Top: 2,
			}),
		),
	)
}

// paymentRow: una fila de la tabla por empleado.
func paymentRow(item dto.EmployeePayment) core.Row {
	return row.New(6).Add(
		col.New(8).Add(
			text.New(item.EmployeeName, props.Text{Size: 9, Top: 1}),
		),
		col.New(4).Add(
			text.New(formatAmount(item.TotalAmount), props.Text{
				Size: 9, Align: align.Right, Top: 1,
			}),
		),
	)
}

// totalRow: suma de todos los pagos del período.
func totalRow(total float64) core.Row {
	return row.New(8).Add(
		col.New(8).Add(
			text.New("TOTAL GENERAL", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(formatAmount(total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
		),
	)
}

func formatAmount(v float64) string {
	return printer.Sprintf("$ %.2f", v)
}
