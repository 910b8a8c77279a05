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

	appanalytics "github.com/davidrmz/chipsmanager-api/internal/application/analytics"
	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
)

var (
	colorGreen = &props.Color{Red: 22, Green: 130, Blue: 60}
	colorRed   = &props.Color{Red: 185, Green: 28, Blue: 28}
)

var _ appanalytics.ReportPDFGenerator = (*ReportGenerator)(nil)

// ReportGenerator renderiza el reporte financiero de un período en A4.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *ReportGenerator) GenerateReportPDF(_ context.Context, report *dto.FinancialReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Financiero", true).
		Build()

	m := maroto.New(cfg)

	// Encabezado
	m.AddRows(row.New(16).Add(
		col.New(7).Add(
			text.New("CHIPSMANAGER", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte Financiero", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(report.PeriodLabel, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 4,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Indicadores del período
	m.AddRows(kpiRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	// Gastos
	m.AddRows(sectionTitle("GASTOS DEL PERÍODO"))
	if len(report.Expenses) == 0 {
		m.AddRows(emptyRow("Sin gastos registrados en el período."))
	} else {
		m.AddRows(expenseHeaderRow())
		for _, e := range report.Expenses {
			m.AddRows(row.New(6).Add(
				col.New(2).Add(cell(e.Date, align.Left)),
				col.New(5).Add(cell(e.Description, align.Left)),
				col.New(2).Add(cell(e.Category, align.Left)),
				col.New(3).Add(cell("$"+e.Amount.StringFixed(2), align.Right)),
			))
		}
	}

	// Ventas y mermas
	m.AddRows(row.New(3))
	m.AddRows(sectionTitle("VENTAS Y MERMAS"))
	if len(report.Movements) == 0 {
		m.AddRows(emptyRow("Sin movimientos registrados en el período."))
	} else {
		m.AddRows(movementHeaderRow())
		for _, mv := range report.Movements {
			m.AddRows(movementRow(mv))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// kpiRow: los cuatro totales del período en una sola banda.
func kpiRow(report *dto.FinancialReportDTO) core.Row {
	kpi := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: color, Top: 6, Align: align.Center,
			}),
		)
	}
	profitColor := colorGreen
	if report.NetProfit.IsNegative() {
		profitColor = colorRed
	}
	return row.New(16).Add(
		kpi("Ventas", "$"+report.TotalSales.StringFixed(2), colorGreen),
		kpi("Gastos", "$"+report.TotalExpenses.StringFixed(2), colorRed),
		kpi("Mermas", "$"+report.TotalWasteValue.StringFixed(2), colorRed),
		kpi("Ganancia Neta", "$"+report.NetProfit.StringFixed(2), profitColor),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func emptyRow(msg string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1}),
	))
}

func expenseHeaderRow() core.Row {
	return row.New(6).Add(
		col.New(2).Add(headerCell("Fecha", align.Left)),
		col.New(5).Add(headerCell("Descripción", align.Left)),
		col.New(2).Add(headerCell("Categoría", align.Left)),
		col.New(3).Add(headerCell("Monto", align.Right)),
	)
}

func movementHeaderRow() core.Row {
	return row.New(6).Add(
		col.New(2).Add(headerCell("Fecha", align.Left)),
		col.New(1).Add(headerCell("Tipo", align.Left)),
		col.New(4).Add(headerCell("Producto", align.Left)),
		col.New(3).Add(headerCell("Tienda", align.Left)),
		col.New(2).Add(headerCell("Importe", align.Right)),
	)
}

func movementRow(mv dto.MovementRowDTO) core.Row {
	tipo := "Venta"
	importeColor := colorGreen
	if mv.Type == entity.MovementTypeWaste {
		tipo = "Merma"
		importeColor = colorRed
	}
	return row.New(6).Add(
		col.New(2).Add(cell(mv.Date, align.Left)),
		col.New(1).Add(cell(tipo, align.Left)),
		col.New(4).Add(cell(mv.Product, align.Left)),
		col.New(3).Add(cell(mv.StoreName, align.Left)),
		col.New(2).Add(text.New("$"+mv.Amount.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Color: importeColor,
		})),
	)
}

func headerCell(label string, a align.Type) core.Component {
	return text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Top: 1})
}

func cell(value string, a align.Type) core.Component {
	return text.New(value, props.Text{Size: 8, Align: a, Top: 1})
}
