// Package excel exporta el reporte financiero a un libro XLSX con excelize.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	appanalytics "github.com/davidrmz/chipsmanager-api/internal/application/analytics"
	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
)

var _ appanalytics.ReportExcelExporter = (*ReportExporter)(nil)

const (
	sheetResumen    = "Resumen"
	sheetGastos     = "Gastos"
	sheetMovimiento = "Ventas y Mermas"
)

// ReportExporter genera el XLSX del reporte financiero: una hoja de resumen
// con los totales y una hoja por cada tabla del período.
type ReportExporter struct{}

// NewReportExporter construye el exportador.
func NewReportExporter() *ReportExporter { return &ReportExporter{} }

// ExportReportXLSX arma el libro y devuelve sus bytes.
func (e *ReportExporter) ExportReportXLSX(_ context.Context, report *dto.FinancialReportDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// La hoja por defecto se renombra a Resumen.
	if err := f.SetSheetName("Sheet1", sheetResumen); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(sheetGastos); err != nil {
		return nil, fmt.Errorf("excel: crear hoja de gastos: %w", err)
	}
	if _, err := f.NewSheet(sheetMovimiento); err != nil {
		return nil, fmt.Errorf("excel: crear hoja de movimientos: %w", err)
	}

	e.fillSummary(f, report)
	e.fillExpenses(f, report.Expenses)
	e.fillMovements(f, report.Movements)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *ReportExporter) fillSummary(f *excelize.File, report *dto.FinancialReportDTO) {
	f.SetCellValue(sheetResumen, "A1", "Reporte Financiero ChipsManager")
	f.SetCellValue(sheetResumen, "A2", "Período")
	f.SetCellValue(sheetResumen, "B2", report.PeriodLabel)

	rows := [][2]any{
		{"Ventas", report.TotalSales.InexactFloat64()},
		{"Gastos", report.TotalExpenses.InexactFloat64()},
		{"Mermas", report.TotalWasteValue.InexactFloat64()},
		{"Ganancia Neta", report.NetProfit.InexactFloat64()},
	}
	for i, r := range rows {
		f.SetCellValue(sheetResumen, fmt.Sprintf("A%d", i+4), r[0])
		f.SetCellValue(sheetResumen, fmt.Sprintf("B%d", i+4), r[1])
	}
}

func (e *ReportExporter) fillExpenses(f *excelize.File, expenses []dto.ExpenseRowDTO) {
	f.SetCellValue(sheetGastos, "A1", "Fecha")
	f.SetCellValue(sheetGastos, "B1", "Descripción")
	f.SetCellValue(sheetGastos, "C1", "Categoría")
	f.SetCellValue(sheetGastos, "D1", "Monto")

	for i, ex := range expenses {
		row := i + 2
		f.SetCellValue(sheetGastos, "A"+fmt.Sprint(row), ex.Date)
		f.SetCellValue(sheetGastos, "B"+fmt.Sprint(row), ex.Description)
		f.SetCellValue(sheetGastos, "C"+fmt.Sprint(row), ex.Category)
		f.SetCellValue(sheetGastos, "D"+fmt.Sprint(row), ex.Amount.InexactFloat64())
	}
}

func (e *ReportExporter) fillMovements(f *excelize.File, movements []dto.MovementRowDTO) {
	f.SetCellValue(sheetMovimiento, "A1", "Fecha")
	f.SetCellValue(sheetMovimiento, "B1", "Tipo")
	f.SetCellValue(sheetMovimiento, "C1", "Producto")
	f.SetCellValue(sheetMovimiento, "D1", "Tienda")
	f.SetCellValue(sheetMovimiento, "E1", "Importe")
	f.SetCellValue(sheetMovimiento, "F1", "Motivo")

	for i, m := range movements {
		row := i + 2
		tipo := "Venta"
		if m.Type == entity.MovementTypeWaste {
			tipo = "Merma"
		}
		f.SetCellValue(sheetMovimiento, "A"+fmt.Sprint(row), m.Date)
		f.SetCellValue(sheetMovimiento, "B"+fmt.Sprint(row), tipo)
		f.SetCellValue(sheetMovimiento, "C"+fmt.Sprint(row), m.Product)
		f.SetCellValue(sheetMovimiento, "D"+fmt.Sprint(row), m.StoreName)
		f.SetCellValue(sheetMovimiento, "E"+fmt.Sprint(row), m.Amount.InexactFloat64())
		f.SetCellValue(sheetMovimiento, "F"+fmt.Sprint(row), m.Reason)
	}
}
