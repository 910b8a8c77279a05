package analytics

import (
	"context"

	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
)

// ReportPDFGenerator renderiza el reporte financiero de un período en PDF.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *dto.FinancialReportDTO) ([]byte, error)
}

// ReportExcelExporter exporta el mismo reporte a un libro XLSX.
type ReportExcelExporter interface {
	ExportReportXLSX(ctx context.Context, report *dto.FinancialReportDTO) ([]byte, error)
}
